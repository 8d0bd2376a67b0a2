package pattern

// Frame is the state one render pass works on. Spectrum is replaced as a
// whole every frame and Playing is a snapshot taken by the caller.
type Frame struct {
	Instances []*Instance
	Spectrum  []float64
	Playing   bool
}

// Step feeds every pattern the energy of its bin. Nothing changes while
// audio is not playing, so patterns hold their last state across a pause.
func Step(f Frame) {
	if !f.Playing {
		return
	}
	for i, p := range f.Instances {
		e := Energy(f.Spectrum, i)
		p.UpdateHue(e)
		p.UpdateRadius(e)
	}
}

// DrawAll draws the patterns in sequence order; later patterns cover earlier ones.
func DrawAll(s Surface, instances []*Instance) {
	for _, p := range instances {
		p.Draw(s)
	}
}

// Render runs one full frame: Step followed by DrawAll.
func Render(s Surface, f Frame) {
	Step(f)
	DrawAll(s, f.Instances)
}
