package pattern

import "github.com/iburimskiy/spectral-circles/internal/config"

// Variant selects how the outer ring of a pattern is drawn.
type Variant int

const (
	Dotted Variant = iota
	Zigzag
)

func (v Variant) String() string {
	switch v {
	case Dotted:
		return "dotted"
	case Zigzag:
		return "zigzag"
	default:
		return "unknown"
	}
}

// VariantFor returns the variant of the pattern at sequence index i.
func VariantFor(i int) Variant {
	if i%config.ZigzagEvery == 0 {
		return Zigzag
	}
	return Dotted
}

// Random is the source of construction-time randomness. *rand.Rand from
// math/rand/v2 satisfies it.
type Random interface {
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

func between(rnd Random, lo, hi float64) float64 {
	return lo + (hi-lo)*rnd.Float64()
}

// Instance is one concentric circle pattern.
type Instance struct {
	Center  Point
	Radius  float64
	Variant Variant

	baseHue    float64
	saturation float64
	brightness float64
	palette    [3]HSB

	hue         float64
	innerRadius float64
}

// NewInstance creates the pattern at sequence index i.
func NewInstance(i int, center Point, radius float64, rnd Random) *Instance {
	p := &Instance{
		Center:      center,
		Radius:      radius,
		Variant:     VariantFor(i),
		baseHue:     between(rnd, config.MinHue, config.MaxHue),
		saturation:  between(rnd, config.MinSaturation, config.MaxSaturation),
		brightness:  between(rnd, config.MinBrightness, config.MaxBrightness),
		innerRadius: config.DefaultInnerRadius,
	}
	p.hue = p.baseHue

	colors := Palette
	rnd.Shuffle(len(colors), func(a, b int) {
		colors[a], colors[b] = colors[b], colors[a]
	})
	copy(p.palette[:], colors[:3])
	return p
}

// Setup lays out a width x height surface and creates one pattern per grid cell.
func Setup(g Grid, width, height float64, rnd Random) []*Instance {
	centers := g.Plan(width, height)
	instances := make([]*Instance, len(centers))
	for i, c := range centers {
		instances[i] = NewInstance(i, c, g.Radius, rnd)
	}
	return instances
}

// UpdateHue shifts the outer ring hue away from the base hue by an amount
// derived from energy.
func (p *Instance) UpdateHue(energy float64) {
	p.hue = p.baseHue + Remap(energy, 100, 200, 50, 130)
}

// UpdateRadius sets the center disc radius from energy.
func (p *Instance) UpdateRadius(energy float64) {
	p.innerRadius = Remap(energy, 0, 255, 10, 65)
}

func (p *Instance) BaseHue() float64     { return p.baseHue }
func (p *Instance) Hue() float64         { return p.hue }
func (p *Instance) InnerRadius() float64 { return p.innerRadius }
func (p *Instance) Palette() [3]HSB      { return p.palette }

// Color is the current outer ring color.
func (p *Instance) Color() HSB {
	return HSB{H: p.hue, S: p.saturation, B: p.brightness}
}
