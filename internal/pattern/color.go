package pattern

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSB is a color in hue/saturation/brightness space. H is in degrees and is
// circular; S and B run from 0 to 100.
type HSB struct {
	H, S, B float64
}

// RGBA implements color.Color.
func (c HSB) RGBA() (r, g, b, a uint32) {
	return colorful.Hsv(wrapHue(c.H), clampPercent(c.S), clampPercent(c.B)).Clamped().RGBA()
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 1
	}
	return v / 100
}

// Palette is the fixed set the inner rings pick their colors from.
var Palette = [6]HSB{
	{0, 0, 0},     // black
	{309, 87, 71}, // dark pink
	{276, 95, 72}, // light purple
	{268, 94, 68}, // medium purple
	{263, 93, 66}, // blueish purple
	{243, 73, 79}, // medium blue
}

var (
	zigzagBase   = HSB{258, 93, 64}
	zigzagStroke = HSB{212, 70, 94}
	centerFill   = HSB{194, 68, 94}
)
