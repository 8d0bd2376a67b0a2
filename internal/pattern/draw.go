package pattern

import (
	"math"

	"github.com/iburimskiy/spectral-circles/internal/config"
)

// Draw renders the outer ring for the pattern's variant, then the center disc
// and inner rings on top.
func (p *Instance) Draw(s Surface) {
	switch p.Variant {
	case Zigzag:
		p.drawZigzag(s)
	default:
		p.drawDots(s)
	}
	p.drawInner(s)
}

func (p *Instance) drawDots(s Surface) {
	c := p.Color()
	for ring := 1; ring < config.DotRings; ring++ {
		radius := float64(ring) * p.Radius / config.DotRings
		n := int(math.Floor(2 * math.Pi * radius / (config.DotSize * config.DotSpacing)))
		for i := 0; i < n; i++ {
			angle := float64(i) * 2 * math.Pi / float64(n)
			s.FillCircle(p.at(radius, angle), config.DotSize, c)
		}
	}
}

func (p *Instance) drawZigzag(s Surface) {
	outer := p.Radius * config.ZigzagOuterRatio
	inner := outer * config.ZigzagInnerRatio
	step := config.ZigzagStepDegrees * math.Pi / 180

	s.FillCircle(p.Center, p.Radius*2, zigzagBase)

	vertices := make([]Point, 0, 2*config.ZigzagSegments)
	angle := 0.0
	for i := 0; i < config.ZigzagSegments; i++ {
		vertices = append(vertices, p.at(inner, angle))
		angle += step
		vertices = append(vertices, p.at(outer, angle))
		angle += step
	}
	s.FilledPolyline(vertices, zigzagBase, zigzagStroke, config.ZigzagStrokeWidth)
}

func (p *Instance) drawInner(s Surface) {
	s.FillCircle(p.Center, p.innerRadius*2, centerFill)
	for k := 0; k < config.InnerCircleCount; k++ {
		r := p.innerRadius + float64(k)*config.InnerCircleStep
		s.StrokeCircle(p.Center, r*2, p.palette[k%len(p.palette)], config.InnerStrokeWidth)
	}
}

func (p *Instance) at(radius, angle float64) Point {
	return Point{
		X: p.Center.X + radius*math.Cos(angle),
		Y: p.Center.Y + radius*math.Sin(angle),
	}
}
