package pattern

import "image/color"

type opKind int

const (
	opFill opKind = iota
	opStroke
	opPolyline
)

type drawOp struct {
	kind     opKind
	center   Point
	diameter float64
	vertices []Point
	fill     color.Color
	stroke   color.Color
	width    float64
}

// recorder is a Surface that keeps every command it receives.
type recorder struct {
	w, h float64
	ops  []drawOp
}

func (r *recorder) FillCircle(center Point, diameter float64, fill color.Color) {
	r.ops = append(r.ops, drawOp{kind: opFill, center: center, diameter: diameter, fill: fill})
}

func (r *recorder) StrokeCircle(center Point, diameter float64, stroke color.Color, width float64) {
	r.ops = append(r.ops, drawOp{kind: opStroke, center: center, diameter: diameter, stroke: stroke, width: width})
}

func (r *recorder) FilledPolyline(vertices []Point, fill, stroke color.Color, width float64) {
	r.ops = append(r.ops, drawOp{kind: opPolyline, vertices: vertices, fill: fill, stroke: stroke, width: width})
}

func (r *recorder) Size() (float64, float64) { return r.w, r.h }

func (r *recorder) count(kind opKind) int {
	n := 0
	for _, op := range r.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}
