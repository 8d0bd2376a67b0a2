package pattern

import "image/color"

// Point is a position in surface coordinates.
type Point struct {
	X, Y float64
}

// Surface is the set of primitives a pattern needs to draw itself.
// Diameters and widths are in surface units.
type Surface interface {
	FillCircle(center Point, diameter float64, fill color.Color)
	StrokeCircle(center Point, diameter float64, stroke color.Color, width float64)
	// FilledPolyline fills the closed shape through vertices and strokes its outline.
	FilledPolyline(vertices []Point, fill, stroke color.Color, width float64)
	Size() (width, height float64)
}
