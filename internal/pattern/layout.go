package pattern

import (
	"math"

	"github.com/iburimskiy/spectral-circles/internal/config"
)

// Grid describes how pattern centers are laid out on a surface. Every row is
// shifted left by XStep and every column down by YStep, which gives the grid
// its diagonal cadence.
type Grid struct {
	Radius float64
	Margin float64
	StartX float64
	StartY float64
	XStep  float64
	YStep  float64
}

// DefaultGrid returns the grid used by the application.
func DefaultGrid() Grid {
	return Grid{
		Radius: config.MainRadius,
		Margin: config.GridMargin,
		StartX: config.StartX,
		StartY: config.StartY,
		XStep:  config.XStep,
		YStep:  config.YStep,
	}
}

// Spacing is the distance between neighbouring centers along a row or column.
func (g Grid) Spacing() float64 {
	return 2*g.Radius + g.Margin
}

// Dims returns the number of columns and rows needed to cover a surface of
// the given size. A degenerate surface has no cells.
func (g Grid) Dims(width, height float64) (cols, rows int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	spacing := g.Spacing()
	cols = max(int(math.Ceil((width-g.StartX)/spacing))+1, 1)
	rows = max(int(math.Ceil((height-g.StartY)/spacing))+1, 1)
	return cols, rows
}

// Plan returns the centers of every pattern in sequence order.
func (g Grid) Plan(width, height float64) []Point {
	cols, rows := g.Dims(width, height)
	n := cols * rows
	if n == 0 {
		return nil
	}

	spacing := g.Spacing()
	points := make([]Point, n)
	for i := range points {
		row := i / cols
		col := i % cols
		points[i] = Point{
			X: g.StartX + float64(col)*spacing - float64(row)*g.XStep,
			Y: g.StartY + float64(row)*spacing + float64(col)*g.YStep,
		}
	}
	return points
}
