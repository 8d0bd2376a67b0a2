package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/spectral-circles/internal/pattern"
)

var whiteSubImage *ebiten.Image

// whitePixel is the source image for DrawTriangles; vertex colors tint it.
func whitePixel() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// screenSurface draws patterns onto an ebiten image.
type screenSurface struct {
	dst *ebiten.Image
}

func (s screenSurface) FillCircle(c pattern.Point, diameter float64, fill color.Color) {
	vector.DrawFilledCircle(s.dst, float32(c.X), float32(c.Y), float32(diameter/2), fill, true)
}

func (s screenSurface) StrokeCircle(c pattern.Point, diameter float64, stroke color.Color, width float64) {
	vector.StrokeCircle(s.dst, float32(c.X), float32(c.Y), float32(diameter/2), float32(width), stroke, true)
}

func (s screenSurface) FilledPolyline(vertices []pattern.Point, fill, stroke color.Color, width float64) {
	if len(vertices) < 2 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(vertices[0].X), float32(vertices[0].Y))
	for _, v := range vertices[1:] {
		path.LineTo(float32(v.X), float32(v.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	s.drawTriangles(vs, is, fill, ebiten.NonZero)

	vs, is = path.AppendVerticesAndIndicesForStroke(vs[:0], is[:0], &vector.StrokeOptions{
		Width:      float32(width),
		LineJoin:   vector.LineJoinMiter,
		MiterLimit: 10,
	})
	s.drawTriangles(vs, is, stroke, ebiten.FillAll)
}

func (s screenSurface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s screenSurface) drawTriangles(vs []ebiten.Vertex, is []uint16, c color.Color, rule ebiten.FillRule) {
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  rule,
	}
	s.dst.DrawTriangles(vs, is, whitePixel(), op)
}
