package viewer

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/willbeason/tree-sketch/pkg/geometry"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is the center pixel of whiteImage, so sampling never
	// bleeds past its edges.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

// screen adapts an ebiten image to tree.Surface. Quads become two triangles
// tinted with the current color.
type screen struct {
	dst *ebiten.Image

	fill, stroke color.Color

	vertices [4]ebiten.Vertex
}

func (s *screen) SetFill(c color.Color)   { s.fill = c }
func (s *screen) SetStroke(c color.Color) { s.stroke = c }
func (s *screen) NoStroke()               { s.stroke = nil }

func (s *screen) Quad(a, b, c, d geometry.XY) {
	if s.fill != nil {
		s.triangles(s.fill, a, b, c, d)
	}

	if s.stroke != nil {
		s.Line(a, b)
		s.Line(b, c)
		s.Line(c, d)
		s.Line(d, a)
	}
}

// Line draws a one pixel wide quad from a to b.
func (s *screen) Line(a, b geometry.XY) {
	if s.stroke == nil {
		return
	}

	dir := b.Minus(a)
	length := dir.Length()
	if length == 0 {
		return
	}

	// Quarter turn of the unit direction, half a pixel long.
	side := geometry.XY{X: dir.Y, Y: -dir.X}.Divide(2 * length)
	s.triangles(s.stroke, a.Minus(side), a.Plus(side), b.Plus(side), b.Minus(side))
}

func (s *screen) triangles(c color.Color, a, b, cc, d geometry.XY) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	r, g, bl, al := float32(n.R)/0xff, float32(n.G)/0xff, float32(n.B)/0xff, float32(n.A)/0xff

	for i, p := range []geometry.XY{a, b, cc, d} {
		s.vertices[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: bl,
			ColorA: al,
		}
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	s.dst.DrawTriangles(s.vertices[:], quadIndices, whiteSubImage, op)
}
