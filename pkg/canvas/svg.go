package canvas

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/willbeason/tree-sketch/pkg/geometry"
)

// SVG writes shapes as SVG elements as they are drawn. Coordinates keep
// Decimals places.
type SVG struct {
	canvas *svg.SVG

	fill, stroke color.Color
}

// Decimals is the number of places written after the decimal point.
const Decimals = 2

func NewSVG(w io.Writer) *SVG {
	canvas := svg.New(w)
	canvas.Decimals = Decimals
	return &SVG{canvas: canvas}
}

// Begin writes the document header and fills the canvas with background.
func (s *SVG) Begin(width, height int, title string, background color.Color) {
	w, h := float64(width), float64(height)
	s.canvas.Start(w, h)
	if title != "" {
		s.canvas.Title(title)
	}
	s.canvas.Rect(0, 0, w, h, "fill:"+Hex(background))
}

func (s *SVG) End() {
	s.canvas.End()
}

func (s *SVG) SetFill(c color.Color)   { s.fill = c }
func (s *SVG) SetStroke(c color.Color) { s.stroke = c }
func (s *SVG) NoStroke()               { s.stroke = nil }

func (s *SVG) Quad(a, b, c, d geometry.XY) {
	points := []geometry.XY{a, b, c, d}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}

	s.canvas.Polygon(xs, ys, s.style())
}

func (s *SVG) Line(a, b geometry.XY) {
	if s.stroke == nil {
		return
	}
	s.canvas.Line(a.X, a.Y, b.X, b.Y, "stroke:"+Hex(s.stroke))
}

func (s *SVG) style() string {
	fill, stroke := "none", "none"
	if s.fill != nil {
		fill = Hex(s.fill)
	}
	if s.stroke != nil {
		stroke = Hex(s.stroke)
	}
	return fmt.Sprintf("fill:%s;stroke:%s", fill, stroke)
}

// Hex formats c as #rrggbb, dropping alpha.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
