package tree

import (
	"image/color"
	"math"

	"github.com/willbeason/tree-sketch/pkg/geometry"
)

// Up is the heading pointing toward the top of a y-down screen.
const Up = -math.Pi / 2

// A Surface is an immediate-mode 2D canvas.
type Surface interface {
	SetFill(c color.Color)
	SetStroke(c color.Color)
	NoStroke()

	// Quad fills the quadrilateral a-b-c-d with the fill color, outlining it
	// if a stroke is set.
	Quad(a, b, c, d geometry.XY)
	// Line draws a segment in the stroke color.
	Line(a, b geometry.XY)
}

// Origin is the bottom center of a width x height canvas, where trees are
// planted.
func Origin(width, height int) geometry.XY {
	return geometry.XY{X: float64(width) / 2, Y: float64(height)}
}

// Draw renders n and everything below it, starting at pos with the parent's
// heading. If debug is non-nil, each segment's centerline is drawn over it.
func (n *Node) Draw(s Surface, pos geometry.XY, heading float64, debug color.Color) {
	abs := heading + n.Angle
	end := pos.Plus(geometry.Heading(abs).Times(n.Length))

	half := math.Max(n.Size, 0.0) / 2

	s.NoStroke()
	s.SetFill(n.Color)

	switch n.Kind {
	case Branch:
		posTan := geometry.Tangent(heading).Times(half)
		endTan := geometry.Tangent(abs).Times(half)
		s.Quad(pos.Minus(posTan), pos.Plus(posTan), end.Plus(endTan), end.Minus(endTan))
	case Leaf:
		tan := geometry.Tangent(abs).Times(half)
		mid := pos.Plus(end.Minus(pos).Divide(2))
		s.Quad(pos, mid.Plus(tan), end, mid.Minus(tan))
	}

	if debug != nil {
		s.SetStroke(debug)
		s.Line(pos, end)
	}

	for _, child := range n.Children {
		child.Draw(s, end, abs, debug)
	}
}
