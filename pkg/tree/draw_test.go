package tree

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willbeason/tree-sketch/pkg/geometry"
)

type shape struct {
	quad   bool
	points []geometry.XY
	fill   color.Color
	stroke color.Color
}

// recorder is a Surface that remembers what was drawn.
type recorder struct {
	fill, stroke color.Color
	shapes       []shape
}

func (r *recorder) SetFill(c color.Color)   { r.fill = c }
func (r *recorder) SetStroke(c color.Color) { r.stroke = c }
func (r *recorder) NoStroke()               { r.stroke = nil }

func (r *recorder) Quad(a, b, c, d geometry.XY) {
	r.shapes = append(r.shapes, shape{quad: true, points: []geometry.XY{a, b, c, d}, fill: r.fill, stroke: r.stroke})
}

func (r *recorder) Line(a, b geometry.XY) {
	r.shapes = append(r.shapes, shape{points: []geometry.XY{a, b}, stroke: r.stroke})
}

func (r *recorder) quads() []shape {
	var quads []shape
	for _, s := range r.shapes {
		if s.quad {
			quads = append(quads, s)
		}
	}
	return quads
}

func assertXY(t *testing.T, want, got geometry.XY) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x of %v", got)
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y of %v", got)
}

func TestDraw_DegenerateBranch(t *testing.T) {
	r := &recorder{}
	b := NewBranch(0, 10, 0, brown, nil)

	b.Draw(r, geometry.XY{}, 0, nil)

	require.Len(t, r.shapes, 1)
	q := r.shapes[0]
	assert.True(t, q.quad)
	assertXY(t, geometry.XY{X: 0, Y: 0}, q.points[0])
	assertXY(t, geometry.XY{X: 0, Y: 0}, q.points[1])
	assertXY(t, geometry.XY{X: 10, Y: 0}, q.points[2])
	assertXY(t, geometry.XY{X: 10, Y: 0}, q.points[3])
	assert.Equal(t, brown, q.fill)
	assert.Nil(t, q.stroke)
}

func TestDraw_BranchTaper(t *testing.T) {
	r := &recorder{}
	// Heading right, turning a quarter turn to point down the screen.
	b := NewBranch(math.Pi/2, 10, 4, brown, nil)

	b.Draw(r, geometry.XY{X: 1, Y: 1}, 0, nil)

	require.Len(t, r.shapes, 1)
	q := r.shapes[0].points
	// Near edge is perpendicular to the incoming heading.
	assertXY(t, geometry.XY{X: 1, Y: 3}, q[0])
	assertXY(t, geometry.XY{X: 1, Y: -1}, q[1])
	// Far edge is perpendicular to the new heading, around end = (1, 11).
	assertXY(t, geometry.XY{X: 3, Y: 11}, q[2])
	assertXY(t, geometry.XY{X: -1, Y: 11}, q[3])
}

func TestDraw_LeafLens(t *testing.T) {
	r := &recorder{}
	l := NewLeaf(0, 30, 10, green)

	l.Draw(r, geometry.XY{X: 5, Y: 5}, Up, nil)

	require.Len(t, r.shapes, 1)
	q := r.shapes[0].points
	assertXY(t, geometry.XY{X: 5, Y: 5}, q[0])
	assertXY(t, geometry.XY{X: 0, Y: -10}, q[1])
	assertXY(t, geometry.XY{X: 5, Y: -25}, q[2])
	assertXY(t, geometry.XY{X: 10, Y: -10}, q[3])
	assert.Equal(t, green, r.shapes[0].fill)
}

func TestDraw_NegativeSizeClamped(t *testing.T) {
	r := &recorder{}
	b := NewBranch(0, 10, -6, brown, nil)

	b.Draw(r, geometry.XY{}, 0, nil)

	q := r.shapes[0].points
	assertXY(t, q[0], q[1])
	assertXY(t, q[2], q[3])
}

func TestDraw_DebugOverlay(t *testing.T) {
	debug := color.NRGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}
	r := &recorder{}
	b := NewBranch(0, 10, 2, brown, []*Node{NewLeaf(0, 5, 2, green)})

	b.Draw(r, geometry.XY{}, 0, debug)

	require.Len(t, r.shapes, 4)
	assert.True(t, r.shapes[0].quad)
	assert.Nil(t, r.shapes[0].stroke)

	line := r.shapes[1]
	assert.False(t, line.quad)
	assert.Equal(t, debug, line.stroke)
	assertXY(t, geometry.XY{}, line.points[0])
	assertXY(t, geometry.XY{X: 10}, line.points[1])

	// The leaf starts where the branch ends and is drawn without outline.
	assert.True(t, r.shapes[2].quad)
	assert.Nil(t, r.shapes[2].stroke)
	assertXY(t, geometry.XY{X: 10}, r.shapes[2].points[0])
	assertXY(t, geometry.XY{X: 15}, r.shapes[3].points[1])
}

func TestDraw_ChildrenInheritHeading(t *testing.T) {
	r := &recorder{}
	root := NewBranch(0.25, 10, 0, brown, []*Node{
		NewBranch(0.5, 10, 0, brown, []*Node{NewLeaf(-0.75, 10, 0, green)}),
	})

	root.Draw(r, geometry.XY{}, 0, nil)

	quads := r.quads()
	require.Len(t, quads, 3)

	end1 := geometry.Heading(0.25).Times(10)
	end2 := end1.Plus(geometry.Heading(0.75).Times(10))
	end3 := end2.Plus(geometry.Heading(0).Times(10))

	assertXY(t, end1, quads[0].points[2])
	assertXY(t, end1, quads[1].points[0])
	assertXY(t, end2, quads[1].points[2])
	assertXY(t, end2, quads[2].points[0])
	assertXY(t, end3, quads[2].points[2])
}

func TestDraw_OneQuadPerNode(t *testing.T) {
	root := Generate(testConfig(), rand.New(rand.NewSource(7)))
	stats := root.Stats()

	r := &recorder{}
	root.Draw(r, Origin(800, 600), Up, nil)

	assert.Len(t, r.shapes, stats.Branches+stats.Leaves)
}

func TestOrigin(t *testing.T) {
	assert.Equal(t, geometry.XY{X: 400, Y: 600}, Origin(800, 600))
}
