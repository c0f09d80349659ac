package canvas

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willbeason/tree-sketch/pkg/geometry"
	"github.com/willbeason/tree-sketch/pkg/tree"
)

var (
	white  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	purple = color.NRGBA{R: 0x9c, G: 0x2c, B: 0x77, A: 0xff}
	red    = color.NRGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}
)

// Both surfaces are usable wherever trees are drawn.
var (
	_ tree.Surface = (*Raster)(nil)
	_ tree.Surface = (*SVG)(nil)
)

func near(t *testing.T, want, got color.Color) {
	t.Helper()
	wr, wg, wb, _ := want.RGBA()
	gr, gg, gb, _ := got.RGBA()
	assert.InDelta(t, wr>>8, gr>>8, 2)
	assert.InDelta(t, wg>>8, gg>>8, 2)
	assert.InDelta(t, wb>>8, gb>>8, 2)
}

func TestRaster_Quad(t *testing.T) {
	r := NewRaster(40, 40, white)
	defer r.Close()

	r.NoStroke()
	r.SetFill(purple)
	r.Quad(geometry.XY{X: 10, Y: 10}, geometry.XY{X: 30, Y: 10}, geometry.XY{X: 30, Y: 30}, geometry.XY{X: 10, Y: 30})
	require.NoError(t, r.Err())

	img := r.Image()
	near(t, purple, img.At(20, 20))
	near(t, white, img.At(2, 2))
	near(t, white, img.At(37, 37))
}

func TestRaster_EncodePNG(t *testing.T) {
	r := NewRaster(16, 8, white)
	defer r.Close()

	var buf bytes.Buffer
	require.NoError(t, r.EncodePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}

func TestRaster_Tree(t *testing.T) {
	r := NewRaster(100, 100, white)
	defer r.Close()

	trunk := tree.NewBranch(0, 60, 20, purple, nil)
	trunk.Draw(r, tree.Origin(100, 100), tree.Up, nil)
	require.NoError(t, r.Err())

	near(t, purple, r.Image().At(50, 70))
	near(t, white, r.Image().At(10, 70))
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf)

	s.Begin(100, 50, "tree", white)
	s.NoStroke()
	s.SetFill(purple)
	s.Quad(geometry.XY{X: 0.4, Y: 0}, geometry.XY{X: 10, Y: 0}, geometry.XY{X: 10.6, Y: 5}, geometry.XY{X: 0, Y: 5})
	s.SetStroke(red)
	s.Line(geometry.XY{}, geometry.XY{X: 10, Y: 5})
	s.End()

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<title>tree</title>")
	assert.Contains(t, out, "fill:#ffffff")
	assert.Contains(t, out, `width="100.00"`)
	assert.Contains(t, out, "0.40,0.00 10.00,0.00 10.60,5.00 0.00,5.00")
	assert.Contains(t, out, `x2="10.00" y2="5.00"`)
	assert.Contains(t, out, "fill:#9c2c77;stroke:none")
	assert.Contains(t, out, "<line")
	assert.Contains(t, out, "stroke:#ff4040")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestSVG_LineWithoutStroke(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf)

	s.NoStroke()
	s.Line(geometry.XY{}, geometry.XY{X: 1, Y: 1})

	assert.NotContains(t, buf.String(), "<line")
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#9c2c77", Hex(purple))
	assert.Equal(t, "#000000", Hex(color.Black))
	assert.Equal(t, "#ffffff", Hex(color.White))
}
