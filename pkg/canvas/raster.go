package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"github.com/willbeason/tree-sketch/pkg/geometry"
)

// Raster draws onto an in-memory image using gg's software renderer.
type Raster struct {
	dc *gg.Context

	fill, stroke color.Color

	err error
}

// NewRaster returns a width x height Raster cleared to background.
func NewRaster(width, height int, background color.Color) *Raster {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.FromColor(background))
	dc.SetLineWidth(1)

	return &Raster{dc: dc}
}

func (r *Raster) SetFill(c color.Color)   { r.fill = c }
func (r *Raster) SetStroke(c color.Color) { r.stroke = c }
func (r *Raster) NoStroke()               { r.stroke = nil }

func (r *Raster) Quad(a, b, c, d geometry.XY) {
	r.polygon(a, b, c, d)

	if r.fill != nil {
		r.dc.SetColor(r.fill)
		if r.stroke != nil {
			r.keep(r.dc.FillPreserve())
		} else {
			r.keep(r.dc.Fill())
		}
	}

	if r.stroke != nil {
		r.dc.SetColor(r.stroke)
		r.keep(r.dc.Stroke())
	}

	r.dc.ClearPath()
}

func (r *Raster) Line(a, b geometry.XY) {
	if r.stroke == nil {
		return
	}

	r.dc.SetColor(r.stroke)
	r.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	r.keep(r.dc.Stroke())
}

func (r *Raster) polygon(points ...geometry.XY) {
	r.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		r.dc.LineTo(p.X, p.Y)
	}
	r.dc.ClosePath()
}

func (r *Raster) keep(err error) {
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("render: %w", err)
	}
}

// Err returns the first drawing error, if any.
func (r *Raster) Err() error {
	return r.err
}

func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

func (r *Raster) EncodePNG(w io.Writer) error {
	if r.err != nil {
		return r.err
	}
	return r.dc.EncodePNG(w)
}

func (r *Raster) Close() error {
	return r.dc.Close()
}
