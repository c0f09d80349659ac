package geometry

import "math"

// XY is a point or direction in the plane.
//
// Operations never modify the receiver.
type XY struct {
	X, Y float64
}

func (xy XY) Plus(other XY) XY {
	return XY{X: xy.X + other.X, Y: xy.Y + other.Y}
}

func (xy XY) Minus(other XY) XY {
	return XY{X: xy.X - other.X, Y: xy.Y - other.Y}
}

func (xy XY) Times(s float64) XY {
	return XY{X: xy.X * s, Y: xy.Y * s}
}

// Divide scales by 1/s. Dividing by zero yields infinite or NaN components.
func (xy XY) Divide(s float64) XY {
	return XY{X: xy.X / s, Y: xy.Y / s}
}

func (xy XY) Length() float64 {
	return math.Hypot(xy.X, xy.Y)
}

// Rotate turns xy about the origin by angle radians, counter-clockwise in a
// y-up frame (clockwise on screen, where y points down).
func (xy XY) Rotate(angle float64) XY {
	sin, cos := math.Sincos(angle)
	return XY{
		X: xy.X*cos - xy.Y*sin,
		Y: xy.X*sin + xy.Y*cos,
	}
}

// RotateAbout turns xy about pivot by angle radians.
func (xy XY) RotateAbout(angle float64, pivot XY) XY {
	return xy.Minus(pivot).Rotate(angle).Plus(pivot)
}

// Heading is the unit vector pointing along angle.
func Heading(angle float64) XY {
	sin, cos := math.Sincos(angle)
	return XY{X: cos, Y: sin}
}

// Tangent is the unit vector perpendicular to Heading(angle), a quarter turn
// clockwise from it.
func Tangent(angle float64) XY {
	sin, cos := math.Sincos(angle)
	return XY{X: sin, Y: -cos}
}
