// Package geom provides the 2D vector and rigid-transform algebra used by
// the arm kinematics.
package geom

import "math"

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Zero returns the zero vector.
func Zero() Vec2 {
	return Vec2{}
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Negate returns the negated vector.
func (a Vec2) Negate() Vec2 {
	return Vec2{-a.X, -a.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Div returns the scalar quotient a / s. Dividing by zero yields
// non-finite components per IEEE semantics; it is not trapped.
func (a Vec2) Div(s float64) Vec2 {
	return Vec2{a.X / s, a.Y / s}
}

// Dot returns the dot product a · b.
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Len returns the length of the vector.
func (a Vec2) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec2) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y
}

// Normalize returns the unit vector.
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// Lerp returns linear interpolation between a and b.
func (a Vec2) Lerp(b Vec2, t float64) Vec2 {
	return Vec2{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
	}
}

// Rotate rotates the vector by angle (radians).
func (a Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		a.X*cos - a.Y*sin,
		a.X*sin + a.Y*cos,
	}
}

// Rotate90 returns the vector rotated by 90° counter-clockwise,
// (x,y) -> (-y,x). This is the derivative of Rotate at angle 0, i.e. the
// instantaneous velocity direction of a point rotating about the origin.
func (a Vec2) Rotate90() Vec2 {
	return Vec2{-a.Y, a.X}
}

// Angle returns the angle of the vector in radians.
func (a Vec2) Angle() float64 {
	return math.Atan2(a.Y, a.X)
}

// Distance returns the distance between two points.
func (a Vec2) Distance(b Vec2) float64 {
	return a.Sub(b).Len()
}
