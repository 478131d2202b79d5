package geom

import (
	"fmt"
	"math"
)

// Transform represents a 2D affine map p -> XAxis*p.X + YAxis*p.Y + Origin.
//
// When built through Identity, Translation, Rotation and the chaining
// methods, XAxis and YAxis stay equal-length and orthogonal, so the linear
// part is always a uniform scale times a rotation. ExtractScale relies on
// that invariant.
type Transform struct {
	XAxis  Vec2
	YAxis  Vec2
	Origin Vec2
}

// scaleTolerance is how far the squared axis-length ratio may drift from 1
// before ExtractScale reports the transform as no longer rigid.
const scaleTolerance = 0.01

// NotAffineError reports a transform whose linear part is not a uniform
// rotation+scale, either from caller misuse or accumulated numerical error.
type NotAffineError struct {
	// Ratio is |XAxis|² / |YAxis|² as measured.
	Ratio float64
}

func (e *NotAffineError) Error() string {
	return fmt.Sprintf("transform axes are not uniform: squared length ratio %g deviates from 1 by more than %g", e.Ratio, scaleTolerance)
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{
		XAxis: Vec2{1, 0},
		YAxis: Vec2{0, 1},
	}
}

// Translation returns the transform p -> p + offset.
func Translation(offset Vec2) Transform {
	return Transform{
		XAxis:  Vec2{1, 0},
		YAxis:  Vec2{0, 1},
		Origin: offset,
	}
}

// Rotation returns the transform rotating by angle (radians) about the origin.
func Rotation(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	return Transform{
		XAxis: Vec2{cos, sin},
		YAxis: Vec2{-sin, cos},
	}
}

// ApplyToDirection maps a direction (or velocity) through the linear part
// only, ignoring the translation.
func (t Transform) ApplyToDirection(v Vec2) Vec2 {
	return t.XAxis.Scale(v.X).Add(t.YAxis.Scale(v.Y))
}

// ApplyToPosition maps a point through the full transform.
func (t Transform) ApplyToPosition(v Vec2) Vec2 {
	return t.ApplyToDirection(v).Add(t.Origin)
}

// After composes the two transforms into one that applies t first, then o:
//
//	t.After(o).ApplyToPosition(p) == o.ApplyToPosition(t.ApplyToPosition(p))
func (t Transform) After(o Transform) Transform {
	return Transform{
		XAxis:  o.ApplyToDirection(t.XAxis),
		YAxis:  o.ApplyToDirection(t.YAxis),
		Origin: o.ApplyToPosition(t.Origin),
	}
}

// Translate returns t followed by a translation of offset.
func (t Transform) Translate(offset Vec2) Transform {
	return t.After(Translation(offset))
}

// Rotate returns t followed by a rotation of angle radians.
func (t Transform) Rotate(angle float64) Transform {
	return t.After(Rotation(angle))
}

// Scale returns t followed by a uniform scale.
func (t Transform) Scale(factor float64) Transform {
	return Transform{
		XAxis:  t.XAxis.Scale(factor),
		YAxis:  t.YAxis.Scale(factor),
		Origin: t.Origin.Scale(factor),
	}
}

// ExtractScale returns the uniform scale factor of the linear part without
// inverting the transform. It fails with NotAffineError when the axes have
// drifted apart by more than the 1% tolerance.
func (t Transform) ExtractScale() (float64, error) {
	ratio := t.XAxis.LenSq() / t.YAxis.LenSq()
	if math.Abs(ratio-1) > scaleTolerance {
		return 0, &NotAffineError{Ratio: ratio}
	}
	return t.XAxis.Len(), nil
}
