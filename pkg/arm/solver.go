package arm

import "github.com/taigrr/snek/pkg/geom"

// SolveParams maps a desired tip displacement to one angular command per
// joint using an approximate pseudo-inverse of the Jacobian.
//
// It forms the 2x2 normal matrix M = JᵀJ and multiplies the Jacobian by M
// itself rather than by M⁻¹. That is not the Moore–Penrose pseudo-inverse;
// it is a cheap approximation that holds up when M is close to a scaled
// identity, which this chain's geometry keeps true in practice. The tracker
// rescales the result every iteration, so only the direction matters.
func SolveParams(grads []geom.Vec2, displacement geom.Vec2) []float64 {
	var m00, m01, m11 float64
	for _, g := range grads {
		m00 += g.X * g.X
		m01 += g.X * g.Y
		m11 += g.Y * g.Y
	}
	row0 := geom.V2(m00, m01)
	row1 := geom.V2(m01, m11)

	params := make([]float64, len(grads))
	for i, g := range grads {
		out := geom.V2(row0.Dot(g), row1.Dot(g))
		params[i] = displacement.Dot(out)
	}
	return params
}

// Velocity returns the tip velocity produced by the given per-joint
// angular velocities, Σ grads[i] * params[i]. The two slices must have
// equal length.
func Velocity(grads []geom.Vec2, params []float64) (geom.Vec2, error) {
	if len(grads) != len(params) {
		return geom.Vec2{}, &ParameterCountMismatchError{Got: len(params), Want: len(grads)}
	}
	var v geom.Vec2
	for i, g := range grads {
		v = v.Add(g.Scale(params[i]))
	}
	return v, nil
}

// BiasParams scales params[i] by base^i, root to tip, weighting joints
// near the tip to move more freely than joints near the root.
func BiasParams(params []float64, base float64) {
	bias := 1.0
	for i := range params {
		params[i] *= bias
		bias *= base
	}
}
