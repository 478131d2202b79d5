package arm

import (
	"errors"
	"math"
	"testing"

	"github.com/taigrr/snek/pkg/geom"
)

func TestSolveParamsNormalMatrix(t *testing.T) {
	grads := []geom.Vec2{{X: 1, Y: 0}, {X: 0, Y: 2}, {X: 1, Y: 1}}
	disp := geom.V2(3, -1)

	// Brute force: M = JᵀJ, out_i = M·g_i, param_i = disp·out_i.
	var m00, m01, m11 float64
	for _, g := range grads {
		m00 += g.X * g.X
		m01 += g.X * g.Y
		m11 += g.Y * g.Y
	}
	want := make([]float64, len(grads))
	for i, g := range grads {
		ox := m00*g.X + m01*g.Y
		oy := m01*g.X + m11*g.Y
		want[i] = disp.X*ox + disp.Y*oy
	}

	got := SolveParams(grads, disp)
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("param %d = %g, want %g", i, got[i], want[i])
		}
	}
}

// The solver multiplies by JᵀJ, not its inverse; for a single gradient the
// command comes out scaled by |g|⁴ along g.
func TestSolveParamsUninverted(t *testing.T) {
	g := geom.V2(0, 2)
	params := SolveParams([]geom.Vec2{g}, geom.V2(0, 1))
	if want := 8.0; math.Abs(params[0]-want) > 1e-12 {
		t.Errorf("param = %g, want %g", params[0], want)
	}
}

func TestVelocity(t *testing.T) {
	grads := []geom.Vec2{{X: 1, Y: 0}, {X: 0, Y: 1}}
	v, err := Velocity(grads, []float64{2, 3})
	if err != nil {
		t.Fatalf("Velocity: %v", err)
	}
	assertNear(t, v, geom.V2(2, 3), 1e-12)
}

func TestVelocityCountMismatch(t *testing.T) {
	grads := []geom.Vec2{{X: 1, Y: 0}, {X: 0, Y: 1}}
	_, err := Velocity(grads, []float64{1})
	var mismatch *ParameterCountMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Velocity error = %v, want ParameterCountMismatchError", err)
	}
	if mismatch.Got != 1 || mismatch.Want != 2 {
		t.Errorf("mismatch = %+v, want Got=1 Want=2", mismatch)
	}
}

func TestBiasParams(t *testing.T) {
	params := []float64{1, 1, 1, 1}
	BiasParams(params, 1.1)
	for i, p := range params {
		want := math.Pow(1.1, float64(i))
		if math.Abs(p-want) > 1e-12 {
			t.Errorf("params[%d] = %g, want %g", i, p, want)
		}
	}
}

// The bias amplifies the tip-to-root magnitude ratio by exactly base^(n-1).
func TestBiasOrdering(t *testing.T) {
	chain := NewChain(3, 10, 10, 0)
	target := geom.V2(25, 10)
	grads := chain.Gradients()
	raw := SolveParams(grads, target.Sub(chain.TipPosition()))

	biased := append([]float64(nil), raw...)
	BiasParams(biased, 1.1)

	n := len(raw)
	rawRatio := math.Abs(raw[n-1] / raw[0])
	biasedRatio := math.Abs(biased[n-1] / biased[0])
	if want := rawRatio * math.Pow(1.1, float64(n-1)); math.Abs(biasedRatio-want) > 1e-9 {
		t.Errorf("biased ratio = %g, want %g", biasedRatio, want)
	}
}
