package arm

import "github.com/taigrr/snek/pkg/geom"

// Tracker runs the per-tick control loop: one smoothing pass, then
// iterative target tracking until the tip is within Tolerance of the
// target or Budget iterations have run.
type Tracker struct {
	Chain *Joint

	// Tolerance is the tip-to-target distance at which tracking stops.
	Tolerance float64
	// Budget bounds the tracking iterations per tick, so a tick always
	// terminates even when the target is unreachable.
	Budget int
	// Speed is the tip displacement per iteration; every parameter vector
	// is rescaled so the tip moves at this rate regardless of distance.
	Speed float64
	// Damping scales the smoothing deltas, spreading relaxation over many
	// ticks instead of snapping.
	Damping float64
	// Bias is the per-joint exponential weight (Bias^i, root to tip)
	// letting joints near the tip move more freely than ones near the
	// root. Empirical, not derived from the kinematics.
	Bias float64
}

// Reference tuning, matching a 50-joint chain of 10-15 unit segments.
const (
	DefaultTolerance = 3.0
	DefaultBudget    = 1000
	DefaultSpeed     = 0.1
	DefaultDamping   = 0.1
	DefaultBias      = 1.1
)

// NewTracker returns a Tracker for the chain with the reference tuning.
func NewTracker(chain *Joint) *Tracker {
	return &Tracker{
		Chain:     chain,
		Tolerance: DefaultTolerance,
		Budget:    DefaultBudget,
		Speed:     DefaultSpeed,
		Damping:   DefaultDamping,
		Bias:      DefaultBias,
	}
}

// Step advances the chain by one animation tick toward target, in the
// root's frame. It mutates the chain's joint angles and nothing else.
func (t *Tracker) Step(target geom.Vec2) error {
	deltas := t.Chain.SmoothingDeltas()
	for i := range deltas {
		deltas[i] *= t.Damping
	}
	if err := t.Chain.ApplyDeltas(deltas); err != nil {
		return err
	}

	for iter := 0; iter < t.Budget; iter++ {
		displacement := target.Sub(t.Chain.TipPosition())
		if displacement.Len() < t.Tolerance {
			break
		}
		grads := t.Chain.Gradients()
		params := SolveParams(grads, displacement)
		BiasParams(params, t.Bias)
		headVelocity, err := Velocity(grads, params)
		if err != nil {
			return err
		}
		// A zero head velocity (degenerate pose) turns this into ±Inf and
		// the angles into NaN; the budget still bounds the loop.
		factor := t.Speed / headVelocity.Len()
		for i := range params {
			params[i] *= factor
		}
		if err := t.Chain.ApplyDeltas(params); err != nil {
			return err
		}
	}
	return nil
}
