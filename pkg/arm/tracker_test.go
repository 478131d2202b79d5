package arm

import (
	"math"
	"testing"

	"github.com/taigrr/snek/pkg/geom"
)

func TestTrackerDefaults(t *testing.T) {
	tr := NewTracker(NewChain(3, 10, 10, 0))
	if tr.Tolerance != 3 || tr.Budget != 1000 || tr.Speed != 0.1 || tr.Damping != 0.1 || tr.Bias != 1.1 {
		t.Errorf("unexpected defaults: %+v", tr)
	}
}

// Straight 3x10 chain, tip at (30,0), target at (25,10): one tick must
// bring the tip within tolerance. The reference tuning gets there in well
// under a hundred iterations.
func TestTrackerConverges(t *testing.T) {
	chain := NewChain(3, 10, 10, 0)
	tr := NewTracker(chain)
	target := geom.V2(25, 10)

	if err := tr.Step(target); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if d := target.Distance(chain.TipPosition()); d >= tr.Tolerance {
		t.Errorf("tip distance after tick = %g, want < %g", d, tr.Tolerance)
	}
}

func TestTrackerHoldsWithinTolerance(t *testing.T) {
	chain := NewChain(3, 10, 10, 0)
	tr := NewTracker(chain)
	// Target already within tolerance of the tip: angles may only move by
	// the smoothing pass, which is zero for a straight chain.
	target := chain.TipPosition().Add(geom.V2(1, 1))

	before := chain.TipPosition()
	if err := tr.Step(target); err != nil {
		t.Fatalf("Step: %v", err)
	}
	assertNear(t, chain.TipPosition(), before, 1e-9)
}

// An unreachable target must not hang the tick: the budget bounds it.
func TestTrackerUnreachableTerminates(t *testing.T) {
	chain := NewChain(3, 10, 10, 0)
	tr := NewTracker(chain)
	tr.Budget = 200

	if err := tr.Step(geom.V2(1000, 1000)); err != nil {
		t.Fatalf("Step: %v", err)
	}
	// Still pointing the right way even though it can't reach.
	dir := chain.TipPosition().Normalize()
	if dir.Dot(geom.V2(1, 1).Normalize()) < 0.9 {
		t.Errorf("tip direction %v not oriented toward target", dir)
	}
}

// A degenerate chain (all segment lengths zero) has a zero head velocity,
// so the speed normalization divides by zero and the angles go NaN. The
// tick must still terminate and report no error; the NaN pose is the
// caller's to notice.
func TestTrackerZeroVelocityPropagatesNaN(t *testing.T) {
	chain := NewChain(3, 0, 0, 0)
	tr := NewTracker(chain)
	tr.Budget = 4

	if err := tr.Step(geom.V2(10, 0)); err != nil {
		t.Fatalf("Step: %v", err)
	}
	for i, j := range chain.Joints() {
		if !math.IsNaN(j.Angle) {
			t.Errorf("joint %d angle = %g, want NaN", i, j.Angle)
		}
	}
}

func TestTrackerSmoothingUsesDamping(t *testing.T) {
	chain := NewChain(3, 10, 10, 0)
	joints := chain.Joints()
	joints[2].Angle = 1.0
	tr := NewTracker(chain)
	tr.Budget = 0 // isolate the smoothing pass

	if err := tr.Step(geom.V2(30, 0)); err != nil {
		t.Fatalf("Step: %v", err)
	}
	// Last joint's delta is -angle, applied scaled by 0.1.
	if got, want := joints[2].Angle, 0.9; math.Abs(got-want) > 1e-12 {
		t.Errorf("last joint angle = %g, want %g", got, want)
	}
}
