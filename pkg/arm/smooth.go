package arm

import "math"

// childBlend is how much of the child's current bend a joint follows while
// straightening itself, so kinks don't pile up near the tip.
const childBlend = 0.2

// NormalizeAngle maps any angle into the half-open interval [-π, π),
// guaranteeing the shortest-path correction direction.
func NormalizeAngle(a float64) float64 {
	return math.Mod(math.Mod(a+math.Pi, 2*math.Pi)+2*math.Pi, 2*math.Pi) - math.Pi
}

// SmoothingDeltas computes one angular correction per joint that relaxes
// the chain toward a pose with no net bend, independent of any target.
//
// The root has no parent to measure a relative angle against, so it is
// pulled toward the bend direction its child establishes. Every other
// joint is pulled straight, blended with a fraction of its child's bend;
// the last joint has no child and corrects itself exactly.
func (j *Joint) SmoothingDeltas() []float64 {
	joints := j.Joints()
	deltas := make([]float64, len(joints))

	if joints[0].Child != nil {
		deltas[0] = NormalizeAngle(joints[0].Child.Angle)
	} else {
		// A lone joint is also the last joint: pure self-correction.
		deltas[0] = NormalizeAngle(-joints[0].Angle)
	}
	for i := 1; i < len(joints); i++ {
		self := NormalizeAngle(-joints[i].Angle)
		if joints[i].Child == nil {
			deltas[i] = self
		} else {
			deltas[i] = NormalizeAngle(self + childBlend*NormalizeAngle(joints[i].Child.Angle))
		}
	}
	return deltas
}
