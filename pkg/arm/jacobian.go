package arm

import "github.com/taigrr/snek/pkg/geom"

// Gradients computes the Jacobian of the tip position with respect to the
// joint angles: one world-frame vector per joint, root to tip, giving the
// instantaneous tip velocity for a unit angular velocity of that joint
// with all others held fixed.
//
// The chain is walked once, accumulating the running transform so each
// joint's rotation axis is expressed in the root frame.
func (j *Joint) Gradients() []geom.Vec2 {
	grads := make([]geom.Vec2, 0, j.Count())
	t := geom.Identity()
	for cur := j; cur != nil; cur = cur.Child {
		grads = append(grads, t.ApplyToDirection(cur.Offset().Rotate90()))
		t = cur.LocalTransform().After(t)
	}
	return grads
}
