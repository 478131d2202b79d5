// Package arm implements the kinematic chain and the iterative inverse
// kinematics that make its tip chase a target.
package arm

import (
	"fmt"

	"github.com/taigrr/snek/pkg/geom"
)

// Joint is one link of the chain: a rigid segment of fixed Length followed
// by a free rotation of Angle radians. Joints form a singly-linked chain
// from the root (fixed base) to the tip; each node owns its Child.
// Angle is the only field mutated after construction.
type Joint struct {
	Angle  float64
	Length float64
	Child  *Joint
}

// ParameterCountMismatchError reports a parameter or delta slice whose
// length does not match the chain's joint count.
type ParameterCountMismatchError struct {
	Got, Want int
}

func (e *ParameterCountMismatchError) Error() string {
	return fmt.Sprintf("parameter count %d does not match joint count %d", e.Got, e.Want)
}

// NewChain builds a chain of n joints with segment lengths interpolated
// linearly from maxLen at the root to minLen at the tip, all starting at
// the same angle.
func NewChain(n int, minLen, maxLen, angle float64) *Joint {
	if n <= 0 {
		return nil
	}
	var root, prev *Joint
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		j := &Joint{
			Angle:  angle,
			Length: maxLen + (minLen-maxLen)*t,
		}
		if prev == nil {
			root = j
		} else {
			prev.Child = j
		}
		prev = j
	}
	return root
}

// LocalOffset returns the segment endpoint before rotation, (Length, 0).
func (j *Joint) LocalOffset() geom.Vec2 {
	return geom.V2(j.Length, 0)
}

// Offset returns the segment endpoint relative to the joint's base, after
// the joint's rotation.
func (j *Joint) Offset() geom.Vec2 {
	return j.LocalOffset().Rotate(j.Angle)
}

// LocalTransform maps the child's frame into this joint's frame: translate
// along the segment, then rotate by the joint angle.
func (j *Joint) LocalTransform() geom.Transform {
	return geom.Identity().Translate(j.LocalOffset()).Rotate(j.Angle)
}

// Count returns the number of joints from this one to the tip, inclusive.
func (j *Joint) Count() int {
	n := 0
	for cur := j; cur != nil; cur = cur.Child {
		n++
	}
	return n
}

// Joints returns the chain as a root-to-tip slice.
func (j *Joint) Joints() []*Joint {
	joints := make([]*Joint, 0, j.Count())
	for cur := j; cur != nil; cur = cur.Child {
		joints = append(joints, cur)
	}
	return joints
}

// TipPosition returns the position of the chain's free end in the root's
// frame, composing local transforms root to tip.
func (j *Joint) TipPosition() geom.Vec2 {
	if j.Child == nil {
		return j.LocalTransform().ApplyToPosition(geom.Zero())
	}
	return j.LocalTransform().ApplyToPosition(j.Child.TipPosition())
}

// ApplyDeltas adds one angle increment per joint, root to tip. The delta
// count must match the joint count exactly.
func (j *Joint) ApplyDeltas(deltas []float64) error {
	if got, want := len(deltas), j.Count(); got != want {
		return &ParameterCountMismatchError{Got: got, Want: want}
	}
	i := 0
	for cur := j; cur != nil; cur = cur.Child {
		cur.Angle += deltas[i]
		i++
	}
	return nil
}
