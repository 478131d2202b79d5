package render

import (
	"image/color"
	"math"

	"github.com/taigrr/snek/pkg/arm"
	"github.com/taigrr/snek/pkg/geom"
)

// DrawArm draws the chain into the framebuffer: per joint, a line segment
// between its two endpoints and a faint circle marking the locus its free
// end can sweep. base places and scales the chain on the buffer; the chain
// itself is only read, never mutated.
func DrawArm(fb *Framebuffer, chain *arm.Joint, base geom.Transform, segment, locus color.RGBA) error {
	t := base
	for j := chain; j != nil; j = j.Child {
		scale, err := t.ExtractScale()
		if err != nil {
			return err
		}
		start := t.ApplyToPosition(geom.Zero())
		end := t.ApplyToPosition(j.Offset())
		fb.DrawCircle(round(start.X), round(start.Y), round(j.Length*scale), locus)
		fb.DrawLine(round(start.X), round(start.Y), round(end.X), round(end.Y), segment)
		t = j.LocalTransform().After(t)
	}
	return nil
}

// DrawTarget draws a small crosshair at a world-space position.
func DrawTarget(fb *Framebuffer, base geom.Transform, target geom.Vec2, c color.RGBA) {
	p := base.ApplyToPosition(target)
	x, y := round(p.X), round(p.Y)
	fb.DrawLine(x-2, y, x+2, y, c)
	fb.DrawLine(x, y-2, x, y+2, c)
}

func round(f float64) int {
	return int(math.Round(f))
}
