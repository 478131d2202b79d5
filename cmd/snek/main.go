// snek - Terminal inverse-kinematics toy
// A multi-segment arm wriggles across the terminal, its tip chasing the
// mouse pointer.
//
// Controls:
//
//	Mouse move  - Set the target the arm's tip chases
//	D           - Toggle demo mode (target follows a Lissajous path)
//	G           - Toggle glide (spring-smoothed target motion)
//	R           - Reset the pose
//	?           - Toggle HUD overlay (FPS, joints, tip distance)
//	Esc/Q       - Quit
package main

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"os"
	"time"

	"fortio.org/log"
	"fortio.org/terminal/ansipixels"
	"fortio.org/terminal/ansipixels/tcolor"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/harmonica"
	"github.com/spf13/cobra"
	"github.com/taigrr/snek/pkg/arm"
	"github.com/taigrr/snek/pkg/geom"
	"github.com/taigrr/snek/pkg/render"
)

var (
	targetFPS float64
	numJoints int
	minLength float64
	maxLength float64
	bgColor   string
	glide     bool
	demo      bool
)

func main() {
	cmd := &cobra.Command{
		Use:   "snek",
		Short: "Terminal inverse-kinematics toy",
		Long: `snek - Terminal inverse-kinematics toy

A multi-segment arm wriggles across the terminal, its tip chasing the
mouse pointer via an iterative Jacobian solver.

Controls:
  Mouse move  - Set the target
  D           - Toggle demo mode (Lissajous target path)
  G           - Toggle glide (spring-smoothed target)
  R           - Reset the pose
  ?           - Toggle HUD overlay
  Esc/Q       - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}

	cmd.Flags().Float64Var(&targetFPS, "fps", 50, "Target FPS (one solver tick per frame)")
	cmd.Flags().IntVar(&numJoints, "joints", 50, "Number of joints in the chain")
	cmd.Flags().Float64Var(&minLength, "min-length", 10, "Tip segment length")
	cmd.Flags().Float64Var(&maxLength, "max-length", 15, "Root segment length")
	cmd.Flags().StringVar(&bgColor, "bg", "", "Background color (R,G,B)")
	cmd.Flags().BoolVar(&glide, "glide", false, "Spring-smooth the target toward the pointer")
	cmd.Flags().BoolVar(&demo, "demo", false, "Animate the target along a Lissajous path")

	if err := fang.Execute(context.Background(), cmd); err != nil {
		os.Exit(1)
	}
}

// targetState holds the pointer-driven target and its optional glide
// springs. The tracker only ever reads the most recent value once per tick.
type targetState struct {
	Pos     geom.Vec2 // what the tracker chases
	Pointer geom.Vec2 // most recent pointer position, world space

	springX, springY harmonica.Spring
	velX, velY       float64
}

func newTargetState(fps int) *targetState {
	return &targetState{
		// Frequency 6.0, damping 1.0: critically damped, no overshoot.
		springX: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
		springY: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

// Update advances the target by one frame: either snap to the pointer or
// glide toward it on the springs.
func (s *targetState) Update(glide bool) {
	if !glide {
		s.Pos = s.Pointer
		s.velX, s.velY = 0, 0
		return
	}
	s.Pos.X, s.velX = s.springX.Update(s.Pos.X, s.velX, s.Pointer.X)
	s.Pos.Y, s.velY = s.springY.Update(s.Pos.Y, s.velY, s.Pointer.Y)
}

// hud renders the overlay with solver info.
type hud struct {
	fps       float64
	fpsFrames int
	fpsTime   time.Time
	show      bool
}

func (h *hud) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

func (h *hud) Draw(ap *ansipixels.AnsiPixels, chain *arm.Joint, dist float64) {
	if !h.show {
		return
	}
	ap.WriteAt(0, 0, tcolor.Green.Foreground()+"%.0f FPS "+tcolor.Reset, h.fps)
	ap.WriteCentered(0, "%d joints", chain.Count())
	ap.WriteRight(0, tcolor.Cyan.Foreground()+"tip Δ %.1f "+tcolor.Reset, dist)
	mode := "mouse"
	if demo {
		mode = "demo"
	}
	if glide {
		mode += "+glide"
	}
	ap.WriteAt(0, ap.H-1, "[%s] d: demo  g: glide  r: reset  ?: hud", mode)
}

//nolint:gocognit,funlen // main loop, it's all glue.
func run(ctx context.Context) error {
	bg := color.RGBA{A: 255}
	if bgColor != "" {
		if _, err := fmt.Sscanf(bgColor, "%d,%d,%d", &bg.R, &bg.G, &bg.B); err != nil {
			return fmt.Errorf("parse background color %q: %w", bgColor, err)
		}
	}

	initialAngle := 4 * math.Pi / float64(numJoints)
	chain := arm.NewChain(numJoints, minLength, maxLength, initialAngle)
	tracker := arm.NewTracker(chain)
	reach := 0.0
	for _, j := range chain.Joints() {
		reach += j.Length
	}
	log.Infof("chain: %d joints, reach %.0f units", numJoints, reach)

	ap := ansipixels.NewAnsiPixels(targetFPS)
	if err := ap.Open(); err != nil {
		return fmt.Errorf("open ansipixels: %w", err)
	}
	defer func() {
		ap.ShowCursor()
		ap.MouseTrackingOff()
		ap.Out.Flush()
		ap.Restore()
	}()
	ap.MouseTrackingOn()
	ap.HideCursor()

	fb := render.NewFramebuffer(ap.W, ap.H*2)
	fb.BG = bg

	// The chain lives in its own coordinate space; base maps it onto the
	// framebuffer, scaled so the full reach stays on screen. The render
	// layer recovers the scale per frame for the locus radii.
	fit := func() (geom.Transform, float64) {
		s := 0.45 * math.Min(float64(fb.Width), float64(fb.Height)) / reach
		center := geom.V2(float64(fb.Width)/2, float64(fb.Height)/2)
		return geom.Identity().Scale(s).Translate(center), s
	}
	base, scale := fit()

	ap.OnResize = func() error {
		fb.Resize(ap.W, ap.H*2)
		base, scale = fit()
		return nil
	}

	target := newTargetState(int(math.Round(targetFPS)))
	target.Pointer = chain.TipPosition()
	target.Pos = target.Pointer

	ap.OnMouse = func() {
		if demo {
			return
		}
		// Terminal cell -> framebuffer pixel -> chain space.
		px := float64(ap.Mx)
		py := float64(ap.My * 2)
		target.Pointer = geom.V2(
			(px-float64(fb.Width)/2)/scale,
			(py-float64(fb.Height)/2)/scale,
		)
	}

	overlay := &hud{fpsTime: time.Now(), show: true}
	segColor := render.RGB(0, 255, 128)
	locusColor := render.RGB(60, 60, 60)
	targetColor := render.RGB(255, 80, 80)

	demoClock := 0.0
	err := ap.FPSTicks(ctx, func(context.Context) bool {
		for _, b := range ap.Data {
			switch b {
			case 'r', 'R':
				for _, j := range chain.Joints() {
					j.Angle = initialAngle
				}
			case 'd', 'D':
				demo = !demo
			case 'g', 'G':
				glide = !glide
			case '?':
				overlay.show = !overlay.show
			case 'q', 'Q', 27: // Escape
				return false
			case 3, 4: // Ctrl-C, Ctrl-D
				return false
			}
		}

		if demo {
			demoClock += 1 / targetFPS
			target.Pointer = geom.V2(
				0.8*reach*math.Cos(demoClock),
				0.5*reach*math.Sin(1.3*demoClock),
			)
		}
		target.Update(glide)

		if err := tracker.Step(target.Pos); err != nil {
			log.Errf("tracker step: %v", err)
			return false
		}

		fb.Clear()
		if err := render.DrawArm(fb, chain, base, segColor, locusColor); err != nil {
			log.Errf("draw arm: %v", err)
			return false
		}
		render.DrawTarget(fb, base, target.Pos, targetColor)

		ap.ClearScreen()
		for y, row := range fb.HalfBlockRows() {
			if y >= ap.H {
				break
			}
			ap.WriteAtStr(0, y, row)
		}
		overlay.UpdateFPS()
		overlay.Draw(ap, chain, target.Pos.Distance(chain.TipPosition()))
		return true
	})
	if err != nil {
		return fmt.Errorf("main loop: %w", err)
	}
	return nil
}
