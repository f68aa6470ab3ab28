//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/polyuxixi/wave-data/internal/core"
	"github.com/polyuxixi/wave-data/internal/render"
	"github.com/polyuxixi/wave-data/internal/ui"
)

// Game adapts an animation to the ebiten.Game interface. Ebiten ticks at
// its own rate; the step clock converts wall time into animation steps so
// the configured frame rate holds whatever the display refresh is.
type Game struct {
	anim    core.Animation
	painter *render.Painter
	overlay *ui.Overlay
	clock   *core.StepClock

	scale    int
	seed     int64
	paused   bool
	tickOnce bool

	shader  *ebiten.Shader
	shimmer bool
	start   time.Time
}

// New constructs a Game stepping the animation stepRate times per second.
func New(anim core.Animation, scale, stepRate int, seed int64) *Game {
	size := anim.Size()
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		anim:    anim,
		painter: render.NewPainter(size.W, size.H),
		overlay: ui.NewOverlay(anim),
		clock:   core.NewStepClock(stepRate),
		scale:   scale,
		seed:    seed,
		start:   time.Now(),
	}
}

// EnableShimmer compiles the water shimmer postprocess and switches it on.
func (g *Game) EnableShimmer() error {
	s, err := ebiten.NewShader([]byte(shimmerSrc))
	if err != nil {
		return err
	}
	g.shader = s
	g.shimmer = true
	return nil
}

// Reset reinitializes the animation with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.anim.Reset(seed)
}

// Update handles input and advances the animation on the step clock. A
// finished non-looping run freezes on its final frame; quitting stays on
// the usual keys.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) && g.shader != nil {
		g.shimmer = !g.shimmer
	}
	g.overlay.Update()

	steps := g.clock.Advance(time.Now())
	if g.paused {
		steps = 0
		if g.tickOnce {
			steps = 1
			g.tickOnce = false
		}
	}
	for i := 0; i < steps && !g.anim.Done(); i++ {
		g.anim.Step()
	}
	return nil
}

// Draw uploads the composed frame and paints it, optionally through the
// shimmer shader, then lays the stats overlay on top.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.shimmer && g.shader != nil && g.painter.Upload(g.anim.Frame()) {
		size := g.anim.Size()
		op := &ebiten.DrawRectShaderOptions{}
		op.Images[0] = g.painter.Source()
		op.Uniforms = map[string]any{
			"Time": float32(time.Since(g.start).Seconds()),
		}
		op.GeoM.Scale(float64(g.scale), float64(g.scale))
		screen.DrawRectShader(size.W, size.H, g.shader, op)
	} else {
		g.painter.Blit(screen, g.anim.Frame(), g.scale)
	}
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.anim.Size()
	return s.W * g.scale, s.H * g.scale
}
