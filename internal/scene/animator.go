// Package scene composes the abyss animation: a deep-water gradient, drifting
// particulate layers, hydrothermal vents, a kelp forest, and the jellyfish,
// all paced by interpolated ocean wave records. Composition happens on a CPU
// frame so the windowed viewer and the headless encoders share one pixel
// pipeline.
package scene

import (
	"fmt"
	"image"
	"log"

	"github.com/ojrac/opensimplex-go"

	"github.com/polyuxixi/wave-data/internal/core"
	"github.com/polyuxixi/wave-data/internal/creature"
	"github.com/polyuxixi/wave-data/internal/render"
	"github.com/polyuxixi/wave-data/internal/ui"
	"github.com/polyuxixi/wave-data/internal/wavedata"
	pcore "github.com/polyuxixi/wave-data/pkg/core"
)

// Stream labels for the per-layer randomness derived from the run seed.
const (
	streamSnow uint64 = iota + 1
	streamPlankton
	streamKelp
	streamFloor
	noiseKelp
	noiseVents
)

// Animator drives the abyss scene over a wave record sequence. It owns the
// frame buffer, the data cursor, and every layer's state; Step advances one
// animation tick and recomposes the frame.
type Animator struct {
	cfg     Config
	records []wavedata.Record
	cursor  *wavedata.Cursor
	buf     *render.Buffer
	rng     *pcore.RNG

	grad     gradient
	bands    bandSet
	snow     snowfield
	plankton planktonField
	rays     rayField
	kelp     kelpForest
	vents    ventField
	floor    seafloor
	jelly    *creature.Jellyfish

	census Census
	warned bool
}

// New builds an animator over the records and composes its first frame.
func New(cfg Config, records []wavedata.Record) *Animator {
	cfg = cfg.normalized()
	a := &Animator{
		cfg:     cfg,
		records: records,
		cursor:  wavedata.NewCursor(records, cfg.InterpSteps, cfg.Loop),
		buf:     render.NewBuffer(cfg.Width, cfg.Height),
		jelly:   creature.New(cfg.Seed),
	}
	a.jelly.TentacleScale = cfg.Density.Tentacles
	a.Reset(cfg.Seed)
	return a
}

// Name identifies the animation.
func (a *Animator) Name() string { return "abyss" }

// Size reports the frame dimensions in pixels.
func (a *Animator) Size() core.Size {
	return core.Size{W: a.cfg.Width, H: a.cfg.Height}
}

// Config returns the normalized configuration the animator runs with.
func (a *Animator) Config() Config { return a.cfg }

// Reset reseeds every layer and rewinds to the first frame. A zero seed
// falls back to the configured seed.
func (a *Animator) Reset(seed int64) {
	if seed == 0 {
		seed = a.cfg.Seed
	}
	a.rng = pcore.NewRNG(seed)
	a.cursor.Reset()
	a.warned = false

	w, h := a.cfg.Width, a.cfg.Height
	rec := a.clampedFrame()
	a.grad.reset()
	a.bands.reset()
	a.snow.reset(a.rng.Stream(streamSnow), w, h, rec.Height, a.cfg.Density.Snow)
	a.plankton.reset(a.rng.Stream(streamPlankton), w, h, a.cfg.Density.Plankton)
	a.kelp.reset(a.rng.Stream(streamKelp), opensimplex.New(int64(pcore.Mix(seed, noiseKelp))), w, h)
	a.vents.reset(opensimplex.New(int64(pcore.Mix(seed, noiseVents))), a.cfg.Density.Vents)
	a.floor.reset(a.rng.Stream(streamFloor), w)
	a.jelly.Reset(seed)
	a.compose()
}

// Step advances the cursor one tick, moves the accumulated phases, and
// recomposes the frame. Once a non-looping run is done it is a no-op.
func (a *Animator) Step() {
	if a.cursor.Done() {
		return
	}
	a.cursor.Advance()
	rec := a.clampedFrame()
	a.grad.advance(rec.Period)
	a.bands.advance(rec.Period)
	a.snow.advance(rec.Current, rec.Direction)
	a.plankton.advance(rec.Current, rec.Direction)
	a.jelly.Advance(rec.Period)
	a.compose()
}

// Frame returns the composed frame. The buffer is reused between steps, so
// sinks that retain frames must copy.
func (a *Animator) Frame() *image.RGBA { return a.buf.Image() }

// Done reports whether a non-looping run has shown its final frame.
func (a *Animator) Done() bool { return a.cursor.Done() }

// Census reports the primitive counts of the last composed frame.
func (a *Animator) Census() Census { return a.census }

// compose repaints the whole frame back to front. The gradient covers every
// pixel, so no explicit clear is needed.
func (a *Animator) compose() {
	rec := a.clampedFrame()
	clock := a.cursor.Tick()
	a.census = Census{}

	a.grad.draw(a.buf)
	a.bands.draw(a.buf, &a.grad, rec.Height, rec.Direction)
	a.snow.draw(a.buf, rec.Current, clock, &a.census)
	a.plankton.draw(a.buf, clock, &a.census)
	a.rays.draw(a.buf, clock, &a.census)
	a.kelp.draw(a.buf, rec.Current, clock, &a.census)
	a.vents.draw(a.buf, rec.Height, rec.Current, clock, &a.census)
	a.floor.draw(a.buf, clock, &a.census)
	a.census.Creature = a.jelly.Draw(a.buf, rec, clock)
	a.drawReadout()
}

// clampedFrame returns the interpolated record with the wave height bounded
// to the range the compositor supports. The raw value is logged once per
// run when it falls outside. The guard is written so only a height proven
// in range skips the clamp; NaN takes the clamp path.
func (a *Animator) clampedFrame() wavedata.Record {
	rec := a.cursor.Frame()
	if !(rec.Height >= 0 && rec.Height <= MaxWaveHeight) {
		if !a.warned {
			log.Printf("abyss: wave height %.2f m outside [0, %.0f], clamping for render", rec.Height, MaxWaveHeight)
			a.warned = true
		}
		rec.Height = core.Clamp(rec.Height, 0, MaxWaveHeight)
	}
	return rec
}

// ReadoutLines formats the wave readout shown beside the bell. Values are
// the raw interpolated record, not the render-clamped one. The lines stay
// plain ASCII so the raster face can draw every glyph.
func (a *Animator) ReadoutLines() []string {
	rec := a.cursor.Frame()
	return []string{
		fmt.Sprintf("Wave Height: %.2f m", rec.Height),
		fmt.Sprintf("Wave Dir: %.0f deg", rec.Direction),
		fmt.Sprintf("Wave Period: %.2f s", rec.Period),
		fmt.Sprintf("Current Speed: %.2f m/s", rec.Current),
	}
}

// drawReadout anchors the readout to the static bell position so the text
// holds still while the body drifts.
func (a *Animator) drawReadout() {
	m := creature.MetricsFor(a.cfg.Width, a.cfg.Height)
	x := m.CenterX + m.RadiusX + int(float64(a.cfg.Width)*0.115)
	y := m.CenterY - m.RadiusY + 80
	ui.DrawLines(a.buf.Image(), a.ReadoutLines(), x, y)
}

// Stats publishes the wave record, playback position, and frame census for
// the debug overlay and reporting tools.
func (a *Animator) Stats() core.StatsSnapshot {
	rec := a.cursor.Frame()
	idx, _ := a.cursor.Pos()
	cs := a.census
	return core.StatsSnapshot{Groups: []core.StatGroup{
		{Name: "wave", Stats: []core.Stat{
			core.FloatStat("height", rec.Height, 2, " m"),
			core.FloatStat("direction", rec.Direction, 0, " deg"),
			core.FloatStat("period", rec.Period, 2, " s"),
			core.FloatStat("current", rec.Current, 2, " m/s"),
		}},
		{Name: "playback", Stats: []core.Stat{
			core.IntStat("tick", a.cursor.Tick()),
			core.RatioStat("record", idx+1, a.cursor.Len()),
		}},
		{Name: "census", Stats: []core.Stat{
			core.IntStat("snow", cs.Snow),
			core.IntStat("plankton", cs.Plankton),
			core.IntStat("kelp segs", cs.KelpSegments),
			core.IntStat("vent parts", cs.VentParticles),
			core.IntStat("bell dots", cs.Creature.BellDots),
			core.IntStat("tentacle dots", cs.Creature.TentacleDots),
			core.IntStat("trails", cs.Creature.Trails),
			core.IntStat("sparkles", cs.Creature.Sparkles),
		}},
	}}
}
