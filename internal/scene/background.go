package scene

import (
	"math"

	"github.com/polyuxixi/wave-data/internal/render"
)

// MaxWaveHeight caps the wave height used for particle budgets and color
// math. Open-ocean records above this are treated as sensor glitches.
const MaxWaveHeight = 20.0

// gradientPhaseScale converts the wave period into the per-tick phase
// advance of the background shimmer. Short chop flickers faster than a
// long rolling swell.
const gradientPhaseScale = 0.72

// phaseRate returns the per-tick phase advance for a layer with the given
// scale. The period is floored so becalmed readings cannot stall a phase.
func phaseRate(scale, period float64) float64 {
	return scale / math.Max(0.5, period)
}

// gradient paints the depth fade every other layer sits on: near-black at
// the surface line deepening to a dark blue at the seafloor, with a faint
// row shimmer riding on the wave period.
type gradient struct {
	phase float64

	// bottom holds the final row's color after a draw pass. The shimmer
	// bands tint themselves relative to it.
	bottomR, bottomG, bottomB float64
}

func (g *gradient) reset() {
	g.phase = 0
}

func (g *gradient) advance(period float64) {
	g.phase += phaseRate(gradientPhaseScale, period)
}

func (g *gradient) draw(b *render.Buffer) {
	_, h := b.Size()
	var r, gr, bl float64
	for y := 0; y < h; y++ {
		depth := float64(y) / float64(h)
		influence := 0.02 * math.Sin(float64(y)*0.01+g.phase)
		r = 1 + depth*4 + influence*2
		gr = 3 + depth*8 + influence*3
		bl = 8 + depth*20 + influence*5
		b.FillRow(y, colorByte(r), colorByte(gr), colorByte(bl))
	}
	g.bottomR, g.bottomG, g.bottomB = r, gr, bl
}

// colorByte truncates a float channel into the displayable range.
func colorByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
