package scene

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/polyuxixi/wave-data/internal/core"
	"github.com/polyuxixi/wave-data/internal/render"
)

const (
	snowBase      = 250
	snowPerHeight = 80
)

// snowCount is the marine snow population for a clamped wave height, never
// below the flat-sea base.
func snowCount(waveHeight float64) int {
	if n := snowBase + int(waveHeight*snowPerHeight); n > snowBase {
		return n
	}
	return snowBase
}

// snowPart is one marine snow particle. Position and look are fixed at
// reset; only the shared drift accumulators and the per-particle wobble
// move it.
type snowPart struct {
	xBase  float64
	yBase  float64
	size   int
	bright uint8
	alpha  uint8
}

// snowfield is the persistent marine snow population. The particle count is
// locked in at reset from the opening record and the configured density, so
// flakes never pop in or out as the measurements change mid-run; they sink
// and wrap toroidally instead.
type snowfield struct {
	parts []snowPart
	fall  float64
	sweep float64
}

func (s *snowfield) reset(r *rand.Rand, w, h int, waveHeight, density float64) {
	n := scaled(snowCount(waveHeight), density)
	s.parts = make([]snowPart, n)
	s.fall = 0
	s.sweep = 0
	for i := range s.parts {
		s.parts[i] = snowPart{
			xBase:  float64(r.IntN(w)),
			yBase:  float64(r.IntN(h)),
			size:   snowSize(r),
			bright: uint8(40 + r.IntN(60)),
			alpha:  uint8(80 + r.IntN(80)),
		}
	}
}

// snowSize picks a particle radius, strongly favoring dust-sized flakes.
func snowSize(r *rand.Rand) int {
	v := r.Float64()
	switch {
	case v < 0.6:
		return 1
	case v < 0.75:
		return 2
	case v < 0.85:
		return 3
	case v < 0.95:
		return 4
	default:
		return 5
	}
}

// advance moves the whole field by one drift step: a constant settle plus
// a current-sized push rotated to the wave bearing.
func (s *snowfield) advance(current, direction float64) {
	push := 0.8 * current
	dir := core.Deg2Rad(direction)
	s.sweep += push * math.Sin(dir)
	s.fall += 1.2 + push*math.Cos(dir)
}

func (s *snowfield) draw(b *render.Buffer, current float64, clock int, cs *Census) {
	w, h := b.Size()
	spanX, spanY := float64(w), float64(h)
	t := float64(clock)
	for i := range s.parts {
		p := &s.parts[i]
		wobble := current * 40 * math.Sin(t*0.02+float64(i)*0.1)
		x := int(core.Wrap(p.xBase+s.sweep, spanX))
		y := int(core.Wrap(p.yBase+s.fall+wobble, spanY))
		c := color.RGBA{R: p.bright, G: p.bright + 12, B: p.bright + 20, A: p.alpha}
		if p.size == 1 {
			b.Set(x, y, c)
		} else {
			b.FillCircle(x, y, p.size, c)
		}
		cs.Snow++
	}
}
