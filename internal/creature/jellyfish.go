// Package creature renders the dot-cloud jellyfish at the heart of the
// abyss scene. Every pass recomputes the body from the interpolated wave
// record, the animation clock, and the run seed; the only retained state is
// the tentacle sway phase. Wave height sets the dot and tentacle budget,
// wave period paces the sway, and the current and direction shape the
// trunk's posture and the width of the tentacle swing.
package creature

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/polyuxixi/wave-data/internal/core"
	"github.com/polyuxixi/wave-data/internal/render"
	"github.com/polyuxixi/wave-data/internal/wavedata"
	pcore "github.com/polyuxixi/wave-data/pkg/core"
)

const (
	spokeCount  = 18
	spokeLayers = 3

	// swayPhaseScale paces the tentacle sway against the wave period:
	// short chop whips the tentacles, a long swell barely rocks them.
	swayPhaseScale = 0.1

	// sparkleCapMax bounds the per-dot sparkle probability however rough
	// the sea gets.
	sparkleCapMax = 0.08
)

// Stream labels for the run-seed derivations used by the creature.
const (
	sparkleStream  uint64 = 0x6a656c6c
	segmentCountID uint64 = 0x74656e74
)

// RingCount is the number of concentric bell contours for a wave height.
func RingCount(waveHeight float64) int {
	if waveHeight < 0 {
		waveHeight = 0
	}
	return 48 + int(4*waveHeight)
}

// EdgeDotBase is the dot count of the outermost bell contour; inner rings
// thin out from it.
func EdgeDotBase(waveHeight float64) int {
	if waveHeight < 0 {
		waveHeight = 0
	}
	return 360 + int(30*waveHeight)
}

// TentacleCount is the number of tentacles for a wave height.
func TentacleCount(waveHeight float64) int {
	if waveHeight < 0 {
		waveHeight = 0
	}
	return 24 + int(90*waveHeight)
}

// Metrics locates the bell inside a frame. The anchor ignores the swim
// drift so dependent placement, such as the HUD text block, stays put.
type Metrics struct {
	CenterX, CenterY int
	RadiusX, RadiusY int
}

// MetricsFor computes the static bell anchor for a frame size.
func MetricsFor(w, h int) Metrics {
	return Metrics{
		CenterX: w / 2,
		CenterY: int(float64(h)*0.19) + int(float64(h)*0.23),
		RadiusX: int(float64(w) * 0.12),
		RadiusY: int(float64(h) * 0.06),
	}
}

// swimOffset is the slow drift of the whole body through the water column.
func swimOffset(w, h int, t float64) (int, int) {
	ax := float64(w) * 0.025
	ay := float64(h) * 0.025
	return int(ax * math.Sin(t/90)), int(ay * math.Cos(t/120))
}

// Counts tallies the primitives one Draw pass produced.
type Counts struct {
	Spokes       int
	BellDots     int
	TrunkDots    int
	TentacleDots int
	Trails       int
	Sparkles     int
}

// Jellyfish is the scene's medusa.
type Jellyfish struct {
	seed int64
	rng  *pcore.RNG
	sway float64

	// TentacleScale multiplies the height-derived tentacle count. The
	// animator sets it from the density config; 1 is the baseline, and
	// Reset leaves it alone.
	TentacleScale float64
}

// New returns a jellyfish seeded for deterministic rendering at baseline
// tentacle density.
func New(seed int64) *Jellyfish {
	j := &Jellyfish{TentacleScale: 1}
	j.Reset(seed)
	return j
}

// Reset rebinds the seed and rewinds the sway phase.
func (j *Jellyfish) Reset(seed int64) {
	j.seed = seed
	j.rng = pcore.NewRNG(seed)
	j.sway = 0
}

// Advance moves the tentacle sway phase by one tick of the given wave
// period.
func (j *Jellyfish) Advance(period float64) {
	j.sway += swayPhaseScale / math.Max(0.5, period)
}

// Draw composes the full body: glow spokes under the bell, the dot-cloud
// bell with its internal detail, the trunk with its misty connecting
// strokes, then the tentacles over two faded trail copies rewound a few
// ticks so motion leaves an afterimage.
func (j *Jellyfish) Draw(b *render.Buffer, rec wavedata.Record, clock int) Counts {
	w, h := b.Size()
	m := MetricsFor(w, h)
	t := float64(clock)
	sx, sy := swimOffset(w, h, t)
	cx, cy := m.CenterX+sx, m.CenterY+sy

	var cs Counts
	drawSpokes(b, cx, cy, m.RadiusX, m.RadiusY, &cs)

	sp := j.rng.FrameStream(sparkleStream, clock)
	j.drawBell(b, rec.Height, t, cx, cy, m.RadiusX, m.RadiusY, sp, &cs)

	dirPhase := core.Deg2Rad(rec.Direction) * 0.15
	wiggleAmp := 40 + 10*math.Min(1, rec.Current*2)
	j.drawTrunk(b, t, cx, cy, m.RadiusY, dirPhase, wiggleAmp, sp, &cs)

	swayAmp := swayAmplitude(rec.Current)
	swayRate := swayPhaseScale / math.Max(0.5, rec.Period)
	// Trails consume no randomness; the sparkle stream stays aligned
	// between the rewound copies and the live pass.
	trails := []struct {
		back  float64
		alpha float64
	}{
		{back: 10, alpha: 0.25},
		{back: 5, alpha: 0.5},
	}
	for _, tr := range trails {
		j.drawTentacleTrails(b, rec.Height, t-tr.back, j.sway-swayRate*tr.back, swayAmp, cx, cy, m.RadiusX, m.RadiusY, tr.alpha, &cs)
	}
	j.drawTentacles(b, rec.Height, t, j.sway, swayAmp, cx, cy, m.RadiusX, m.RadiusY, sp, &cs)
	return cs
}

// drawSpokes paints the luminous radial lines inside the upper bell.
func drawSpokes(b *render.Buffer, cx, cy, rx, ry int, cs *Counts) {
	for g := 0; g < spokeLayers; g++ {
		alpha := uint8(60 / (g + 1))
		srx := float64(rx) * (1 - 0.08*float64(g))
		sry := float64(ry) * (1 - 0.08*float64(g))
		for s := 0; s < spokeCount; s++ {
			ang := -math.Pi * float64(s) / spokeCount
			x2 := float64(cx) + srx*math.Cos(ang)
			y2 := float64(cy) + sry*math.Sin(ang)
			if y2 >= float64(cy) {
				continue
			}
			b.Line(cx, cy, int(x2), int(y2), color.RGBA{R: 255, G: 255, B: 255, A: alpha})
			cs.Spokes++
		}
	}
}

// drawBell paints the umbrella as concentric dotted contours, denser and
// brighter at the rim, with a ripple through the mid wall and occasional
// white sparkles. Every dot is mirrored across the bell axis.
func (j *Jellyfish) drawBell(b *render.Buffer, waveHeight, t float64, cx, cy, rx, ry int, sp *rand.Rand, cs *Counts) {
	rings := RingCount(waveHeight)
	edgeBase := float64(EdgeDotBase(waveHeight))
	sparkleBase := math.Min(0.02*waveHeight, sparkleCapMax)
	for layer := 0; layer < rings; layer++ {
		f := float64(layer) / float64(rings-1)
		rX := float64(rx) * (1 - 0.18*f)
		rY := float64(ry) * (1 - 0.18*f)
		nDots := int(edgeBase*(1-0.7*f) + 40)
		blue := 200 + 55*(1-f)
		white := 220 - 110*f
		cyan := 200 + 40*math.Sin(f*3+t/220)
		alpha := 100 - 55*f
		for i := 0; i < nDots; i++ {
			theta := -math.Pi*(float64(i)/float64(nDots))*(1.08-0.12*f) - 0.08*math.Sin(t/80+float64(layer)*0.2)
			x := float64(cx) + rX*math.Cos(theta) + 18*math.Sin(f*2.5+t/120)
			y := float64(cy) + rY*math.Sin(theta) + 18*f + 12*math.Sin(theta*2+t/90)
			if f > 0.2 && f < 0.8 {
				y -= 18 * math.Sin(4*theta+t/60+f*6)
			}
			size := int(2 + 2.5*(1-f) + 1.5*math.Sin(theta*2+t/100))

			var c color.RGBA
			switch {
			case f < 0.18:
				// Icy rim highlight.
				c = color.RGBA{R: 210, G: 230, B: 255, A: clampByte(alpha + 50)}
			case f > 0.7:
				// Darker inner wall with a strong blue bias.
				c = color.RGBA{R: 80, G: 150, B: clampByte(blue + 80), A: clampByte(alpha)}
			default:
				c = color.RGBA{
					R: clampByte(white*0.4 + cyan*0.1 + blue*0.05),
					G: clampByte(150 + 25*math.Cos(theta+t/300) + cyan*0.15),
					B: clampByte(blue*0.9 + cyan*0.25 + 40),
					A: clampByte(alpha + 25),
				}
			}
			if sp.Float64() < bellSparkleZone(f)*sparkleBase {
				c = color.RGBA{R: 245, G: 245, B: 255, A: clampByte(float64(c.A) + 70)}
				cs.Sparkles++
			}
			b.FillCircle(int(x), int(y), size, c)
			b.FillCircle(2*cx-int(x), int(y), size, c)
			cs.BellDots += 2
		}
		if layer%7 == 0 && layer > 0 && layer < rings-1 {
			drawBellDetail(b, cx, cy, rX, rY, alpha)
		}
	}
}

// bellSparkleZone weights sparkle odds by depth into the bell: the rim
// glitters, the core barely does.
func bellSparkleZone(f float64) float64 {
	switch {
	case f < 0.25:
		return 1
	case f < 0.6:
		return 0.5
	default:
		return 0.25
	}
}

// drawBellDetail adds the faint structural lines inside every seventh
// ring: short radial struts plus flattened arcs bowing upward.
func drawBellDetail(b *render.Buffer, cx, cy int, rX, rY, alpha float64) {
	strut := color.RGBA{R: 80, G: 180, B: 255, A: clampByte(alpha * 0.32)}
	for i := 0; i < 12; i++ {
		phi := math.Pi - float64(i)*math.Pi/6
		x1 := float64(cx) + rX*math.Cos(phi)
		y1 := float64(cy) + rY*math.Sin(phi)
		x2 := float64(cx) + rX*0.7*math.Cos(phi)
		y2 := float64(cy) + rY*0.7*math.Sin(phi)
		b.Line(int(x1), int(y1), int(x2), int(y2), strut)
	}
	arc := color.RGBA{R: 30, G: 100, B: 255, A: clampByte(alpha * 0.18)}
	for i := 0; i < 8; i++ {
		phi0 := math.Pi*0.98 - float64(i)*math.Pi*1.96/8
		phi1 := phi0 - math.Pi*1.96/8
		rd := rX * 0.7
		yd := float64(cy) - math.Abs(rY*0.7*math.Sin((phi0+phi1)/2))
		b.Line(int(float64(cx)+rd*math.Cos(phi0)), int(yd), int(float64(cx)+rd*math.Cos(phi1)), int(yd), arc)
	}
}

// segmentCount is the stable segment count of tentacle k. Keyed off the
// seed and index so a tentacle keeps its length when rising seas append
// new neighbors.
func (j *Jellyfish) segmentCount(k int) int {
	return 12 + int(pcore.Mix(j.seed, segmentCountID+uint64(k))%10)
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
