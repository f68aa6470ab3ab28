package creature

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/polyuxixi/wave-data/internal/render"
	"github.com/polyuxixi/wave-data/pkg/curve"
)

const trunkDots = 90

// drawTrunk paints the tapered dot column hanging from the bell and its
// mirror. The lateral path is a sum of two sine terms; dirPhase shifts its
// posture with the wave direction and wiggleAmp widens the secondary
// wiggle with the current. Most consecutive dots are joined by a faded
// stroke in the dot's own color, which reads as mist around the column.
func (j *Jellyfish) drawTrunk(b *render.Buffer, t float64, cx, cy, ry int, dirPhase, wiggleAmp float64, sp *rand.Rand, cs *Counts) {
	_, h := b.Size()
	baseX := float64(cx)
	baseY := float64(cy) + float64(ry)*0.98
	trunkLen := float64(h) * 0.32

	lateral := curve.Sum{
		{Amp: 60, Freq: 2.5, Phase: t/60 + dirPhase},
		{Amp: wiggleAmp, Freq: 4, Phase: t / 90},
	}
	vertical := curve.Sum{
		{Amp: 80, Freq: 2.5, Phase: t / 80},
		{Amp: 30, Freq: 5, Phase: t / 100},
	}
	var prevX, prevY float64
	for i := 0; i < trunkDots; i++ {
		f := float64(i) / float64(trunkDots-1)
		x := baseX + lateral.At(f)
		y := baseY + trunkLen*f*0.92 + vertical.At(f)
		size := int(4 - 2.5*f + 1.5*math.Sin(float64(i)*0.7+t/80))

		blue := 210 + 40*(1-f)
		white := 160 - 50*f
		purple := 140 + 80*math.Sin(f*3+t/70+float64(i)*0.05)
		alpha := 180 - 150*f
		c := color.RGBA{
			R: clampByte(white*0.25 + purple*0.50 + blue*0.25),
			G: clampByte(white*0.20 + purple*0.35 + blue*0.25),
			B: clampByte(blue*0.85 + purple*0.15),
			A: clampByte(alpha),
		}
		if sp.Float64() < 0.05*(1-f)+0.01 {
			c = color.RGBA{R: 250, G: 250, B: 255, A: clampByte(alpha + 40)}
			cs.Sparkles++
		}
		b.FillCircle(int(x), int(y), size, c)
		b.FillCircle(2*cx-int(x), int(y), size, c)
		cs.TrunkDots += 2
		if i > 0 && sp.Float64() < 0.7 {
			mist := color.RGBA{R: c.R, G: c.G, B: c.B, A: clampByte(80 - 70*f)}
			b.Line(int(prevX), int(prevY), int(x), int(y), mist)
			b.Line(2*cx-int(prevX), int(prevY), 2*cx-int(x), int(y), mist)
			cs.Trails += 2
		}
		prevX, prevY = x, y
	}
}

// swayAmplitude maps the current speed to the tentacles' angular sway
// amplitude in radians. The gain saturates once the current passes
// 0.5 m/s, the same knee as the trunk wiggle.
func swayAmplitude(current float64) float64 {
	return 0.35 + 0.3*math.Min(1, 2*current)
}

// tentacleBudget scales the height-derived tentacle count by the
// configured density, never below zero.
func (j *Jellyfish) tentacleBudget(waveHeight float64) int {
	if n := int(float64(TentacleCount(waveHeight)) * j.TentacleScale); n > 0 {
		return n
	}
	return 0
}

// tentaclePath traces tentacle k of n from the lower bell rim, handing
// each segment's endpoints to visit. sway is the shared whip phase and
// swayAmp its angular amplitude.
func (j *Jellyfish) tentaclePath(t, sway, swayAmp float64, cx, cy, rx, ry, k, n int, visit func(s int, sf, px, py, nx, ny float64)) {
	f := 0.5
	if n > 1 {
		f = float64(k) / float64(n-1)
	}
	theta := math.Pi * (0.12 + 0.76*f)
	px := float64(cx) + float64(rx)*0.82*math.Cos(theta)
	py := float64(cy) + float64(ry)*0.82*math.Sin(theta)
	segs := j.segmentCount(k)
	for s := 0; s < segs; s++ {
		sf := float64(s) / float64(segs-1)
		angle := 1.2*math.Pi + 0.7*math.Pi*f + swayAmp*math.Sin(sway+float64(k)*0.3+float64(s)*0.2)
		length := curve.Osc(t, 60+32*sf, 18, 1.0/80, 0.7*float64(s))
		bend := curve.Osc(t, 0, 0.5, 1.0/100, 0.5*float64(s))
		nx := px + length*math.Cos(angle+bend)
		ny := py + length*math.Sin(angle+bend)
		visit(s, sf, px, py, nx, ny)
		px, py = nx, ny
	}
}

// drawTentacles paints every tentacle as a chain of shrinking dots grown
// segment by segment from the lower bell rim, plus the axis mirror.
func (j *Jellyfish) drawTentacles(b *render.Buffer, waveHeight, t, sway, swayAmp float64, cx, cy, rx, ry int, sp *rand.Rand, cs *Counts) {
	n := j.tentacleBudget(waveHeight)
	for k := 0; k < n; k++ {
		j.tentaclePath(t, sway, swayAmp, cx, cy, rx, ry, k, n, func(s int, sf, px, py, nx, ny float64) {
			size := int(2 + 2.5*(1-sf) + 1.5*math.Sin(float64(s)*0.7+t/90))

			blue := 190 + 50*(1-sf)
			white := 180 - 90*sf
			purple := 150 + 90*math.Sin(sf*5+t/60+float64(k)*0.4+float64(s)*0.15)
			alpha := 120 - 110*sf
			c := color.RGBA{
				R: clampByte(white*0.20 + purple*0.55 + blue*0.25),
				G: clampByte(white*0.15 + purple*0.40 + blue*0.25),
				B: clampByte(blue*0.80 + purple*0.20),
				A: clampByte(alpha),
			}
			if sp.Float64() < 0.035*(1-sf)+0.006 {
				c = color.RGBA{R: 240, G: 240, B: 255, A: clampByte(alpha + 50)}
				cs.Sparkles++
			}
			b.FillCircle(int(nx), int(ny), size, c)
			b.FillCircle(2*cx-int(nx), int(ny), size, c)
			cs.TentacleDots += 2
		})
	}
}

// drawTentacleTrails retraces every tentacle at a rewound clock and sway
// phase as thin connected lines, one faded copy per call. Trails draw no
// dots and consume no randomness.
func (j *Jellyfish) drawTentacleTrails(b *render.Buffer, waveHeight, t, sway, swayAmp float64, cx, cy, rx, ry int, alphaScale float64, cs *Counts) {
	n := j.tentacleBudget(waveHeight)
	for k := 0; k < n; k++ {
		j.tentaclePath(t, sway, swayAmp, cx, cy, rx, ry, k, n, func(s int, sf, px, py, nx, ny float64) {
			blue := 190 + 50*(1-sf)
			white := 180 - 90*sf
			purple := 150 + 90*math.Sin(sf*5+t/60+float64(k)*0.4+float64(s)*0.15)
			c := color.RGBA{
				R: clampByte(white*0.20 + purple*0.55 + blue*0.25),
				G: clampByte(white*0.15 + purple*0.40 + blue*0.25),
				B: clampByte(blue*0.80 + purple*0.20),
				A: clampByte((60 - 55*sf) * alphaScale),
			}
			b.Line(int(px), int(py), int(nx), int(ny), c)
			b.Line(2*cx-int(px), int(py), 2*cx-int(nx), int(ny), c)
			cs.Trails += 2
		})
	}
}
