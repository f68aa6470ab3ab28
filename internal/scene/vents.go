package scene

import (
	"image/color"
	"math"

	"github.com/ojrac/opensimplex-go"

	"github.com/polyuxixi/wave-data/internal/render"
)

const (
	ventCount        = 5
	ventParticleLife = 300

	// ventNominalActivity is the midpoint of the activity pulse, used when
	// budgeting vent particles without a live clock.
	ventNominalActivity = 0.7
)

// ventParticleBudget is the plume particle count at a given activity level.
func ventParticleBudget(activity float64) int {
	return 30 + int(activity*40)
}

// ventField renders the hydrothermal vents along the seafloor. There is no
// per-vent state: particle positions are a pure function of the clock, with
// a seeded simplex field supplying the turbulent wiggle. The bases sway on
// a fixed slow cycle; rougher seas widen the plume jitter.
type ventField struct {
	noise   opensimplex.Noise
	density float64
}

func (v *ventField) reset(noise opensimplex.Noise, density float64) {
	v.noise = noise
	v.density = density
}

func (v *ventField) draw(b *render.Buffer, waveHeight, current float64, clock int, cs *Census) {
	w, h := b.Size()
	t := float64(clock)
	jitterAmp := 10 + 4*waveHeight
	for k := 0; k < ventCount; k++ {
		fk := float64(k)
		vx := float64(w)*(0.1+0.2*fk) + 30*math.Sin(t*0.015+fk)
		vy := float64(h - 15)
		act := 0.7 + 0.5*math.Sin(t*0.08+1.5*fk)

		n := scaled(ventParticleBudget(act), v.density)
		for p := 0; p < n; p++ {
			age := float64((clock + p*8 + k*100) % ventParticleLife)
			rise := age * (3 + 1.5*act)
			drift := jitterAmp*math.Sin(age*0.15+0.4*float64(p)) + current*20*math.Sin(age*0.08)
			drift += 6 * v.noise.Eval2(fk*10+float64(p)*0.31, age*0.02)
			px := int(vx + drift)
			py := int(vy - rise)
			if py <= h/3 {
				continue
			}
			lifeLeft := 1 - age/ventParticleLife
			size := int(5 * act * lifeLeft)
			if size < 1 {
				size = 1
			}
			heat := float64(int(act * 70 * lifeLeft))
			if heat < 1 {
				continue
			}
			c := ventParticleColor(age/ventParticleLife, heat)
			if size == 1 {
				b.Set(px, py, c)
			} else {
				if size > 2 {
					glow := color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A / 2}
					b.FillCircle(px, py, size*2, glow)
				}
				b.FillCircle(px, py, size, c)
			}
			cs.VentParticles++
		}

		v.drawBaseGlow(b, int(vx), int(vy), act)
	}
}

// ventParticleColor runs hot red-orange at the source through orange-yellow
// to the cool blue-white of precipitating minerals.
func ventParticleColor(ageFactor, heat float64) color.RGBA {
	switch {
	case ageFactor < 0.3:
		return color.RGBA{R: colorByte(heat + 40), G: colorByte(heat/1.5 + 20), B: colorByte(heat / 3), A: colorByte(heat)}
	case ageFactor < 0.7:
		return color.RGBA{R: colorByte(heat + 20), G: colorByte(heat + 10), B: colorByte(heat / 2), A: colorByte(heat)}
	default:
		return color.RGBA{R: colorByte(heat / 2), G: colorByte(heat / 1.5), B: colorByte(heat + 15), A: colorByte(heat)}
	}
}

// drawBaseGlow stacks shrinking ellipses into the molten halo at the vent
// mouth.
func (v *ventField) drawBaseGlow(b *render.Buffer, vx, vy int, act float64) {
	gi := act * 100
	gs := int(12 + act*8)
	for r := gs; r >= 1; r-- {
		a := gi * (float64(r) / float64(gs)) * 0.6
		c := color.RGBA{R: colorByte(a + 25), G: colorByte(a / 1.5), B: colorByte(a / 3), A: colorByte(a)}
		b.FillEllipse(vx, vy+r/2, r*3, int(1.5*float64(r)), c)
	}
}
