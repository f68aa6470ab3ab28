package scene

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/ojrac/opensimplex-go"

	"github.com/polyuxixi/wave-data/internal/core"
	"github.com/polyuxixi/wave-data/internal/render"
)

const (
	kelpCount    = 20
	kelpSegments = 35
)

// kelpAmpFactor scales frond sway with the ocean current. A slack current
// still leaves a visible idle sway; a ripping one doubles it.
func kelpAmpFactor(current float64) float64 {
	return core.Clamp(0.4+current*1.2, 0.4, 2.0)
}

// kelpFrond is one silhouetted strand anchored near the seafloor.
type kelpFrond struct {
	baseX, baseY float64
	height       float64
	swayAmp      float64
	swayFreq     float64
}

// kelpForest draws the distant kelp shadows. Anchors and proportions are
// fixed per run; sway follows the clock and the current, with a slow
// simplex wobble per frond so the strands never move in lockstep.
type kelpForest struct {
	fronds []kelpFrond
	noise  opensimplex.Noise
}

func (k *kelpForest) reset(r *rand.Rand, noise opensimplex.Noise, w, h int) {
	k.noise = noise
	k.fronds = make([]kelpFrond, kelpCount)
	for i := range k.fronds {
		k.fronds[i] = kelpFrond{
			baseX:    float64(w/10 + r.IntN(w*8/10)),
			baseY:    float64(h - (10 + r.IntN(70))),
			height:   float64(h/2 + r.IntN(h*3/10)),
			swayAmp:  float64(25 + r.IntN(20)),
			swayFreq: 0.015 + r.Float64()*0.02,
		}
	}
}

func (k *kelpForest) draw(b *render.Buffer, current float64, clock int, cs *Census) {
	ampF := kelpAmpFactor(current)
	t := float64(clock)
	for i := range k.fronds {
		fr := &k.fronds[i]
		wob := 3 * k.noise.Eval2(float64(i)*0.9, t*0.01)
		prevX, prevY := int(fr.baseX), int(fr.baseY)
		for seg := 1; seg < kelpSegments; seg++ {
			sf := float64(seg) / kelpSegments
			// Sway grows quadratically toward the tip so the anchor stays put.
			sway := (fr.swayAmp*ampF*math.Sin(t*fr.swayFreq+sf*4+float64(i)*0.7) + wob) * sf * sf
			x := int(fr.baseX + sway)
			y := int(fr.baseY - fr.height*sf)
			a := 40 + 25*(1-sf)
			width := int(4 + 3*(1-sf))
			c := color.RGBA{R: uint8(a / 3), G: uint8(a / 1.5), B: uint8(a / 4), A: uint8(a)}
			b.ThickLine(prevX, prevY, x, y, width, c)
			prevX, prevY = x, y
			cs.KelpSegments++
		}
	}
}
