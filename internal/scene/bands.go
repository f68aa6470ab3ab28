package scene

import (
	"image/color"
	"math"

	"github.com/polyuxixi/wave-data/internal/core"
	"github.com/polyuxixi/wave-data/internal/render"
)

// bandPhaseScale ties the shimmer band drift to the wave period the same
// way gradientPhaseScale does for the background rows.
const bandPhaseScale = 1.2

// bandLayers describes the three translucent swell silhouettes stacked in
// the lower third of the frame. Amplitude grows with wave height; the
// deeper a band sits, the tighter and dimmer it gets.
var bandLayers = [3]struct {
	ampBase float64
	ampPerH float64
	freq    float64
	speed   float64
	yFrac   float64
	alpha   uint8
}{
	{ampBase: 15, ampPerH: 8, freq: 0.003, speed: 0.8, yFrac: 0.7, alpha: 15},
	{ampBase: 12, ampPerH: 6, freq: 0.005, speed: 1.2, yFrac: 0.8, alpha: 10},
	{ampBase: 8, ampPerH: 4, freq: 0.008, speed: 1.6, yFrac: 0.9, alpha: 8},
}

// bandSet animates the swell silhouettes. Each band carries one phase
// accumulator; its secondary harmonic rides at 0.7x the same phase.
type bandSet struct {
	phases [len(bandLayers)]float64
}

func (s *bandSet) reset() {
	s.phases = [len(bandLayers)]float64{}
}

func (s *bandSet) advance(period float64) {
	for i, layer := range bandLayers {
		s.phases[i] += phaseRate(layer.speed*bandPhaseScale, period)
	}
}

// draw fills each band from its undulating top edge down to the seafloor.
// The fill color is a slightly lifted copy of the gradient's bottom row, so
// the bands read as water against water. The wave direction shifts the
// crest pattern horizontally.
func (s *bandSet) draw(b *render.Buffer, g *gradient, waveHeight, direction float64) {
	w, h := b.Size()
	dir := core.Deg2Rad(direction)
	for i, layer := range bandLayers {
		amp := layer.ampBase + layer.ampPerH*waveHeight
		y0 := layer.yFrac * float64(h)
		c := color.RGBA{
			R: colorByte(g.bottomR + 3),
			G: colorByte(g.bottomG + 5),
			B: colorByte(g.bottomB + 8),
			A: layer.alpha,
		}
		for x := 0; x < w; x++ {
			fx := float64(x)
			top := y0 + amp*math.Sin(fx*layer.freq+s.phases[i]+dir)
			top += amp * 0.3 * math.Sin(fx*layer.freq*2.3+s.phases[i]*0.7+dir)
			b.VSpan(x, int(top), h-1, c)
		}
	}
}
