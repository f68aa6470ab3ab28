package scene

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/polyuxixi/wave-data/internal/render"
)

const (
	floorRaise    = 30
	floorStep     = 4
	debrisSpacing = 40
)

// debrisCount is the number of debris sites for a frame width, one per
// debrisSpacing column starting at x=0.
func debrisCount(width int) int {
	if width <= 0 {
		return 0
	}
	return (width-1)/debrisSpacing + 1
}

// debrisSpot is one larger piece of sediment. Size and opacity are fixed at
// reset so debris reads as objects resting on the floor, not as noise.
type debrisSpot struct {
	size  int
	alpha float64
}

// seafloor draws the sediment line across the bottom of the frame and the
// occasional debris lump along it.
type seafloor struct {
	debris []debrisSpot
}

func (f *seafloor) reset(r *rand.Rand, w int) {
	f.debris = make([]debrisSpot, debrisCount(w))
	for i := range f.debris {
		f.debris[i] = debrisSpot{
			size:  3 + r.IntN(5),
			alpha: float64(20 + r.IntN(20)),
		}
	}
}

func (f *seafloor) draw(b *render.Buffer, clock int, cs *Census) {
	w, h := b.Size()
	if h <= 100 {
		return
	}
	floorY := float64(h - floorRaise)
	t := float64(clock)
	for x := 0; x < w; x += floorStep {
		fx := float64(x)
		y := int(floorY + 8*math.Sin(fx*0.02+t*0.01))
		a := 25 + 15*math.Sin(fx*0.05+t*0.02)
		c := color.RGBA{R: uint8(a / 2), G: uint8(a / 1.5), B: colorByte(a + 5), A: colorByte(a)}
		b.FillRect(x, y, 6, 3, c)
		cs.FloorDots++

		if x%debrisSpacing == 0 {
			d := &f.debris[x/debrisSpacing]
			dc := color.RGBA{
				R: uint8(d.alpha / 3),
				G: uint8(d.alpha / 2),
				B: uint8(d.alpha / 1.5),
				A: uint8(d.alpha),
			}
			b.FillEllipse(x+d.size, y, d.size, d.size/2, dc)
			cs.Debris++
		}
	}
}
