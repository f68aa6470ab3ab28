package scene

import (
	"image/color"
	"math"

	"github.com/polyuxixi/wave-data/internal/render"
)

const (
	rayCount     = 15
	rayHalfWidth = 10
)

// rayField draws the columns of filtered sunlight that survive to this
// depth. The geometry deliberately ignores the wave measurements: the
// light field is set by the surface far above, not by the local swell, so
// the rays only sway and breathe on the animation clock.
type rayField struct{}

func (rayField) draw(b *render.Buffer, clock int, cs *Census) {
	w, h := b.Size()
	depth := 2 * h / 3
	t := float64(clock)
	for i := 0; i < rayCount; i++ {
		fi := float64(i)
		cx := int(float64(w)*(0.05+0.07*fi) + 80*math.Sin(t*0.02+fi))
		base := 25 + 15*math.Sin(t*0.06+0.5*fi)
		for y := 0; y < depth; y++ {
			fade := 1 - float64(y)/float64(depth)
			a := int(base * fade * fade)
			if a <= 0 {
				break
			}
			c := color.RGBA{
				R: uint8(a/2 + 5),
				G: uint8(a/2 + 8),
				B: uint8(a + 15),
				A: uint8(a),
			}
			b.HSpan(cx-rayHalfWidth, cx+rayHalfWidth-1, y, c)
		}
		cs.RayColumns++
	}
}
