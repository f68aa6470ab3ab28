package scene

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/polyuxixi/wave-data/internal/core"
	"github.com/polyuxixi/wave-data/internal/render"
)

// planktonCount is the fixed number of distant bioluminescent points.
const planktonCount = 75

// planktonTints are the channel offsets added on top of the pulsing base
// intensity. Index order matters: a point keeps its tint for the whole run.
var planktonTints = [6][3]float64{
	{0, 15, 35},  // blue
	{15, 0, 30},  // purple
	{10, 25, 12}, // green
	{20, 8, 8},   // red, the rare one
	{8, 18, 25},  // cyan
	{15, 12, 0},  // magenta
}

type planktonPoint struct {
	xBase, yBase float64
	base         float64
}

// planktonField scatters faint pulsing glows across the middle and lower
// frame, suggesting far-off creatures. Placement and per-point brightness
// are fixed per run; the field rides the current at a tenth of the snow
// rate, so the distance reads in the motion.
type planktonField struct {
	points []planktonPoint
	fall   float64
	sweep  float64
}

func (f *planktonField) reset(r *rand.Rand, w, h int, density float64) {
	f.points = make([]planktonPoint, scaled(planktonCount, density))
	f.fall = 0
	f.sweep = 0
	for i := range f.points {
		f.points[i] = planktonPoint{
			xBase: float64(w/8 + r.IntN(w*3/4)),
			yBase: float64(h/6 + r.IntN(h-h/6)),
			base:  float64(50 + r.IntN(40)),
		}
	}
}

// advance drifts the field along the wave bearing at a tenth of the snow
// step.
func (f *planktonField) advance(current, direction float64) {
	push := 0.08 * current
	dir := core.Deg2Rad(direction)
	f.sweep += push * math.Sin(dir)
	f.fall += 0.12 + push*math.Cos(dir)
}

func (f *planktonField) draw(b *render.Buffer, clock int, cs *Census) {
	w, h := b.Size()
	t := float64(clock)
	for i := range f.points {
		p := &f.points[i]
		pulse := 0.4 + 0.8*math.Sin(t*0.12+float64(i)*0.8)
		intensity := pulse * p.base
		glow := 6 + int(pulse*5)
		if intensity < 1 || glow < 1 {
			continue
		}
		x := int(core.Wrap(p.xBase+f.sweep, float64(w)))
		y := int(core.Wrap(p.yBase+f.fall, float64(h)))
		tint := planktonTints[i%len(planktonTints)]
		for r := glow; r >= 1; r-- {
			a := intensity * (float64(r) / float64(glow)) * 0.8
			c := color.RGBA{
				R: colorByte(intensity + tint[0]),
				G: colorByte(intensity + tint[1]),
				B: colorByte(intensity + tint[2]),
				A: colorByte(a),
			}
			b.FillCircle(x, y, r, c)
		}
		cs.Plankton++
	}
}
