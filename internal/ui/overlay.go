//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/polyuxixi/wave-data/internal/core"
)

type statsProvider interface {
	Stats() core.StatsSnapshot
}

// Overlay draws a toggleable stats panel on top of the animation view.
type Overlay struct {
	anim  core.Animation
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for the provided animation.
func NewOverlay(anim core.Animation) *Overlay {
	o := &Overlay{anim: anim}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the Tab toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.show = !o.show
	}
}

// Draw renders the stats panel when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.anim.(statsProvider)
	if !ok {
		return
	}
	snap := provider.Stats()

	const (
		padding  = 12
		lineStep = 16
	)
	rows := 0
	width := 0
	for _, g := range snap.Groups {
		rows++
		for _, st := range g.Stats {
			rows++
			if w := Width("  " + st.Label + ": " + st.Value); w > width {
				width = w
			}
		}
	}
	if rows == 0 {
		return
	}
	o.drawRect(screen, 0, 0, width+2*padding, rows*lineStep+2*padding, color.RGBA{R: 8, G: 12, B: 24, A: 210})

	face := basicfont.Face7x13
	y := padding + 12
	for _, g := range snap.Groups {
		text.Draw(screen, g.Name, face, padding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += lineStep
		for _, st := range g.Stats {
			text.Draw(screen, "  "+st.Label+": "+st.Value, face, padding, y, color.RGBA{R: 160, G: 200, B: 255, A: 255})
			y += lineStep
		}
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h int, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
