//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads composed CPU frames to the screen.
type Painter struct {
	w, h int
	img  *ebiten.Image
}

// NewPainter allocates a painter for frames of size w*h.
func NewPainter(w, h int) *Painter {
	return &Painter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Upload copies the frame into the painter's texture without drawing it.
// Reports whether the frame matched the painter's size.
func (p *Painter) Upload(frame *image.RGBA) bool {
	if frame == nil || frame.Bounds().Dx() != p.w || frame.Bounds().Dy() != p.h {
		return false
	}
	p.img.WritePixels(frame.Pix)
	return true
}

// Blit uploads the frame and draws it scaled onto dst.
func (p *Painter) Blit(dst *ebiten.Image, frame *image.RGBA, scale int) {
	if !p.Upload(frame) {
		return
	}
	if scale <= 0 {
		scale = 1
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(p.img, op)
}

// Source exposes the uploaded texture, so postprocess shaders can resample it.
func (p *Painter) Source() *ebiten.Image { return p.img }
