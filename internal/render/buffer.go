package render

import (
	"image"
	"image/color"
)

// Buffer is the CPU-side frame the scene composes into. All drawing is
// plain straight-alpha blending over an opaque base, so the finished frame
// can go to the display painter and the encoders without conversion.
type Buffer struct {
	w, h int
	img  *image.RGBA
}

// NewBuffer allocates an opaque black frame of the given size.
func NewBuffer(w, h int) *Buffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	b := &Buffer{w: w, h: h, img: image.NewRGBA(image.Rect(0, 0, w, h))}
	b.Clear(color.RGBA{A: 255})
	return b
}

// Size returns the frame dimensions.
func (b *Buffer) Size() (int, int) { return b.w, b.h }

// Image exposes the backing image for sinks and painters.
func (b *Buffer) Image() *image.RGBA { return b.img }

// Clear fills the whole frame with an opaque color.
func (b *Buffer) Clear(c color.RGBA) {
	p := b.img.Pix
	for i := 0; i < len(p); i += 4 {
		p[i] = c.R
		p[i+1] = c.G
		p[i+2] = c.B
		p[i+3] = 255
	}
}

// FillRow overwrites one scanline with an opaque color. Fast path for the
// background gradient.
func (b *Buffer) FillRow(y int, r, g, bl uint8) {
	if y < 0 || y >= b.h {
		return
	}
	p := b.img.Pix
	i := y * b.img.Stride
	end := i + b.w*4
	for ; i < end; i += 4 {
		p[i] = r
		p[i+1] = g
		p[i+2] = bl
		p[i+3] = 255
	}
}

// Blend draws one pixel with straight-alpha source-over blending. Pixels
// outside the frame are dropped.
func (b *Buffer) Blend(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h || c.A == 0 {
		return
	}
	i := y*b.img.Stride + x*4
	p := b.img.Pix
	a := uint32(c.A)
	ia := 255 - a
	p[i] = uint8((uint32(c.R)*a + uint32(p[i])*ia + 127) / 255)
	p[i+1] = uint8((uint32(c.G)*a + uint32(p[i+1])*ia + 127) / 255)
	p[i+2] = uint8((uint32(c.B)*a + uint32(p[i+2])*ia + 127) / 255)
	p[i+3] = 255
}

// Set overwrites one pixel, ignoring alpha. Out-of-frame pixels are dropped.
func (b *Buffer) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	i := y*b.img.Stride + x*4
	p := b.img.Pix
	p[i] = c.R
	p[i+1] = c.G
	p[i+2] = c.B
	p[i+3] = 255
}

// At reads back one pixel. Out-of-frame reads return zero.
func (b *Buffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return color.RGBA{}
	}
	i := y*b.img.Stride + x*4
	p := b.img.Pix
	return color.RGBA{R: p[i], G: p[i+1], B: p[i+2], A: p[i+3]}
}
