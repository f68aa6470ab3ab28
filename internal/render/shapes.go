package render

import (
	"image/color"
	"math"
)

// FillRect blends an axis-aligned rectangle.
func (b *Buffer) FillRect(x, y, w, h int, c color.RGBA) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			b.Blend(xx, yy, c)
		}
	}
}

// VSpan blends a vertical run of pixels from y0 to y1 inclusive.
func (b *Buffer) VSpan(x, y0, y1 int, c color.RGBA) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		b.Blend(x, y, c)
	}
}

// HSpan blends a horizontal run of pixels from x0 to x1 inclusive.
func (b *Buffer) HSpan(x0, x1, y int, c color.RGBA) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		b.Blend(x, y, c)
	}
}

// FillCircle blends a filled disc. Radius zero degenerates to one pixel.
func (b *Buffer) FillCircle(cx, cy, r int, c color.RGBA) {
	if r <= 0 {
		b.Blend(cx, cy, c)
		return
	}
	for dy := -r; dy <= r; dy++ {
		span := int(math.Sqrt(float64(r*r - dy*dy)))
		b.HSpan(cx-span, cx+span, cy+dy, c)
	}
}

// FillEllipse blends a filled axis-aligned ellipse.
func (b *Buffer) FillEllipse(cx, cy, rx, ry int, c color.RGBA) {
	if rx <= 0 || ry <= 0 {
		b.Blend(cx, cy, c)
		return
	}
	for dy := -ry; dy <= ry; dy++ {
		f := 1 - float64(dy*dy)/float64(ry*ry)
		if f < 0 {
			continue
		}
		span := int(float64(rx) * math.Sqrt(f))
		b.HSpan(cx-span, cx+span, cy+dy, c)
	}
}

// Line blends a one-pixel Bresenham line from (x0,y0) to (x1,y1).
func (b *Buffer) Line(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		b.Blend(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// ThickLine blends a line of the given width by stamping discs along the
// segment. Stamps are spaced by the disc radius; tighter spacing would
// re-blend overlap pixels and darken translucent strokes.
func (b *Buffer) ThickLine(x0, y0, x1, y1, width int, c color.RGBA) {
	if width <= 1 {
		b.Line(x0, y0, x1, y1, c)
		return
	}
	r := width / 2
	length := math.Hypot(float64(x1-x0), float64(y1-y0))
	spacing := float64(r)
	if spacing < 1 {
		spacing = 1
	}
	steps := int(length/spacing) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(float64(x0) + t*float64(x1-x0)))
		y := int(math.Round(float64(y0) + t*float64(y1-y0)))
		b.FillCircle(x, y, r, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
