// Package ui draws the in-frame wave readout and the optional debug
// overlay. The readout renders straight into the CPU frame so it survives
// every output path, including headless GIF encoding.
package ui

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextColor is the pale blue of the wave readout.
var TextColor = color.RGBA{R: 120, G: 180, B: 255, A: 255}

// LineHeight is the vertical advance between readout lines, a little
// looser than the face's natural height.
const LineHeight = 15

// DrawLines paints the lines top-down with their top-left corner at (x, y).
// Face7x13 carries glyphs for ASCII only, so callers keep readout text
// within that range.
func DrawLines(dst *image.RGBA, lines []string, x, y int) {
	face := basicfont.Face7x13
	ascent := face.Metrics().Ascent.Ceil()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(TextColor),
		Face: face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(x, y+i*LineHeight+ascent)
		d.DrawString(line)
	}
}

// Width reports the pixel width of a line in the readout face.
func Width(line string) int {
	return font.MeasureString(basicfont.Face7x13, line).Ceil()
}
