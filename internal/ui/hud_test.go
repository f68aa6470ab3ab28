package ui

import (
	"image"
	"testing"
)

func TestDrawLinesPaintsText(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 60))
	DrawLines(img, []string{"Wave Height: 1.25 m", "Wave Period: 6.00 s"}, 4, 4)
	painted := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			painted++
		}
	}
	if painted == 0 {
		t.Fatalf("no pixels painted")
	}

	// The second line starts one LineHeight below the first.
	rowHasInk := func(y int) bool {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y).A != 0 {
				return true
			}
		}
		return false
	}
	firstInk, secondInk := false, false
	for y := 4; y < 4+LineHeight && y < 60; y++ {
		if rowHasInk(y) {
			firstInk = true
		}
	}
	for y := 4 + LineHeight; y < 4+2*LineHeight && y < 60; y++ {
		if rowHasInk(y) {
			secondInk = true
		}
	}
	if !firstInk || !secondInk {
		t.Fatalf("expected ink in both line bands, got first=%v second=%v", firstInk, secondInk)
	}
}

func TestDrawLinesEmpty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawLines(img, nil, 0, 0)
	for i, p := range img.Pix {
		if p != 0 {
			t.Fatalf("pixel %d painted with no lines", i)
		}
	}
}

func TestWidthGrowsWithText(t *testing.T) {
	if Width("") != 0 {
		t.Fatalf("empty line should have zero width")
	}
	if Width("Wave Dir: 210 deg") <= Width("Dir") {
		t.Fatalf("longer line should measure wider")
	}
}
