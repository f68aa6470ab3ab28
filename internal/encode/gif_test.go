package encode

import (
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/polyuxixi/wave-data/internal/core"
)

func solidFrame(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestGIFRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	g, err := NewGIF(map[string]string{"path": path, "fps": "25"})
	if err != nil {
		t.Fatalf("NewGIF: %v", err)
	}
	colors := []color.RGBA{
		{R: 10, G: 20, B: 60, A: 255},
		{R: 200, G: 40, B: 40, A: 255},
		{R: 40, G: 200, B: 90, A: 255},
	}
	for _, c := range colors {
		ok, err := g.Push(solidFrame(32, 24, c))
		if err != nil || !ok {
			t.Fatalf("Push = %v, %v", ok, err)
		}
	}
	if err := g.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open encoded file: %v", err)
	}
	defer f.Close()
	decoded, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(decoded.Image) != len(colors) {
		t.Fatalf("decoded %d frames, want %d", len(decoded.Image), len(colors))
	}
	if decoded.LoopCount != 0 {
		t.Fatalf("loop count = %d, want 0 (loop forever)", decoded.LoopCount)
	}
	if decoded.Delay[0] != 4 {
		t.Fatalf("delay = %d, want 4 for 25 fps", decoded.Delay[0])
	}
	if got := decoded.Image[0].Bounds(); got.Dx() != 32 || got.Dy() != 24 {
		t.Fatalf("frame bounds = %v", got)
	}
}

func TestGIFFrameLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	g, err := NewGIF(map[string]string{"path": path, "frames": "2"})
	if err != nil {
		t.Fatalf("NewGIF: %v", err)
	}
	frame := solidFrame(8, 8, color.RGBA{R: 5, G: 5, B: 30, A: 255})
	if ok, _ := g.Push(frame); !ok {
		t.Fatalf("first push should continue")
	}
	if ok, _ := g.Push(frame); ok {
		t.Fatalf("push reaching the limit should stop the run")
	}
	if ok, _ := g.Push(frame); ok {
		t.Fatalf("push beyond the limit should stop the run")
	}
	if g.Frames() != 2 {
		t.Fatalf("buffered %d frames, want 2", g.Frames())
	}
	if err := g.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestGIFCloseWithoutFrames(t *testing.T) {
	g, err := NewGIF(map[string]string{"path": filepath.Join(t.TempDir(), "x.gif")})
	if err != nil {
		t.Fatalf("NewGIF: %v", err)
	}
	if err := g.Close(); err == nil {
		t.Fatalf("closing with no frames should fail")
	}
}

func TestGIFPushAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.gif")
	g, _ := NewGIF(map[string]string{"path": path})
	g.Push(solidFrame(4, 4, color.RGBA{A: 255}))
	if err := g.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := g.Push(solidFrame(4, 4, color.RGBA{A: 255})); err == nil {
		t.Fatalf("push after close should fail")
	}
	if err := g.Close(); err != nil {
		t.Fatalf("second close should be a no-op, got %v", err)
	}
}

func TestGIFRejectsBadConfig(t *testing.T) {
	if _, err := NewGIF(map[string]string{"fps": "zero"}); err == nil {
		t.Fatalf("bad fps should fail")
	}
	if _, err := NewGIF(map[string]string{"frames": "-1"}); err == nil {
		t.Fatalf("negative frame limit should fail")
	}
}

func TestSinkRegistry(t *testing.T) {
	s, err := core.NewSink("null", map[string]string{"frames": "2"})
	if err != nil {
		t.Fatalf("NewSink(null): %v", err)
	}
	frame := solidFrame(4, 4, color.RGBA{A: 255})
	if ok, _ := s.Push(frame); !ok {
		t.Fatalf("first null push should continue")
	}
	if ok, _ := s.Push(frame); ok {
		t.Fatalf("null sink should honor its frame limit")
	}
	if got := s.(*NullSink).Pushed(); got != 2 {
		t.Fatalf("null sink swallowed %d frames, want 2", got)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("null close: %v", err)
	}
	if _, err := core.NewSink("mp4", nil); err == nil {
		t.Fatalf("unknown sink should fail")
	}
}
