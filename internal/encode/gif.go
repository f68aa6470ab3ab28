// Package encode persists composed frames. Each sink registers itself with
// the core registry, so commands select an output by name.
package encode

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"strconv"

	"github.com/polyuxixi/wave-data/internal/core"
)

// GIF quantizes frames as they arrive and writes one looping animated GIF
// on Close. Error-diffusion dithering keeps the deep-water gradients from
// banding too hard on the shared palette.
type GIF struct {
	path   string
	delay  int // per frame, hundredths of a second
	limit  int // max frames, 0 means unbounded
	frames []*image.Paletted
	closed bool
}

// NewGIF builds a sink from the cfg keys "path", "fps", and "frames".
func NewGIF(cfg map[string]string) (*GIF, error) {
	g := &GIF{path: "abyss.gif", delay: 100 / 30}
	if v, ok := cfg["path"]; ok && v != "" {
		g.path = v
	}
	if v, ok := cfg["fps"]; ok {
		fps, err := strconv.Atoi(v)
		if err != nil || fps <= 0 {
			return nil, fmt.Errorf("gif sink: bad fps %q", v)
		}
		g.delay = core.ClampInt(100/fps, 1, 100)
	}
	if v, ok := cfg["frames"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("gif sink: bad frame limit %q", v)
		}
		g.limit = n
	}
	return g, nil
}

// Push quantizes and buffers one frame. It reports false once the frame
// limit is reached.
func (g *GIF) Push(frame *image.RGBA) (bool, error) {
	if g.closed {
		return false, fmt.Errorf("gif sink: push after close")
	}
	if g.limit > 0 && len(g.frames) >= g.limit {
		return false, nil
	}
	pal := image.NewPaletted(frame.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(pal, frame.Bounds(), frame, image.Point{})
	g.frames = append(g.frames, pal)
	if g.limit > 0 && len(g.frames) >= g.limit {
		return false, nil
	}
	return true, nil
}

// Frames reports how many frames have been buffered so far.
func (g *GIF) Frames() int { return len(g.frames) }

// Close encodes the buffered frames to the configured path. The file is
// only created here, so an aborted run leaves nothing behind.
func (g *GIF) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	if len(g.frames) == 0 {
		return fmt.Errorf("gif sink: no frames to encode")
	}
	out := &gif.GIF{LoopCount: 0}
	for _, f := range g.frames {
		out.Image = append(out.Image, f)
		out.Delay = append(out.Delay, g.delay)
	}
	f, err := os.Create(g.path)
	if err != nil {
		return fmt.Errorf("gif sink: %w", err)
	}
	if err := gif.EncodeAll(f, out); err != nil {
		f.Close()
		return fmt.Errorf("gif sink: encode: %w", err)
	}
	return f.Close()
}

func init() {
	core.RegisterSink("gif", func(cfg map[string]string) (core.FrameSink, error) {
		return NewGIF(cfg)
	})
}
