package encode

import (
	"image"
	"strconv"

	"github.com/polyuxixi/wave-data/internal/core"
)

// NullSink counts frames and discards them. Useful for pacing runs and
// exercising the frame loop without touching disk.
type NullSink struct {
	limit  int
	pushed int
}

// Push discards the frame. It reports false once the optional limit is hit.
func (s *NullSink) Push(*image.RGBA) (bool, error) {
	s.pushed++
	if s.limit > 0 && s.pushed >= s.limit {
		return false, nil
	}
	return true, nil
}

// Pushed reports how many frames the sink has swallowed.
func (s *NullSink) Pushed() int { return s.pushed }

// Close is a no-op.
func (s *NullSink) Close() error { return nil }

func init() {
	core.RegisterSink("null", func(cfg map[string]string) (core.FrameSink, error) {
		s := &NullSink{}
		if v, ok := cfg["frames"]; ok {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				s.limit = n
			}
		}
		return s, nil
	})
}
