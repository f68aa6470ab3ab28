package core

import (
	"fmt"
	"image"
)

// Size describes the dimensions of a frame in pixels.
type Size struct {
	W int
	H int
}

// Animation defines the minimal contract the frame loop drives.
type Animation interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Frame() *image.RGBA
	Done() bool
}

// FrameSink consumes composed frames. Push reports whether the run should
// continue; Close releases any held resources and must be safe to call
// exactly once on every exit path.
type FrameSink interface {
	Push(frame *image.RGBA) (bool, error)
	Close() error
}

// SinkFactory constructs a FrameSink from an optional configuration map.
type SinkFactory func(cfg map[string]string) (FrameSink, error)

var sinks = map[string]SinkFactory{}

// RegisterSink adds a sink factory under the provided name.
func RegisterSink(name string, f SinkFactory) {
	if name == "" || f == nil {
		return
	}
	sinks[name] = f
}

// NewSink instantiates a registered sink by name.
func NewSink(name string, cfg map[string]string) (FrameSink, error) {
	f, ok := sinks[name]
	if !ok {
		return nil, fmt.Errorf("unknown sink %q", name)
	}
	return f(cfg)
}

// Sinks lists the registered sink names.
func Sinks() []string {
	names := make([]string, 0, len(sinks))
	for name := range sinks {
		names = append(names, name)
	}
	return names
}
