// Package app hosts the frame loops: a headless Run that pumps composed
// frames into a sink, and, under the ebiten build tag, the windowed viewer.
package app

import (
	"github.com/polyuxixi/wave-data/internal/core"
)

// Run pushes the animation's frames into the sink until the animation
// finishes, the sink declines, or maxFrames frames have been pushed (zero
// means unbounded). The current frame goes out before each step, so a
// non-looping run delivers both endpoint frames. The sink is closed on
// every return path; a close failure surfaces only when nothing else
// already failed.
func Run(anim core.Animation, sink core.FrameSink, maxFrames int) (n int, err error) {
	defer func() {
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	for {
		ok, perr := sink.Push(anim.Frame())
		if perr != nil {
			return n, perr
		}
		n++
		if !ok {
			return n, nil
		}
		if maxFrames > 0 && n >= maxFrames {
			return n, nil
		}
		if anim.Done() {
			return n, nil
		}
		anim.Step()
	}
}
