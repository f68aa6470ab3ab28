package core

import "time"

// maxCatchUp bounds how many animation steps a single tick may run after a
// stall, so a dragged window does not fast-forward the scene.
const maxCatchUp = 4

// StepClock converts wall time into a steady number of animation steps per
// second, independent of the caller's own tick rate.
type StepClock struct {
	step time.Duration
	acc  time.Duration
	last time.Time
}

// NewStepClock constructs a clock targeting the given steps per second.
func NewStepClock(rate int) *StepClock {
	c := &StepClock{}
	c.SetRate(rate)
	// Seed the accumulator so the first Advance yields a step immediately.
	c.acc = c.step
	return c
}

// SetRate changes the step rate. Safe to call between frames.
func (c *StepClock) SetRate(rate int) {
	if rate <= 0 {
		rate = 30
	}
	c.step = time.Second / time.Duration(rate)
}

// Advance accounts the elapsed wall time up to now and returns how many
// steps are due, capped to avoid runaway catch-up.
func (c *StepClock) Advance(now time.Time) int {
	if c.last.IsZero() {
		c.last = now
	}
	c.acc += now.Sub(c.last)
	c.last = now
	steps := 0
	for c.acc >= c.step && steps < maxCatchUp {
		c.acc -= c.step
		steps++
	}
	if steps == maxCatchUp {
		// Drop the backlog instead of replaying it.
		c.acc = 0
	}
	return steps
}
