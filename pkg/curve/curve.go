// Package curve provides small sinusoid helpers for procedural motion.
// Animated paths in the renderer are sums of phase-shifted sine terms
// evaluated along a normalized parameter; this package keeps those sums
// declarative instead of spelling out every math.Sin call inline.
package curve

import "math"

// Wave is a single sinusoid amp*sin(freq*x + phase). Phase typically
// carries the animation clock term, so a Wave value describes the shape
// of one frame.
type Wave struct {
	Amp, Freq, Phase float64
}

// At evaluates the wave at x.
func (w Wave) At(x float64) float64 {
	return w.Amp * math.Sin(w.Freq*x+w.Phase)
}

// Sum is a superposition of waves, evaluated by adding each term.
type Sum []Wave

// At evaluates all terms at x.
func (s Sum) At(x float64) float64 {
	var v float64
	for _, w := range s {
		v += w.At(x)
	}
	return v
}

// Osc returns base + amp*sin(rate*t + phase). It covers the common case
// of a scalar drifting around a midpoint on the animation clock.
func Osc(t, base, amp, rate, phase float64) float64 {
	return base + amp*math.Sin(rate*t+phase)
}
