package core

import "math"

// Wrap maps v into [0, span) toroidally. Negative inputs wrap to the far edge.
func Wrap(v, span float64) float64 {
	if span <= 0 {
		return 0
	}
	m := math.Mod(v, span)
	if m < 0 {
		m += span
	}
	return m
}

// Clamp bounds v to [lo, hi]. NaN collapses to lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		return hi
	}
	if v >= lo {
		return v
	}
	return lo
}

// ClampInt bounds v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp blends linearly from a to b by t. The two-product form stays exact
// at t = 0 and finite for any finite operands, where a+(b-a)*t can
// overflow to NaN.
func Lerp(a, b, t float64) float64 { return a*(1-t) + b*t }

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 { return deg * math.Pi / 180 }
