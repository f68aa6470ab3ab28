package wavedata

import "github.com/polyuxixi/wave-data/internal/core"

// Record is one parsed row of wave measurements. Numeric fields are always
// finite; the loader rejects anything else before rendering starts.
type Record struct {
	Time      string  // timestamp token, opaque to the renderer
	Height    float64 // wave height, meters
	Direction float64 // wave direction, degrees
	Period    float64 // wave period, seconds
	Current   float64 // ocean current velocity, m/s
}

// Lerp blends two adjacent records at fraction t in [0,1). Every numeric
// field interpolates linearly; at t=0 the result equals prev exactly. The
// timestamp carries prev's token, matching the source data's convention.
func Lerp(prev, next Record, t float64) Record {
	return Record{
		Time:      prev.Time,
		Height:    core.Lerp(prev.Height, next.Height, t),
		Direction: core.Lerp(prev.Direction, next.Direction, t),
		Period:    core.Lerp(prev.Period, next.Period, t),
		Current:   core.Lerp(prev.Current, next.Current, t),
	}
}
