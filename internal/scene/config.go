package scene

import (
	"flag"
	"strconv"

	"github.com/polyuxixi/wave-data/internal/wavedata"
)

// maxDensityScale caps the density multipliers so extreme overrides keep
// the per-frame particle counts bounded.
const maxDensityScale = 10

// Density scales the populated layer counts away from their baselines.
// Fields are multipliers; 1 reproduces the documented default counts.
type Density struct {
	Snow      float64
	Plankton  float64
	Vents     float64
	Tentacles float64
}

// DefaultDensity returns the baseline multipliers.
func DefaultDensity() Density {
	return Density{Snow: 1, Plankton: 1, Vents: 1, Tentacles: 1}
}

// normalized resets non-positive or NaN multipliers to the baseline and
// caps the rest at maxDensityScale.
func (d Density) normalized() Density {
	for _, f := range []*float64{&d.Snow, &d.Plankton, &d.Vents, &d.Tentacles} {
		if !(*f > 0) {
			*f = 1
		} else if *f > maxDensityScale {
			*f = maxDensityScale
		}
	}
	return d
}

// Config controls the canvas, playback, and layer densities of the abyss
// animation.
type Config struct {
	Width  int
	Height int

	// FPS is the nominal playback rate. The compositor itself is
	// rate-agnostic; the display pacer and the GIF encoder read this.
	FPS int

	// InterpSteps is the number of frames rendered between two adjacent
	// wave records.
	InterpSteps int

	Seed int64

	// Loop wraps from the last record back to the first instead of
	// finishing the run.
	Loop bool

	// Density scales the particle, vent plume, and tentacle populations.
	Density Density
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       960,
		Height:      960,
		FPS:         30,
		InterpSteps: wavedata.DefaultInterpSteps,
		Seed:        1337,
		Loop:        true,
		Density:     DefaultDensity(),
	}
}

// Bind registers the config fields on the provided flag set.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "frame width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "frame height in pixels")
	fs.IntVar(&c.FPS, "fps", c.FPS, "playback frames per second")
	fs.IntVar(&c.InterpSteps, "steps", c.InterpSteps, "frames rendered between two wave records")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for deterministic layer placement")
	fs.BoolVar(&c.Loop, "loop", c.Loop, "wrap back to the first record at the end of the data")
	fs.Float64Var(&c.Density.Snow, "snow", c.Density.Snow, "marine snow density multiplier")
	fs.Float64Var(&c.Density.Plankton, "plankton", c.Density.Plankton, "plankton density multiplier")
	fs.Float64Var(&c.Density.Vents, "vents", c.Density.Vents, "vent plume density multiplier")
	fs.Float64Var(&c.Density.Tentacles, "tentacles", c.Density.Tentacles, "tentacle count multiplier")
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["fps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.FPS = parsed
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.InterpSteps = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["loop"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Loop = parsed
		}
	}
	for key, dst := range map[string]*float64{
		"snow":      &c.Density.Snow,
		"plankton":  &c.Density.Plankton,
		"vents":     &c.Density.Vents,
		"tentacles": &c.Density.Tentacles,
	} {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	return c.normalized()
}

// normalized bounds the config to values the compositor can work with.
func (c Config) normalized() Config {
	if c.Width < 64 {
		c.Width = 64
	}
	if c.Height < 64 {
		c.Height = 64
	}
	if c.FPS <= 0 {
		c.FPS = 30
	}
	if c.InterpSteps <= 0 {
		c.InterpSteps = wavedata.DefaultInterpSteps
	}
	c.Density = c.Density.normalized()
	return c
}
