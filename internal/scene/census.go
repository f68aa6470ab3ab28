package scene

import (
	"github.com/polyuxixi/wave-data/internal/core"
	"github.com/polyuxixi/wave-data/internal/creature"
)

// Census counts the primitives actually blended into one composed frame.
// It is rebuilt on every composition pass and feeds the stats snapshot and
// the density tooling.
type Census struct {
	Snow          int
	Plankton      int
	RayColumns    int
	KelpSegments  int
	VentParticles int
	FloorDots     int
	Debris        int
	Creature      creature.Counts
}

// Budget reports the particle counts a wave height buys before any
// per-frame visibility culling. Every field is nondecreasing in waveHeight,
// so rougher seas always render at least as busy a scene.
type Budget struct {
	Snow          int
	Plankton      int
	Rays          int
	KelpFronds    int
	VentParticles int
	Debris        int
	BellRings     int
	BellEdgeDots  int
	Tentacles     int
}

// scaled applies a density multiplier to a base count, never below zero.
func scaled(n int, mult float64) int {
	if v := int(float64(n) * mult); v > 0 {
		return v
	}
	return 0
}

// BudgetFor computes the layer budgets for a frame of the given size and
// wave height at the given densities. Height is clamped to the supported
// range and the densities are normalized first.
func BudgetFor(width int, waveHeight float64, d Density) Budget {
	h := core.Clamp(waveHeight, 0, MaxWaveHeight)
	d = d.normalized()
	return Budget{
		Snow:          scaled(snowCount(h), d.Snow),
		Plankton:      scaled(planktonCount, d.Plankton),
		Rays:          rayCount,
		KelpFronds:    kelpCount,
		VentParticles: ventCount * scaled(ventParticleBudget(ventNominalActivity), d.Vents),
		Debris:        debrisCount(width),
		BellRings:     creature.RingCount(h),
		BellEdgeDots:  creature.EdgeDotBase(h),
		Tentacles:     scaled(creature.TentacleCount(h), d.Tentacles),
	}
}
