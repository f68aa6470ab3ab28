package main

import (
	"fmt"
	"strconv"

	"github.com/polyuxixi/wave-data/internal/scene"
	"github.com/polyuxixi/wave-data/internal/wavedata"
)

// sweepRecord is the moderate sea state every density candidate renders.
var sweepRecord = wavedata.Record{Time: "sweep", Height: 1.6, Direction: 210, Period: 6.0, Current: 0.3}

func main() {
	candidates := []float64{0.25, 0.5, 1, 2, 4}

	fmt.Printf("sweeping %d density multipliers at 960x960, %.1fm / %.1fs / %.1fm/s\n",
		len(candidates), sweepRecord.Height, sweepRecord.Period, sweepRecord.Current)
	fmt.Printf("%8s | %6s %8s %6s %6s %6s\n",
		"density", "snow", "plankton", "vent", "tent", "spark")
	for _, mult := range candidates {
		cfg, cs := simulate(mult)
		fmt.Printf("%7.2fx | %6d %8d %6d %6d %6d\n",
			mult, cs.Snow, cs.Plankton, cs.VentParticles, cs.Creature.TentacleDots, cs.Creature.Sparkles)
		bud := scene.BudgetFor(cfg.Width, sweepRecord.Height, cfg.Density)
		fmt.Printf("%8s | budget: snow=%d plankton=%d vents=%d tentacles=%d\n",
			"", bud.Snow, bud.Plankton, bud.VentParticles, bud.Tentacles)
	}
}

// simulate composes a short run with every density override set to mult and
// returns the config it resolved to plus the census of the last frame.
func simulate(mult float64) (scene.Config, scene.Census) {
	f := strconv.FormatFloat(mult, 'f', -1, 64)
	cfg := scene.FromMap(map[string]string{
		"steps":     "8",
		"snow":      f,
		"plankton":  f,
		"vents":     f,
		"tentacles": f,
	})
	anim := scene.New(cfg, []wavedata.Record{sweepRecord, sweepRecord})
	for i := 0; i < 24; i++ {
		anim.Step()
	}
	return cfg, anim.Census()
}
