//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/polyuxixi/wave-data/internal/app"
	"github.com/polyuxixi/wave-data/internal/scene"
	"github.com/polyuxixi/wave-data/internal/wavedata"
)

func main() {
	cfg := scene.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	dataPath := flag.String("data", "open-meteo-54.54N10.21E0m.csv", "wave record CSV to animate")
	scale := flag.Int("scale", 1, "pixel scale multiplier")
	shimmer := flag.Bool("shimmer", false, "enable the water shimmer postprocess")
	flag.Parse()

	records, err := wavedata.Load(*dataPath)
	if err != nil {
		log.Fatalf("load wave data: %v", err)
	}
	log.Printf("loaded %d wave records from %s", len(records), *dataPath)

	anim := scene.New(cfg, records)
	cfg = anim.Config()
	game := app.New(anim, *scale, cfg.FPS, cfg.Seed)
	if *shimmer {
		if err := game.EnableShimmer(); err != nil {
			log.Fatalf("compile shimmer shader: %v", err)
		}
	}
	size := anim.Size()

	ebiten.SetWindowTitle("wave-data — " + anim.Name())
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(size.W*(*scale), size.H*(*scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
