// Command abyssgif renders the abyss animation headless and encodes it
// through a registered frame sink, an animated GIF by default.
package main

import (
	"flag"
	"log"
	"strconv"

	"github.com/polyuxixi/wave-data/internal/app"
	"github.com/polyuxixi/wave-data/internal/core"
	_ "github.com/polyuxixi/wave-data/internal/encode"
	"github.com/polyuxixi/wave-data/internal/scene"
	"github.com/polyuxixi/wave-data/internal/wavedata"
)

func main() {
	cfg := scene.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	dataPath := flag.String("data", "open-meteo-54.54N10.21E0m.csv", "wave record CSV to animate")
	out := flag.String("o", "abyss.gif", "output path")
	frames := flag.Int("frames", 300, "frames to render (0 renders one full non-looping pass)")
	sinkName := flag.String("sink", "gif", "output sink")
	flag.Parse()

	records, err := wavedata.Load(*dataPath)
	if err != nil {
		log.Fatalf("load wave data: %v", err)
	}

	if *frames == 0 {
		cfg.Loop = false
	}
	anim := scene.New(cfg, records)
	cfg = anim.Config()

	sink, err := core.NewSink(*sinkName, map[string]string{
		"path":   *out,
		"fps":    strconv.Itoa(cfg.FPS),
		"frames": strconv.Itoa(*frames),
	})
	if err != nil {
		log.Fatalf("open sink: %v", err)
	}

	log.Printf("rendering %dx%d abyss from %d records", cfg.Width, cfg.Height, len(records))
	n, err := app.Run(anim, sink, *frames)
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	if *sinkName == "gif" {
		log.Printf("wrote %d frames to %s", n, *out)
	} else {
		log.Printf("rendered %d frames", n)
	}
}
