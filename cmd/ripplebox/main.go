//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"ripplebox/internal/app"
	"ripplebox/internal/config"
	"ripplebox/internal/preset"
	"ripplebox/internal/sim"
	"ripplebox/internal/telemetry"
)

func main() {
	presetName := flag.String("preset", "water", "variant to run ("+strings.Join(preset.Names(), ", ")+")")
	configPath := flag.String("config", "", "yaml file overriding the embedded defaults")
	scale := flag.Int("scale", 0, "display pixels per cell (0 = use config)")
	tps := flag.Int("tps", 60, "simulation ticks per second")
	seed := flag.Int64("seed", 0, "seed for random splashes (0 = time-based)")
	steps := flag.Int("steps-per-update", 1, "simulation ticks per frame")
	outputDir := flag.String("output-dir", "", "directory for frame stats CSV and config snapshot")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	factory, ok := preset.Lookup(*presetName)
	if !ok {
		log.Fatalf("unknown preset %q (have %v)", *presetName, preset.Names())
	}
	p := factory(cfg)

	r := sim.New(cfg.Grid.Width, cfg.Grid.Height, cfg.Physics.Damping, p.Params)

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		log.Fatalf("telemetry: %v", err)
	}

	displayScale := cfg.Grid.Scale
	if *scale > 0 {
		displayScale = *scale
	}

	size := r.Size()
	game := app.New(r, p, app.Options{
		Scale:          displayScale,
		StepsPerUpdate: *steps,
		Seed:           rngSeed,
		Collector:      telemetry.NewCollector(cfg.Telemetry.Window, size.W*size.H),
		Output:         output,
	})

	ebiten.SetWindowTitle("ripplebox: " + p.Name)
	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(size.W*displayScale, size.H*displayScale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
