// ripple-sweep runs the wave solver headless across a grid of damping
// values and reports how quickly a single drop decays under each. Results
// go to structured logs and optionally to CSV.
package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/gocarina/gocsv"

	"ripplebox/internal/config"
	"ripplebox/internal/preset"
	"ripplebox/internal/sim"
	"ripplebox/internal/telemetry"
)

// result captures how a single centered drop decays under one damping
// value.
type result struct {
	Damping   float64 `csv:"damping"`
	Steps     int     `csv:"steps"`
	PeakStart float64 `csv:"peak_start"`
	PeakEnd   float64 `csv:"peak_end"`
	HalfLife  int     `csv:"half_life"` // steps until the peak first fell below half
	RMSEnd    float64 `csv:"rms_end"`
}

func main() {
	steps := flag.Int("steps", 600, "ticks to simulate per scenario")
	width := flag.Int("width", 200, "field width in cells")
	height := flag.Int("height", 150, "field height in cells")
	dampMin := flag.Float64("damp-min", 0.90, "lowest damping value")
	dampMax := flag.Float64("damp-max", 0.999, "highest damping value")
	dampSteps := flag.Int("damp-steps", 10, "number of damping values to sweep")
	workers := flag.Int("workers", runtime.NumCPU(), "worker goroutines")
	out := flag.String("out", "", "optional CSV output path")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load("")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	n := *dampSteps
	if n < 1 {
		n = 1
	}
	values := make([]float64, n)
	for i := range values {
		if n == 1 {
			values[i] = *dampMax
			continue
		}
		t := float64(i) / float64(n-1)
		values[i] = *dampMin + (*dampMax-*dampMin)*t
	}

	jobs := make(chan float64)
	resultsCh := make(chan result)
	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for damping := range jobs {
				resultsCh <- runScenario(cfg, *width, *height, damping, *steps)
			}
		}()
	}
	go func() {
		for _, d := range values {
			jobs <- d
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	results := make([]result, 0, n)
	for r := range resultsCh {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Damping < results[j].Damping })

	for _, r := range results {
		slog.Info("scenario finished",
			"damping", r.Damping,
			"peak_start", r.PeakStart,
			"peak_end", r.PeakEnd,
			"half_life", r.HalfLife,
			"rms_end", r.RMSEnd,
		)
	}

	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			slog.Error("failed to create output", "path", *out, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := gocsv.Marshal(results, f); err != nil {
			slog.Error("failed to write CSV", "path", *out, "error", err)
			os.Exit(1)
		}
		slog.Info("wrote sweep results", "path", *out, "scenarios", len(results))
	}
}

// runScenario drops one splash at the center and steps the field, tracking
// the newest state (the previous buffer after each swap).
func runScenario(cfg *config.Config, w, h int, damping float64, steps int) result {
	factory, ok := preset.Lookup("water")
	if !ok {
		slog.Error("water preset missing from registry")
		os.Exit(1)
	}
	p := factory(cfg)
	r := sim.New(w, h, damping, p.Params)
	r.AddDrop(w/2, h/2, cfg.Input.Water.SplashIntensity)

	collector := telemetry.NewCollector(1, w*h)
	start := collector.Collect(0, r.Field().Prev())

	res := result{
		Damping:   damping,
		Steps:     steps,
		PeakStart: start.Peak,
		HalfLife:  -1,
	}
	var last telemetry.FrameStats
	for i := 1; i <= steps; i++ {
		r.Step()
		last = collector.Collect(i, r.Field().Prev())
		if res.HalfLife < 0 && last.Peak < start.Peak/2 {
			res.HalfLife = i
		}
	}
	res.PeakEnd = last.Peak
	res.RMSEnd = last.RMS
	return res
}
