// Package preset models the historical program variants as data: each
// preset pairs pointer-gesture behavior with a color policy over the
// shared wave core, so one simulation loop serves all of them.
package preset

import (
	"sort"

	"ripplebox/internal/config"
	"ripplebox/internal/render"
	"ripplebox/internal/sim"
)

// Preset describes how one variant reacts to input and paints the field.
type Preset struct {
	Name   string
	Mapper render.Mapper

	// Params are the injection tunables the simulation is built with.
	Params sim.Params

	// SplashMargin keeps random space-bar splashes far enough from the
	// border for the preset's widest kernel.
	SplashMargin int

	// GridLines overlays cell outlines when cells render larger than 2px,
	// the sketch variant's grid texture.
	GridLines bool

	// Click fires on pointer-down, Drag on pointer motion with the button
	// held (previous to current cell), Splash on the space key.
	Click  func(r *sim.Ripple, x, y int)
	Drag   func(r *sim.Ripple, x1, y1, x2, y2 int)
	Splash func(r *sim.Ripple, x, y int)
}

// Factory builds a preset from the loaded configuration.
type Factory func(cfg *config.Config) Preset

var presets = map[string]Factory{}

// Register adds a preset factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	presets[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := presets[name]
	return f, ok
}

// Names lists the registered presets in stable order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
