// Package config provides configuration loading for the simulator.
// Defaults are embedded in the binary; a yaml file can override any subset
// of them.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of the simulator. The render constants are
// part of the configuration on purpose: the visual semantics of the color
// mappings depend on them, so each run documents its own choice.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Input     InputConfig     `yaml:"input"`
	Injection InjectionConfig `yaml:"injection"`
	Render    RenderConfig    `yaml:"render"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// GridConfig holds the field dimensions and the display scale factor
// (display pixels per grid cell).
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"`
}

// PhysicsConfig holds the solver parameters.
type PhysicsConfig struct {
	Damping float64 `yaml:"damping"`
}

// InputConfig holds the gesture intensities, one section per preset. Each
// variant inherited its own values from its historical program, so they are
// not shared.
type InputConfig struct {
	Classic GestureConfig `yaml:"classic"`
	Sketch  GestureConfig `yaml:"sketch"`
	Water   GestureConfig `yaml:"water"`
}

// GestureConfig holds the intensities attached to pointer and key gestures.
// DragRadialIntensity feeds the extra radial stamp the sketch variant drops
// at the cursor while dragging; the other variants leave it zero.
type GestureConfig struct {
	ClickIntensity      float64 `yaml:"click_intensity"`
	DragIntensity       float64 `yaml:"drag_intensity"`
	DragRadialIntensity float64 `yaml:"drag_radial_intensity"`
	SplashIntensity     float64 `yaml:"splash_intensity"`
}

// InjectionConfig holds the kernel shape constants shared by the presets.
type InjectionConfig struct {
	WidePoint     bool    `yaml:"wide_point"`
	NeighborShare float64 `yaml:"neighbor_share"`
	LineDensity   float64 `yaml:"line_density"`
	LineTailFade  float64 `yaml:"line_tail_fade"`
	BrushRadius   int     `yaml:"brush_radius"`
	RadialRadius  int     `yaml:"radial_radius"`
	RingFrequency float64 `yaml:"ring_frequency"`
	DropRadius    int     `yaml:"drop_radius"`
	DropSharpness float64 `yaml:"drop_sharpness"`
	DropFrequency float64 `yaml:"drop_frequency"`
}

// RenderConfig groups the per-policy color mapping constants.
type RenderConfig struct {
	Water WaterConfig `yaml:"water"`
	Gray  GrayConfig  `yaml:"gray"`
	Tint  TintConfig  `yaml:"tint"`
}

// WaterConfig mirrors render.WaterParams.
type WaterConfig struct {
	BaseR         float64 `yaml:"base_r"`
	BaseG         float64 `yaml:"base_g"`
	BaseB         float64 `yaml:"base_b"`
	FoamThreshold float64 `yaml:"foam_threshold"`
	FoamGain      float64 `yaml:"foam_gain"`
	LightGain     float64 `yaml:"light_gain"`
	LightCap      float64 `yaml:"light_cap"`
}

// GrayConfig mirrors render.GrayParams.
type GrayConfig struct {
	Gain          float64 `yaml:"gain"`
	FoamThreshold float64 `yaml:"foam_threshold"`
	FoamGain      float64 `yaml:"foam_gain"`
	FoamLighten   float64 `yaml:"foam_lighten"`
}

// TintConfig mirrors render.TintParams.
type TintConfig struct {
	Gain    float64 `yaml:"gain"`
	WeightR float64 `yaml:"weight_r"`
	WeightG float64 `yaml:"weight_g"`
	WeightB float64 `yaml:"weight_b"`
}

// TelemetryConfig controls how often field statistics are sampled.
type TelemetryConfig struct {
	Window int `yaml:"window"`
}

// Load returns the embedded defaults, overlaid with the yaml file at path
// when one is given.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Grid.Width < 3 || c.Grid.Height < 3 {
		return fmt.Errorf("grid %dx%d is too small for the wave stencil", c.Grid.Width, c.Grid.Height)
	}
	if c.Physics.Damping <= 0 || c.Physics.Damping > 1 {
		return fmt.Errorf("damping %v outside (0, 1]", c.Physics.Damping)
	}
	if c.Grid.Scale < 1 {
		c.Grid.Scale = 1
	}
	if c.Telemetry.Window < 1 {
		c.Telemetry.Window = 1
	}
	return nil
}

// WriteYAML saves the active configuration, used by the telemetry output
// manager to snapshot runs.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
