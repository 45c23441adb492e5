// Package render maps height samples to colors and composites them into a
// reusable RGBA pixel buffer.
package render

import (
	"image/color"
	"math"
)

// Mapper converts one height sample into a display color. Implementations
// must be pure, keep every channel inside [0, 255] for any finite input,
// and always return full opacity.
type Mapper func(height float32) color.RGBA

// WaterParams holds the constants of the tri-channel water mapping.
// Defaults live in config/defaults.yaml: base tint (0.10, 0.20, 0.40),
// foam threshold 0.3 with gain 3.0, light gain 1.5 capped at 0.8.
type WaterParams struct {
	BaseR, BaseG, BaseB float64
	FoamThreshold       float64
	FoamGain            float64
	LightGain           float64
	LightCap            float64
}

// GrayParams holds the constants of the inverted grayscale mapping.
// Defaults: gain 2.0 (512 on the 8-bit scale), foam threshold 0.2, foam
// gain 4.0, foam lightening 0.5.
type GrayParams struct {
	Gain          float64
	FoamThreshold float64
	FoamGain      float64
	FoamLighten   float64
}

// TintParams holds the constants of the classic blue-leaning gradient.
// Defaults: gain 1.0 with channel weights (1/3, 1/2, 1).
type TintParams struct {
	Gain                      float64
	WeightR, WeightG, WeightB float64
}

// Water returns the realistic mapping: a fixed base tint plus a foam term
// once the height exceeds the threshold and a highlight term taken from
// positive heights only.
func Water(p WaterParams) Mapper {
	return func(height float32) color.RGBA {
		h := float64(height)
		foam := clamp01((h - p.FoamThreshold) * p.FoamGain)
		light := math.Min(math.Max(h, 0)*p.LightGain, p.LightCap)
		r := clamp01(p.BaseR + foam + light*0.3)
		g := clamp01(p.BaseG + foam*0.8 + light*0.4)
		b := clamp01(p.BaseB + foam + light*0.2)
		return color.RGBA{
			R: uint8(r * 255),
			G: uint8(g * 255),
			B: uint8(b * 255),
			A: 0xFF,
		}
	}
}

// Grayscale returns the inverted monochrome mapping of the sketch variant:
// calm water renders near-white, crests darken, and heights above the foam
// threshold are lightened again so peaks read as whitecaps.
func Grayscale(p GrayParams) Mapper {
	return func(height float32) color.RGBA {
		h := float64(height)
		intensity := math.Abs(h) * p.Gain
		if h > p.FoamThreshold {
			intensity -= (h - p.FoamThreshold) * p.FoamGain * p.FoamLighten
		}
		v := uint8((1 - clamp01(intensity)) * 255)
		return color.RGBA{R: v, G: v, B: v, A: 0xFF}
	}
}

// Tint returns the classic blue-leaning gradient; per-channel weights
// shift the ramp toward blue.
func Tint(p TintParams) Mapper {
	return func(height float32) color.RGBA {
		v := clamp01(math.Abs(float64(height)) * p.Gain)
		return color.RGBA{
			R: uint8(clamp01(v*p.WeightR) * 255),
			G: uint8(clamp01(v*p.WeightG) * 255),
			B: uint8(clamp01(v*p.WeightB) * 255),
			A: 0xFF,
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
