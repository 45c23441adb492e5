package preset

import (
	"ripplebox/internal/config"
	"ripplebox/internal/render"
	"ripplebox/internal/sim"
)

func init() {
	Register("classic", classic)
	Register("sketch", sketch)
	Register("water", water)
}

// classic is the original blue-fluid program: smoothed wide clicks, a
// falloff brush while dragging, and a blue-leaning gradient.
func classic(cfg *config.Config) Preset {
	in := cfg.Input.Classic
	params := paramsFromConfig(cfg)
	params.WidePoint = true
	return Preset{
		Name:         "classic",
		Mapper:       render.Tint(tintParams(cfg)),
		Params:       params,
		SplashMargin: 1,
		Click: func(r *sim.Ripple, x, y int) {
			r.AddPoint(x, y, in.ClickIntensity)
		},
		Drag: func(r *sim.Ripple, _, _, x2, y2 int) {
			r.AddBrush(x2, y2, in.DragIntensity)
		},
		Splash: func(r *sim.Ripple, x, y int) {
			r.AddPoint(x, y, in.SplashIntensity)
		},
	}
}

// sketch is the black-and-white grid program: radial velocity fields on
// click, interpolated drag trails, inverted grayscale rendering.
func sketch(cfg *config.Config) Preset {
	in := cfg.Input.Sketch
	params := paramsFromConfig(cfg)
	return Preset{
		Name:         "sketch",
		Mapper:       render.Grayscale(grayParams(cfg)),
		Params:       params,
		SplashMargin: params.RadialRadius,
		GridLines:    true,
		Click: func(r *sim.Ripple, x, y int) {
			r.AddRadial(x, y, in.ClickIntensity)
		},
		Drag: func(r *sim.Ripple, x1, y1, x2, y2 int) {
			r.AddLine(x1, y1, x2, y2, in.DragIntensity)
			r.AddRadial(x2, y2, in.DragRadialIntensity)
		},
		Splash: func(r *sim.Ripple, x, y int) {
			r.AddRadial(x, y, in.SplashIntensity)
		},
	}
}

// water is the realistic program: gaussian drops on click, plain
// interpolated trails while dragging, tri-channel water colors.
func water(cfg *config.Config) Preset {
	in := cfg.Input.Water
	params := paramsFromConfig(cfg)
	return Preset{
		Name:         "water",
		Mapper:       render.Water(waterParams(cfg)),
		Params:       params,
		SplashMargin: params.DropRadius,
		Click: func(r *sim.Ripple, x, y int) {
			r.AddDrop(x, y, in.ClickIntensity)
		},
		Drag: func(r *sim.Ripple, x1, y1, x2, y2 int) {
			r.AddLine(x1, y1, x2, y2, in.DragIntensity)
		},
		Splash: func(r *sim.Ripple, x, y int) {
			r.AddDrop(x, y, in.SplashIntensity)
		},
	}
}

// paramsFromConfig converts the injection section into solver parameters.
func paramsFromConfig(cfg *config.Config) sim.Params {
	inj := cfg.Injection
	return sim.Params{
		WidePoint:     inj.WidePoint,
		NeighborShare: inj.NeighborShare,
		LineDensity:   inj.LineDensity,
		LineTailFade:  inj.LineTailFade,
		BrushRadius:   inj.BrushRadius,
		RadialRadius:  inj.RadialRadius,
		RingFrequency: inj.RingFrequency,
		DropRadius:    inj.DropRadius,
		DropSharpness: inj.DropSharpness,
		DropFrequency: inj.DropFrequency,
	}
}

func waterParams(cfg *config.Config) render.WaterParams {
	w := cfg.Render.Water
	return render.WaterParams{
		BaseR:         w.BaseR,
		BaseG:         w.BaseG,
		BaseB:         w.BaseB,
		FoamThreshold: w.FoamThreshold,
		FoamGain:      w.FoamGain,
		LightGain:     w.LightGain,
		LightCap:      w.LightCap,
	}
}

func grayParams(cfg *config.Config) render.GrayParams {
	g := cfg.Render.Gray
	return render.GrayParams{
		Gain:          g.Gain,
		FoamThreshold: g.FoamThreshold,
		FoamGain:      g.FoamGain,
		FoamLighten:   g.FoamLighten,
	}
}

func tintParams(cfg *config.Config) render.TintParams {
	t := cfg.Render.Tint
	return render.TintParams{
		Gain:    t.Gain,
		WeightR: t.WeightR,
		WeightG: t.WeightG,
		WeightB: t.WeightB,
	}
}
