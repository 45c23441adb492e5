package render

import (
	"math"
	"testing"
)

func testWaterParams() WaterParams {
	return WaterParams{
		BaseR: 0.1, BaseG: 0.2, BaseB: 0.4,
		FoamThreshold: 0.3, FoamGain: 3.0,
		LightGain: 1.5, LightCap: 0.8,
	}
}

func testGrayParams() GrayParams {
	return GrayParams{Gain: 2.0, FoamThreshold: 0.2, FoamGain: 4.0, FoamLighten: 0.5}
}

func testTintParams() TintParams {
	return TintParams{Gain: 1.0, WeightR: 0.3333, WeightG: 0.5, WeightB: 1.0}
}

// extremes includes signed zero and magnitudes far beyond any plausible
// wave height.
var extremes = []float32{0, float32(math.Copysign(0, -1)), 0.25, -0.25, 5, -5, 1e9, -1e9}

func TestMappersAlwaysOpaqueAndBounded(t *testing.T) {
	mappers := map[string]Mapper{
		"water": Water(testWaterParams()),
		"gray":  Grayscale(testGrayParams()),
		"tint":  Tint(testTintParams()),
	}
	for name, m := range mappers {
		for _, h := range extremes {
			c := m(h)
			if c.A != 0xFF {
				t.Fatalf("%s(%v) alpha = %d, expected opaque", name, h, c.A)
			}
			// uint8 cannot overflow, but the clamp must have kept the
			// pre-quantization values sane: remapping the same input
			// twice must agree exactly (purity).
			if again := m(h); again != c {
				t.Fatalf("%s(%v) not pure: %v vs %v", name, h, c, again)
			}
		}
	}
}

func TestWaterBaseTintAtRest(t *testing.T) {
	m := Water(testWaterParams())
	c := m(0)
	if c.R != 25 || c.G != 51 || c.B != 102 {
		t.Fatalf("calm water = %v, expected base tint (25, 51, 102)", c)
	}
	// negative heights get neither foam nor highlight
	if got := m(-5); got != c {
		t.Fatalf("trough color %v differs from base tint %v", got, c)
	}
}

func TestWaterSaturatesToFoam(t *testing.T) {
	m := Water(testWaterParams())
	c := m(1e9)
	if c.R != 255 || c.G != 255 || c.B != 255 {
		t.Fatalf("extreme crest = %v, expected full white foam", c)
	}
}

func TestGrayscaleInverted(t *testing.T) {
	m := Grayscale(testGrayParams())
	if c := m(0); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Fatalf("calm water = %v, expected near-white", c)
	}
	// deep troughs get no foam correction and bottom out at black
	if c := m(-1e9); c.R != 0 {
		t.Fatalf("extreme trough = %v, expected black", c)
	}
	// extreme crests keep their whitecap: foam pulls the value back up,
	// so they render gray rather than black or white
	if c := m(1e9); c.R == 0 || c.R == 255 {
		t.Fatalf("extreme crest = %v, expected a foam-lightened gray", c)
	}
}

func TestGrayscaleFoamLightensPeaks(t *testing.T) {
	p := testGrayParams()
	m := Grayscale(p)

	h := float32(0.3)
	// without foam the crest would render at (1 - |h|*gain)
	plain := uint8((1 - float64(h)*p.Gain) * 255)
	got := m(h).R
	if got <= plain {
		t.Fatalf("foam did not lighten the peak: got %d, plain %d", got, plain)
	}

	// below the threshold the foam term must not fire
	low := float32(0.1)
	want := uint8((1 - float64(low)*p.Gain) * 255)
	if c := m(low); c.R != want {
		t.Fatalf("sub-threshold crest = %d, expected %d", c.R, want)
	}
}

func TestTintLeansBlue(t *testing.T) {
	m := Tint(testTintParams())
	c := m(0.5)
	if !(c.B > c.G && c.G > c.R) {
		t.Fatalf("tint ordering wrong: %v, expected B > G > R", c)
	}
	sat := m(1e9)
	if sat.B != 255 {
		t.Fatalf("saturated tint blue = %d, expected 255", sat.B)
	}
	if sat.R >= sat.B || sat.G >= sat.B {
		t.Fatalf("saturated tint lost channel weights: %v", sat)
	}
	// symmetric in height sign
	if m(-0.5) != c {
		t.Fatalf("tint not symmetric: %v vs %v", m(-0.5), c)
	}
}
