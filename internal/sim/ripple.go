// Package sim implements the damped wave equation on a 2D height field
// together with the disturbance injectors that feed energy into it.
package sim

import "ripplebox/internal/core"

// Params holds the injection tunables. The defaults mirror the constants
// of the realistic-water variant; presets override individual fields.
type Params struct {
	// WidePoint spreads a point injection onto the 8 surrounding cells.
	WidePoint bool
	// NeighborShare is the fraction of the intensity each neighbor
	// receives when WidePoint is enabled.
	NeighborShare float64

	// LineDensity is the number of samples per unit of segment length
	// when a drag gesture is resolved into point injections.
	LineDensity float64
	// LineTailFade is the fraction of intensity lost at the segment end.
	LineTailFade float64

	// BrushRadius is the disk radius of the drag footprint stamp.
	BrushRadius int

	// RadialRadius and RingFrequency shape the oscillating ring kernel.
	RadialRadius  int
	RingFrequency float64

	// DropRadius, DropSharpness and DropFrequency shape the gaussian
	// water-drop kernel: intensity * exp(-d²*sharpness) * cos(d*frequency).
	DropRadius    int
	DropSharpness float64
	DropFrequency float64
}

// DefaultParams returns the water-variant constants.
func DefaultParams() Params {
	return Params{
		NeighborShare: 0.5,
		LineDensity:   1.5,
		LineTailFade:  0.3,
		BrushRadius:   2,
		RadialRadius:  3,
		RingFrequency: 0.8,
		DropRadius:    3,
		DropSharpness: 0.3,
		DropFrequency: 1.5,
	}
}

// Ripple owns one height field and advances it with a leapfrog
// finite-difference integrator.
type Ripple struct {
	field  *core.Field
	params Params
}

// New constructs a simulation over a zero-filled w×h field.
func New(w, h int, damping float64, params Params) *Ripple {
	return &Ripple{field: core.NewField(w, h, damping), params: params}
}

// Field exposes the underlying height field.
func (r *Ripple) Field() *core.Field { return r.field }

// Params returns the active injection tunables.
func (r *Ripple) Params() Params { return r.params }

// Size returns the grid dimensions.
func (r *Ripple) Size() core.Size { return r.field.Size() }

// Heights returns the buffer the compositor should display.
func (r *Ripple) Heights() []float32 { return r.field.Curr() }

// Reset zeroes the field in place.
func (r *Ripple) Reset() { r.field.Reset() }

// Step advances the simulation by one tick. Every interior cell is updated
// from the 4-neighbor Laplacian of the previous buffer, damped uniformly,
// and the buffer roles are exchanged once at the end. Border cells are
// never written and keep whatever value injection or initialization gave
// them.
func (r *Ripple) Step() {
	f := r.field
	w := f.Width()
	h := f.Height()
	d := f.Damping()
	curr := f.Curr()
	prev := f.Prev()
	for y := 1; y < h-1; y++ {
		row := y * w
		for x := 1; x < w-1; x++ {
			i := row + x
			lap := prev[i-1] + prev[i+1] + prev[i-w] + prev[i+w] - 4*prev[i]
			curr[i] = (2*prev[i] - curr[i] + 0.25*lap) * d
		}
	}
	f.Swap()
}
