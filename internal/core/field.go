package core

// Field stores the two rotating height buffers used by the wave solver
// along with the grid geometry and damping factor.
//
// Both buffers are allocated once and never resized; Reset zeroes them in
// place. After a Step the freshly integrated heights sit in the previous
// buffer, which the next step reads, while the current buffer read by the
// compositor trails by one tick. Injection always targets the previous
// buffer so the next step picks the disturbance up.
//
// Accessors do not bounds-check. Callers are expected to stay inside the
// grid; the injectors perform their own interior checks before writing.
type Field struct {
	w, h    int
	damping float32
	curr    []float32
	prev    []float32
}

// NewField allocates a zero-filled field. Dimensions below 3 are raised to
// 3 so the interior of the finite difference stencil is never empty.
func NewField(w, h int, damping float64) *Field {
	if w < 3 {
		w = 3
	}
	if h < 3 {
		h = 3
	}
	return &Field{
		w:       w,
		h:       h,
		damping: float32(damping),
		curr:    make([]float32, w*h),
		prev:    make([]float32, w*h),
	}
}

// Size returns the grid dimensions.
func (f *Field) Size() Size { return Size{W: f.w, H: f.h} }

// Width returns the number of columns.
func (f *Field) Width() int { return f.w }

// Height returns the number of rows.
func (f *Field) Height() int { return f.h }

// Damping returns the uniform per-step decay factor.
func (f *Field) Damping() float32 { return f.damping }

// Index returns the linear slice index for coordinates (x, y).
func (f *Field) Index(x, y int) int { return y*f.w + x }

// Curr exposes the buffer the compositor reads.
func (f *Field) Curr() []float32 { return f.curr }

// Prev exposes the buffer injections write into and the stepper reads.
func (f *Field) Prev() []float32 { return f.prev }

// AddPrev accumulates v into the previous buffer at (x, y).
func (f *Field) AddPrev(x, y int, v float32) { f.prev[y*f.w+x] += v }

// Interior reports whether (x, y) lies at least margin cells away from
// every border. Margin 1 is the strict interior the stencil updates.
func (f *Field) Interior(x, y, margin int) bool {
	return x >= margin && x < f.w-margin && y >= margin && y < f.h-margin
}

// Swap exchanges the roles of the current and previous buffers without
// copying any elements.
func (f *Field) Swap() { f.curr, f.prev = f.prev, f.curr }

// Reset zeroes both buffers in place, keeping the allocations.
func (f *Field) Reset() {
	for i := range f.curr {
		f.curr[i] = 0
	}
	for i := range f.prev {
		f.prev[i] = 0
	}
}
