package sim

import (
	"math"
	"testing"
)

func fieldSum(r *Ripple) float64 {
	sum := 0.0
	for _, v := range r.Field().Prev() {
		sum += math.Abs(float64(v))
	}
	for _, v := range r.Field().Curr() {
		sum += math.Abs(float64(v))
	}
	return sum
}

func TestAddPointNarrow(t *testing.T) {
	r := New(10, 10, 0.99, narrowParams())
	r.AddPoint(4, 6, 12)

	f := r.Field()
	if got := f.Prev()[f.Index(4, 6)]; got != 12 {
		t.Fatalf("prev(4,6) = %v, expected 12", got)
	}
	count := 0
	for _, v := range f.Prev() {
		if v != 0 {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("narrow point touched %d cells, expected 1", count)
	}
}

func TestAddPointWide(t *testing.T) {
	p := DefaultParams()
	p.WidePoint = true
	r := New(10, 10, 0.99, p)
	r.AddPoint(5, 5, 10)

	f := r.Field()
	if got := f.Prev()[f.Index(5, 5)]; got != 10 {
		t.Fatalf("center = %v, expected 10", got)
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if got := f.Prev()[f.Index(5+dx, 5+dy)]; got != 5 {
				t.Fatalf("neighbor (%d,%d) = %v, expected 5", 5+dx, 5+dy, got)
			}
		}
	}
}

func TestInjectionContainment(t *testing.T) {
	cases := []struct {
		name string
		call func(r *Ripple)
	}{
		{"point left border", func(r *Ripple) { r.AddPoint(0, 5, 10) }},
		{"point top border", func(r *Ripple) { r.AddPoint(5, 0, 10) }},
		{"point right border", func(r *Ripple) { r.AddPoint(19, 5, 10) }},
		{"point bottom border", func(r *Ripple) { r.AddPoint(5, 14, 10) }},
		{"point negative", func(r *Ripple) { r.AddPoint(-3, 5, 10) }},
		{"point past edge", func(r *Ripple) { r.AddPoint(25, 40, 10) }},
		{"radial too close", func(r *Ripple) { r.AddRadial(2, 2, 10) }},
		{"radial outside", func(r *Ripple) { r.AddRadial(-1, 7, 10) }},
		{"drop too close", func(r *Ripple) { r.AddDrop(17, 7, 10) }},
		{"drop outside", func(r *Ripple) { r.AddDrop(7, 99, 10) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := New(20, 15, 0.99, DefaultParams())
			c.call(r)
			if sum := fieldSum(r); sum != 0 {
				t.Fatalf("out-of-range injection changed the field (sum %v)", sum)
			}
		})
	}
}

func TestAddLineCoversSegment(t *testing.T) {
	r := New(40, 40, 0.99, narrowParams())
	r.AddLine(2, 20, 30, 20, 8)

	f := r.Field()
	for x := 2; x <= 30; x++ {
		if got := f.Prev()[f.Index(x, 20)]; got <= 0 {
			t.Fatalf("cell (%d,20) = %v, expected energy along the trail", x, got)
		}
	}
	// off-trail rows stay untouched
	for x := 0; x < 40; x++ {
		if got := f.Prev()[f.Index(x, 22)]; got != 0 {
			t.Fatalf("cell (%d,22) = %v, expected 0 off the trail", x, got)
		}
	}
}

func TestAddLineTailFades(t *testing.T) {
	r := New(60, 10, 0.99, narrowParams())
	r.AddLine(2, 5, 50, 5, 10)

	f := r.Field()
	head := f.Prev()[f.Index(2, 5)]
	tail := f.Prev()[f.Index(50, 5)]
	if head <= 0 || tail <= 0 {
		t.Fatalf("trail endpoints missing energy: head %v tail %v", head, tail)
	}
	if tail >= head {
		t.Fatalf("tail %v not fainter than head %v", tail, head)
	}
}

func TestAddLineDegenerate(t *testing.T) {
	r := New(12, 12, 0.99, narrowParams())
	r.AddLine(5, 5, 5, 5, 7)

	f := r.Field()
	if got := f.Prev()[f.Index(5, 5)]; got != 7 {
		t.Fatalf("coincident endpoints: prev(5,5) = %v, expected a single full-intensity point", got)
	}
	count := 0
	for _, v := range f.Prev() {
		if v != 0 {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("coincident endpoints touched %d cells, expected 1", count)
	}
}

func TestAddRadialRingShape(t *testing.T) {
	r := New(20, 20, 0.99, DefaultParams())
	r.AddRadial(10, 10, 12)

	f := r.Field()
	if got := f.Prev()[f.Index(10, 10)]; got != 12 {
		t.Fatalf("ring center = %v, expected full intensity 12", got)
	}
	// the kernel decays to zero exactly at the disk edge
	if got := f.Prev()[f.Index(13, 10)]; got != 0 {
		t.Fatalf("disk edge = %v, expected 0", got)
	}
	// the cosine makes the outer ring dip negative
	if got := f.Prev()[f.Index(12, 12)]; got >= 0 {
		t.Fatalf("outer ring = %v, expected a negative trough", got)
	}
}

func TestAddDropShape(t *testing.T) {
	r := New(20, 20, 0.99, DefaultParams())
	r.AddDrop(10, 10, 20)

	f := r.Field()
	if got := f.Prev()[f.Index(10, 10)]; got != 20 {
		t.Fatalf("drop center = %v, expected full intensity 20", got)
	}
	// cos(2*1.5) < 0: the ripple crosses zero inside the disk
	if got := f.Prev()[f.Index(12, 10)]; got >= 0 {
		t.Fatalf("drop ring at distance 2 = %v, expected a negative trough", got)
	}
	// tighter than the radial kernel: magnitude shrinks fast with distance
	center := math.Abs(float64(f.Prev()[f.Index(10, 10)]))
	edge := math.Abs(float64(f.Prev()[f.Index(12, 10)]))
	if edge >= center {
		t.Fatalf("gaussian envelope missing: center %v edge %v", center, edge)
	}
}

func TestAddBrushSkipsOutOfRangeCells(t *testing.T) {
	r := New(20, 20, 0.99, DefaultParams())
	// brushing right next to the edge stamps the cells that fit
	r.AddBrush(1, 10, 9)

	f := r.Field()
	if got := f.Prev()[f.Index(1, 10)]; got <= 0 {
		t.Fatalf("brush center = %v, expected energy", got)
	}
	for y := 0; y < 20; y++ {
		if got := f.Prev()[f.Index(0, y)]; got != 0 {
			t.Fatalf("border cell (0,%d) = %v, expected stamp to skip it", y, got)
		}
	}
}
