package sim

import "math"

// kernel evaluates a radially symmetric stamp amplitude at the given
// distance from the stamp center.
type kernel func(dist float64) float64

// AddPoint adds intensity into the previous buffer at (x, y) when the cell
// lies strictly inside the border. Out-of-range requests are ignored, not
// clamped. With WidePoint enabled the 8 surrounding cells receive
// NeighborShare*intensity as well; the interior check on the center
// guarantees the neighbors are in bounds (border cells may be touched,
// matching the original smoothed click).
func (r *Ripple) AddPoint(x, y int, intensity float64) {
	f := r.field
	if !f.Interior(x, y, 1) {
		return
	}
	f.AddPrev(x, y, float32(intensity))
	if !r.params.WidePoint {
		return
	}
	share := float32(intensity * r.params.NeighborShare)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			f.AddPrev(x+dx, y+dy, share)
		}
	}
}

// AddLine resolves a drag segment into point injections sampled densely
// enough that fast pointer motion leaves no gaps in the trail. Intensity
// fades linearly toward the trailing end. Coincident endpoints collapse to
// a single point injection at full intensity.
func (r *Ripple) AddLine(x1, y1, x2, y2 int, intensity float64) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		r.AddPoint(x1, y1, intensity)
		return
	}
	steps := int(dist*r.params.LineDensity) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		cx := x1 + int(dx*t)
		cy := y1 + int(dy*t)
		r.AddPoint(cx, cy, intensity*(1-t*r.params.LineTailFade))
	}
}

// AddRadial injects an oscillating ring pattern that decays to zero at the
// disk edge. The whole disk must fit RadialRadius cells away from every
// border; otherwise the request is ignored.
func (r *Ripple) AddRadial(x, y int, intensity float64) {
	radius := r.params.RadialRadius
	if !r.field.Interior(x, y, radius) {
		return
	}
	freq := r.params.RingFrequency
	rad := float64(radius)
	r.stamp(x, y, radius, func(dist float64) float64 {
		return intensity * math.Cos(dist*freq) * (1 - dist/rad)
	})
}

// AddDrop injects a gaussian-enveloped ripple, a tighter impulse than the
// radial field. Same center-range widening as AddRadial.
func (r *Ripple) AddDrop(x, y int, intensity float64) {
	radius := r.params.DropRadius
	if !r.field.Interior(x, y, radius) {
		return
	}
	k1 := r.params.DropSharpness
	k2 := r.params.DropFrequency
	r.stamp(x, y, radius, func(dist float64) float64 {
		return intensity * math.Exp(-dist*dist*k1) * math.Cos(dist*k2)
	})
}

// AddBrush stamps a linear-falloff disk at (x, y), the drag footprint of
// the classic variant. Cells outside the interior are skipped rather than
// the whole stamp being rejected, so brushing along an edge still works.
func (r *Ripple) AddBrush(x, y int, intensity float64) {
	radius := r.params.BrushRadius
	if radius < 1 {
		r.AddPoint(x, y, intensity)
		return
	}
	rad := float64(radius)
	r.stamp(x, y, radius, func(dist float64) float64 {
		return intensity * (1 - dist/rad)
	})
}

// stamp evaluates k over the disk of the given radius centered on (x, y)
// and accumulates the result into the previous buffer. Cells outside the
// strict interior are skipped.
func (r *Ripple) stamp(x, y, radius int, k kernel) {
	f := r.field
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			dist := math.Sqrt(float64(dx*dx + dy*dy))
			if dist > float64(radius) {
				continue
			}
			cx := x + dx
			cy := y + dy
			if !f.Interior(cx, cy, 1) {
				continue
			}
			f.AddPrev(cx, cy, float32(k(dist)))
		}
	}
}
