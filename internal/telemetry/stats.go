// Package telemetry aggregates per-frame field statistics and writes them
// to CSV for offline analysis.
package telemetry

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FrameStats summarizes the height field at the end of a sampling window.
type FrameStats struct {
	Tick   int     `csv:"tick"`
	Peak   float64 `csv:"peak"` // max |height|
	RMS    float64 `csv:"rms"`
	Mean   float64 `csv:"mean"`
	StdDev float64 `csv:"stddev"`
	Energy float64 `csv:"energy"` // sum of squared heights
}

// Collector samples the field every window ticks. One float64 scratch
// buffer is reused so steady-state collection does not allocate.
type Collector struct {
	window  int
	scratch []float64
}

// NewCollector builds a collector for a field of the given cell count.
func NewCollector(window, cells int) *Collector {
	if window < 1 {
		window = 1
	}
	return &Collector{window: window, scratch: make([]float64, cells)}
}

// Due reports whether tick closes a sampling window.
func (c *Collector) Due(tick int) bool { return tick%c.window == 0 }

// Collect computes the stats record for the given heights.
func (c *Collector) Collect(tick int, heights []float32) FrameStats {
	n := len(heights)
	if n == 0 {
		return FrameStats{Tick: tick}
	}
	if n > len(c.scratch) {
		c.scratch = make([]float64, n)
	}
	buf := c.scratch[:n]
	for i, h := range heights {
		buf[i] = float64(h)
	}
	norm2 := floats.Norm(buf, 2)
	return FrameStats{
		Tick:   tick,
		Peak:   floats.Norm(buf, math.Inf(1)),
		RMS:    norm2 / math.Sqrt(float64(n)),
		Mean:   stat.Mean(buf, nil),
		StdDev: stat.StdDev(buf, nil),
		Energy: norm2 * norm2,
	}
}
