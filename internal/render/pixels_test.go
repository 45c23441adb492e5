package render

import (
	"image/color"
	"testing"
)

func TestFillRGBAWritesEveryPixel(t *testing.T) {
	heights := []float32{-1, 0, 1}
	buf := make([]byte, len(heights)*4)
	for i := range buf {
		buf[i] = 0xAA // stale data from the previous frame
	}

	m := func(h float32) color.RGBA {
		switch {
		case h < 0:
			return color.RGBA{R: 10, G: 20, B: 30, A: 0xFF}
		case h > 0:
			return color.RGBA{R: 200, G: 210, B: 220, A: 0xFF}
		default:
			return color.RGBA{R: 0, G: 0, B: 0, A: 0xFF}
		}
	}

	FillRGBA(buf, heights, m)

	want := []byte{
		10, 20, 30, 0xFF,
		0, 0, 0, 0xFF,
		200, 210, 220, 0xFF,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, expected %d", i, buf[i], want[i])
		}
	}
}
