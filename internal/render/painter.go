//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// gridLineColor is the subtle outline drawn between cells when the grid
// overlay is enabled.
var gridLineColor = color.RGBA{R: 240, G: 240, B: 240, A: 0xFF}

// GridPainter owns the reusable RGBA buffer for one grid and uploads it to
// a single ebiten image per frame.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit composites the heights through m and draws the result onto dst
// scaled by the given integer factor.
func (gp *GridPainter) Blit(dst *ebiten.Image, heights []float32, m Mapper, scale int) {
	if len(heights) != gp.w*gp.h {
		return
	}
	FillRGBA(gp.buf, heights, m)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// DrawGridLines overlays light-gray cell outlines on dst. Cells rendered at
// 2px or smaller would be swallowed by the lines, so the overlay only draws
// above that scale.
func (gp *GridPainter) DrawGridLines(dst *ebiten.Image, scale int) {
	if scale <= 2 {
		return
	}
	w := float32(gp.w * scale)
	h := float32(gp.h * scale)
	for x := 0; x <= gp.w; x++ {
		fx := float32(x * scale)
		vector.StrokeLine(dst, fx, 0, fx, h, 1, gridLineColor, false)
	}
	for y := 0; y <= gp.h; y++ {
		fy := float32(y * scale)
		vector.StrokeLine(dst, 0, fy, w, fy, 1, gridLineColor, false)
	}
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
