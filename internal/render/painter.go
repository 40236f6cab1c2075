//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// BoardPainter keeps one texel per cell and scales it up when drawing.
type BoardPainter struct {
	w, h    int
	palette Palette
	img     *ebiten.Image
	pixels  []byte
}

// NewBoardPainter allocates a painter for a w by h board.
func NewBoardPainter(w, h int, palette Palette) *BoardPainter {
	return &BoardPainter{
		w:       w,
		h:       h,
		palette: palette,
		img:     ebiten.NewImage(max(w, 1), max(h, 1)),
		pixels:  make([]byte, 4*w*h),
	}
}

// Draw uploads cells and paints them at the top-left of dst, each cell
// covering scale by scale pixels. Cells of the wrong length are ignored.
func (bp *BoardPainter) Draw(dst *ebiten.Image, cells []uint8, scale int) {
	if len(cells) == 0 || len(cells) != bp.w*bp.h {
		return
	}
	bp.palette.fill(bp.pixels, cells)
	bp.img.WritePixels(bp.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(max(scale, 1)), float64(max(scale, 1)))
	dst.DrawImage(bp.img, op)
}
