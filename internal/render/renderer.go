//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from ternary cell data.
type GridPainter struct {
	w, h   int
	img    *ebiten.Image
	buf    []byte
	invert bool
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, invert bool) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), invert: invert}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillGrayRGBA(gp.buf, cells, gp.invert)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// SetInvert switches between the dark-on-light and light-on-dark palettes.
func (gp *GridPainter) SetInvert(invert bool) { gp.invert = invert }
