//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one GPU image in sync with a rendered raster.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter allocates a painter for a w×h raster.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	if w == gp.w && h == gp.h && gp.img != nil {
		return
	}
	gp.w, gp.h = w, h
	gp.img = ebiten.NewImage(w, h)
}

// Upload replaces the painter image with src, reallocating on size changes.
func (gp *GridPainter) Upload(src *image.RGBA) {
	b := src.Bounds()
	gp.resize(b.Dx(), b.Dy())
	gp.img.WritePixels(src.Pix)
}

// Blit draws the painter image at the given offset.
func (gp *GridPainter) Blit(dst *ebiten.Image, offsetX, offsetY int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), float64(offsetY))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
