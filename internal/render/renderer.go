//go:build ebiten

package render

import (
	"image/color"

	"lineage-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads one colour per cell into a texture and draws it
// letterboxed onto the destination.
type GridPainter struct {
	size core.Size
	img  *ebiten.Image
	buf  []byte
	bg   color.Color
}

// NewGridPainter allocates a painter for a grid of the given size. bg fills
// the letterbox bars.
func NewGridPainter(size core.Size, bg color.Color) *GridPainter {
	gp := &GridPainter{size: size, buf: make([]byte, 4*size.W*size.H), bg: bg}
	gp.img = ebiten.NewImage(size.W, size.H)
	return gp
}

// Blit resolves every cell colour from src, uploads it and draws it scaled to
// fit dst. It returns the viewport used.
func (gp *GridPainter) Blit(dst *ebiten.Image, src core.Colorizer) Viewport {
	FillRGBA(gp.buf, gp.size, src)
	gp.img.WritePixels(gp.buf)

	b := dst.Bounds()
	vp := Fit(gp.size.W, gp.size.H, b.Dx(), b.Dy())
	dst.Fill(gp.bg)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(vp.Scale, vp.Scale)
	op.GeoM.Translate(vp.OffsetX, vp.OffsetY)
	dst.DrawImage(gp.img, op)
	return vp
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() core.Size { return gp.size }
