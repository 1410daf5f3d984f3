package render

import (
	"image"

	"lineage-life/internal/core"
)

// FillRGBA writes the colour of every cell of src into buf, row-major, four
// bytes per cell. buf must hold at least 4*W*H bytes.
func FillRGBA(buf []byte, size core.Size, src core.Colorizer) {
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			base := (y*size.W + x) * 4
			col := src.ColorAt(x, y)
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// Snapshot renders src into a new image at one pixel per cell.
func Snapshot(size core.Size, src core.Colorizer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	FillRGBA(img.Pix, size, src)
	return img
}

// Viewport places a scaled grid image inside an output surface.
type Viewport struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Fit scales a srcW×srcH image uniformly to the largest size that fits in
// dstW×dstH and centres it, leaving letterbox bars on the short axis.
func Fit(srcW, srcH, dstW, dstH int) Viewport {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return Viewport{Scale: 1}
	}
	scale := min(float64(dstW)/float64(srcW), float64(dstH)/float64(srcH))
	return Viewport{
		Scale:   scale,
		OffsetX: (float64(dstW) - float64(srcW)*scale) / 2,
		OffsetY: (float64(dstH) - float64(srcH)*scale) / 2,
	}
}
