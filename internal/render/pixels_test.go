package render

import (
	"image/color"
	"testing"

	"lineage-life/internal/core"
)

type checker struct{}

func (checker) ColorAt(x, y int) color.RGBA {
	if (x+y)%2 == 0 {
		return color.RGBA{R: 255, A: 255}
	}
	return color.RGBA{B: 255, A: 255}
}

func TestFillRGBA(t *testing.T) {
	size := core.Size{W: 3, H: 2}
	buf := make([]byte, 4*size.W*size.H)
	FillRGBA(buf, size, checker{})

	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			base := (y*size.W + x) * 4
			want := checker{}.ColorAt(x, y)
			got := color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
			if got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestSnapshot(t *testing.T) {
	img := Snapshot(core.Size{W: 4, H: 4}, checker{})
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Fatalf("bounds = %v", b)
	}
	if img.RGBAAt(1, 0) != (color.RGBA{B: 255, A: 255}) {
		t.Fatalf("pixel (1,0) = %v", img.RGBAAt(1, 0))
	}
}

func TestFitLetterbox(t *testing.T) {
	cases := []struct {
		name                   string
		srcW, srcH, dstW, dstH int
		want                   Viewport
	}{
		{"square into square", 100, 100, 800, 800, Viewport{Scale: 8}},
		{"square into wide", 100, 100, 1000, 800, Viewport{Scale: 8, OffsetX: 100}},
		{"square into tall", 100, 100, 800, 1000, Viewport{Scale: 8, OffsetY: 100}},
		{"wide into square", 200, 100, 800, 800, Viewport{Scale: 4, OffsetY: 200}},
		{"shrink", 100, 100, 50, 60, Viewport{Scale: 0.5, OffsetY: 5}},
		{"degenerate", 0, 10, 100, 100, Viewport{Scale: 1}},
	}
	for _, tc := range cases {
		if got := Fit(tc.srcW, tc.srcH, tc.dstW, tc.dstH); got != tc.want {
			t.Errorf("%s: Fit = %+v, want %+v", tc.name, got, tc.want)
		}
	}
}
