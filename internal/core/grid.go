package core

import "github.com/pkg/errors"

// ErrInvalidSize is returned when a grid is requested with a non-positive dimension.
var ErrInvalidSize = errors.New("grid dimensions must be positive")

// MooreOffsets lists the eight neighbour offsets in row-major order. Neighbour
// scans that need a stable enumeration order rely on it.
var MooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Torus addresses a fixed W×H grid stored in row-major order whose edges wrap
// around to the opposite side.
type Torus struct {
	W, H int
}

// NewTorus validates the dimensions and returns the addressing helper.
func NewTorus(w, h int) (Torus, error) {
	if w <= 0 || h <= 0 {
		return Torus{}, errors.Wrapf(ErrInvalidSize, "got %dx%d", w, h)
	}
	return Torus{W: w, H: h}, nil
}

// Len returns the number of cells.
func (t Torus) Len() int { return t.W * t.H }

// Size returns the dimensions.
func (t Torus) Size() Size { return Size{W: t.W, H: t.H} }

// Index returns the linear slice index for coordinates (x, y).
func (t Torus) Index(x, y int) int { return y*t.W + x }

// Contains reports whether (x, y) lies inside [0,W) × [0,H) without wrapping.
func (t Torus) Contains(x, y int) bool {
	return x >= 0 && x < t.W && y >= 0 && y < t.H
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (t Torus) Wrap(x, y int) (int, int) {
	x = (x%t.W + t.W) % t.W
	y = (y%t.H + t.H) % t.H
	return x, y
}

// Neighbors writes the linear indices of the eight wrapped neighbours of
// (x, y) into dst, in MooreOffsets order. On grids narrower than three cells
// the same physical cell can appear more than once.
func (t Torus) Neighbors(x, y int, dst *[8]int) {
	for i, off := range MooreOffsets {
		nx, ny := t.Wrap(x+off[0], y+off[1])
		dst[i] = t.Index(nx, ny)
	}
}
