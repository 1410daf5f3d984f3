package core

import "image/color"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Colorizer resolves the display color of a single cell.
type Colorizer interface {
	ColorAt(x, y int) color.RGBA
}

// Sim defines the contract the presentation layer drives once per generation.
type Sim interface {
	Colorizer

	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}
