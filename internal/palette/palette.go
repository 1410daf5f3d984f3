// Package palette holds the immutable colour tables used to render lineages.
package palette

import (
	"image/color"

	"github.com/pkg/errors"
)

// ErrEmpty is returned when a palette is built without any lineage colours.
var ErrEmpty = errors.New("palette needs at least one colour")

// Palette maps lineage tags to display colours. The zero value is not usable;
// build one with New or Default.
type Palette struct {
	colors     []color.RGBA
	background color.RGBA
	unclaimed  color.RGBA
}

var (
	// Background is the colour of dead cells in the default palette.
	Background = color.RGBA{A: 255}
	// Unclaimed is the colour of live cells without a lineage in the default palette.
	Unclaimed = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

var defaultColors = []color.RGBA{
	{R: 230, G: 41, B: 55, A: 255},   // red
	{R: 255, G: 161, B: 0, A: 255},   // orange
	{R: 253, G: 249, B: 0, A: 255},   // yellow
	{R: 0, G: 228, B: 48, A: 255},    // green
	{R: 0, G: 121, B: 241, A: 255},   // blue
	{R: 200, G: 122, B: 255, A: 255}, // purple
	{R: 255, G: 109, B: 194, A: 255}, // pink
	{R: 0, G: 158, B: 47, A: 255},    // lime
	{R: 102, G: 191, B: 255, A: 255}, // sky blue
	{R: 135, G: 60, B: 190, A: 255},  // violet
	{R: 127, G: 106, B: 79, A: 255},  // brown
	{R: 255, G: 203, B: 0, A: 255},   // gold
	{R: 190, G: 33, B: 55, A: 255},   // maroon
}

// New copies colors into a Palette.
func New(colors []color.RGBA, background, unclaimed color.RGBA) (Palette, error) {
	if len(colors) == 0 {
		return Palette{}, ErrEmpty
	}
	return Palette{
		colors:     append([]color.RGBA(nil), colors...),
		background: background,
		unclaimed:  unclaimed,
	}, nil
}

// Default returns the thirteen-colour palette on a black background.
func Default() Palette {
	p, _ := New(defaultColors, Background, Unclaimed)
	return p
}

// Len returns the number of lineage colours.
func (p Palette) Len() int { return len(p.colors) }

// Lineage returns the colour for tag, wrapping modulo Len. Negative tags have
// no lineage and resolve to the unclaimed colour.
func (p Palette) Lineage(tag int) color.RGBA {
	if tag < 0 || len(p.colors) == 0 {
		return p.unclaimed
	}
	return p.colors[tag%len(p.colors)]
}

// Background returns the dead-cell colour.
func (p Palette) Background() color.RGBA { return p.background }

// Unclaimed returns the colour of live cells that carry no lineage.
func (p Palette) Unclaimed() color.RGBA { return p.unclaimed }

// Colors returns a copy of the lineage colours in order.
func (p Palette) Colors() []color.RGBA {
	return append([]color.RGBA(nil), p.colors...)
}
