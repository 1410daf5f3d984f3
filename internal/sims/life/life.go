// Package life implements Conway's Game of Life on a fixed torus where every
// live cell carries a lineage tag that newborn cells inherit from their
// neighbours.
package life

import (
	"image/color"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"lineage-life/internal/core"
	"lineage-life/internal/palette"
	"lineage-life/internal/patterns"
)

// Tag identifies the lineage a live cell's colour derives from. Placements use
// non-negative tags; the negative values below are reserved.
type Tag int32

const (
	// NoTag marks a dead cell.
	NoTag Tag = -1
	// Unclaimed marks a live cell whose birth had no tagged neighbour.
	Unclaimed Tag = -2
)

var _ core.Sim = (*Grid)(nil)

// Lineage reports whether t names a real lineage.
func (t Tag) Lineage() bool { return t >= 0 }

// Grid is the double-buffered simulation state. Alive and tag layers are
// swapped together so readers never observe a partial generation.
type Grid struct {
	cfg   Config
	torus core.Torus
	pal   palette.Palette

	cur     []uint8
	nxt     []uint8
	tags    []Tag
	nxtTags []Tag

	generation int
	bands      []tally
}

// tally accumulates per-band counters during Advance.
type tally struct {
	births int
	deaths int
}

// New returns an empty w×h grid using the default palette. It fails with
// core.ErrInvalidSize when either dimension is not positive.
func New(w, h int) (*Grid, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg, palette.Default())
}

// NewWithConfig returns an empty grid configured from cfg. Reset seeds it.
func NewWithConfig(cfg Config, pal palette.Palette) (*Grid, error) {
	torus, err := core.NewTorus(cfg.Width, cfg.Height)
	if err != nil {
		return nil, errors.Wrap(err, "life.New")
	}
	if pal.Len() == 0 {
		return nil, errors.Wrap(palette.ErrEmpty, "life.New")
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Workers > cfg.Height {
		cfg.Workers = cfg.Height
	}
	total := torus.Len()
	g := &Grid{
		cfg:     cfg,
		torus:   torus,
		pal:     pal,
		cur:     make([]uint8, total),
		nxt:     make([]uint8, total),
		tags:    make([]Tag, total),
		nxtTags: make([]Tag, total),
		bands:   make([]tally, cfg.Workers),
	}
	g.clear()
	return g, nil
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "life" }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return g.torus.Size() }

// Config returns the configuration the grid was built with.
func (g *Grid) Config() Config { return g.cfg }

// Cells exposes the current liveness layer (1 alive, 0 dead) in row-major order.
// Callers must treat it as read-only.
func (g *Grid) Cells() []uint8 { return g.cur }

// Generation returns how many times Advance has run since the last Reset.
func (g *Grid) Generation() int { return g.generation }

// Alive reports the liveness of (x, y). Coordinates wrap.
func (g *Grid) Alive(x, y int) bool {
	x, y = g.torus.Wrap(x, y)
	return g.cur[g.torus.Index(x, y)] == 1
}

// TagAt returns the lineage tag of (x, y). Coordinates wrap.
func (g *Grid) TagAt(x, y int) Tag {
	x, y = g.torus.Wrap(x, y)
	return g.tags[g.torus.Index(x, y)]
}

// ColorAt resolves the display colour of (x, y) for the current generation.
func (g *Grid) ColorAt(x, y int) color.RGBA {
	x, y = g.torus.Wrap(x, y)
	idx := g.torus.Index(x, y)
	if g.cur[idx] == 0 {
		return g.pal.Background()
	}
	return g.pal.Lineage(int(g.tags[idx]))
}

// Neighbors returns the number of live cells among the eight wrapped
// neighbours of (x, y).
func (g *Grid) Neighbors(x, y int) int {
	var nb [8]int
	x, y = g.torus.Wrap(x, y)
	g.torus.Neighbors(x, y, &nb)
	n := 0
	for _, j := range nb {
		n += int(g.cur[j])
	}
	return n
}

// PlacePattern marks every (originX+dx, originY+dy) alive with the given tag.
// Cells outside the grid are dropped without wrapping. Negative tags other
// than Unclaimed are stored as Unclaimed so the live/tag pairing holds.
func (g *Grid) PlacePattern(cells []patterns.Offset, originX, originY int, tag Tag) {
	if tag < 0 {
		tag = Unclaimed
	}
	for _, c := range cells {
		x, y := originX+c.DX, originY+c.DY
		if !g.torus.Contains(x, y) {
			continue
		}
		idx := g.torus.Index(x, y)
		g.cur[idx] = 1
		g.tags[idx] = tag
	}
}

// Clear kills every cell.
func (g *Grid) Clear() {
	g.clear()
	g.generation = 0
}

func (g *Grid) clear() {
	for i := range g.cur {
		g.cur[i] = 0
		g.tags[i] = NoTag
	}
	for i := range g.bands {
		g.bands[i] = tally{}
	}
}

// Step advances the simulation by one generation.
func (g *Grid) Step() { g.Advance() }

// Advance computes the next generation from a full snapshot of the current
// one and swaps it in.
func (g *Grid) Advance() {
	h := g.torus.H
	if len(g.bands) == 1 {
		g.advanceRows(0, h, &g.bands[0])
	} else {
		rowsPerBand := (h + len(g.bands) - 1) / len(g.bands)
		var eg errgroup.Group
		for i := range g.bands {
			startRow := i * rowsPerBand
			endRow := min(startRow+rowsPerBand, h)
			if startRow >= endRow {
				g.bands[i] = tally{}
				continue
			}
			eg.Go(func() error {
				g.advanceRows(startRow, endRow, &g.bands[i])
				return nil
			})
		}
		_ = eg.Wait()
	}

	g.cur, g.nxt = g.nxt, g.cur
	g.tags, g.nxtTags = g.nxtTags, g.tags
	g.generation++
}

// advanceRows reads only the current buffers and writes only rows
// [startRow, endRow) of the next buffers.
func (g *Grid) advanceRows(startRow, endRow int, t *tally) {
	*t = tally{}
	w := g.torus.W
	var nb [8]int
	for y := startRow; y < endRow; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			g.torus.Neighbors(x, y, &nb)
			neighbors := 0
			for _, j := range nb {
				neighbors += int(g.cur[j])
			}
			alive := g.cur[idx] == 1
			switch {
			case alive && (neighbors == 2 || neighbors == 3):
				g.nxt[idx] = 1
				g.nxtTags[idx] = g.tags[idx]
			case !alive && neighbors == 3:
				g.nxt[idx] = 1
				g.nxtTags[idx] = majorityTag(g.tags, &nb)
				t.births++
			default:
				g.nxt[idx] = 0
				g.nxtTags[idx] = NoTag
				if alive {
					t.deaths++
				}
			}
		}
	}
}
