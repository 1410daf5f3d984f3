package life

import (
	"lineage-life/internal/core"
	"lineage-life/internal/patterns"
)

// Reset clears the grid and seeds the first generation according to the
// configured layout. A zero seed falls back to Config.Seed.
func (g *Grid) Reset(seed int64) {
	g.Clear()
	if seed == 0 {
		seed = g.cfg.Seed
	}
	// Validate rejected unknown names, so a failure here leaves the grid empty.
	ps, _ := g.cfg.resolvePatterns()
	switch g.cfg.Layout {
	case LayoutScatter:
		g.seedScatter(core.NewRNG(seed), ps)
	case LayoutSoup:
		g.seedSoup(core.NewRNG(seed))
	default:
		g.seedTiled(ps)
	}
}

// seedTiled walks the grid in spacing-sized steps, placing the patterns in
// rotation. Each placement's tag is its index modulo the palette size.
func (g *Grid) seedTiled(ps []patterns.Pattern) {
	step := g.cfg.Spacing
	if step <= 0 || len(ps) == 0 {
		return
	}
	w, h := g.torus.W, g.torus.H
	idx := 0
	for y := 0; y < h-step; y += step {
		for x := 0; x < w-step; x += step {
			p := ps[idx%len(ps)]
			g.PlacePattern(p.Cells, x, y, Tag(idx%g.pal.Len()))
			idx++
		}
	}
}

// seedScatter drops Config.Scatter random patterns at random origins, each
// with its own tag. Patterns may overlap; later ones win.
func (g *Grid) seedScatter(rng *core.RNG, ps []patterns.Pattern) {
	if len(ps) == 0 {
		return
	}
	for i := 0; i < g.cfg.Scatter; i++ {
		p := ps[rng.IntN(len(ps))]
		x := rng.IntN(g.torus.W)
		y := rng.IntN(g.torus.H)
		g.PlacePattern(p.Cells, x, y, Tag(i))
	}
}

// seedSoup makes each cell alive with probability Config.Density and gives it
// a random tag among the palette entries.
func (g *Grid) seedSoup(rng *core.RNG) {
	n := g.pal.Len()
	for i := range g.cur {
		if !rng.Chance(g.cfg.Density) {
			continue
		}
		g.cur[i] = 1
		g.tags[i] = Tag(rng.IntN(n))
	}
}
