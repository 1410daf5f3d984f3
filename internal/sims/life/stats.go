package life

import (
	"sort"
	"strconv"

	"lineage-life/internal/core"
)

// Stats summarises the current generation.
type Stats struct {
	Generation int
	Population int
	// Births and Deaths count transitions made by the most recent Advance.
	Births int
	Deaths int
}

// Stats returns counters for the current generation.
func (g *Grid) Stats() Stats {
	s := Stats{Generation: g.generation}
	for _, v := range g.cur {
		s.Population += int(v)
	}
	if g.generation == 0 {
		return s
	}
	for _, t := range g.bands {
		s.Births += t.births
		s.Deaths += t.deaths
	}
	return s
}

// LineageCount is the number of live cells carrying one tag.
type LineageCount struct {
	Tag   Tag
	Count int
}

// Lineages returns the live cell count per tag, largest first. Ties are
// ordered by tag. Unclaimed cells are reported under Unclaimed.
func (g *Grid) Lineages() []LineageCount {
	counts := map[Tag]int{}
	for i, v := range g.cur {
		if v == 1 {
			counts[g.tags[i]]++
		}
	}
	out := make([]LineageCount, 0, len(counts))
	for t, c := range counts {
		out = append(out, LineageCount{Tag: t, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}

// Legend returns up to limit of the largest lineages with their display
// colours. A non-positive limit returns every lineage.
func (g *Grid) Legend(limit int) []core.LegendEntry {
	lineages := g.Lineages()
	if limit > 0 && len(lineages) > limit {
		lineages = lineages[:limit]
	}
	out := make([]core.LegendEntry, len(lineages))
	for i, l := range lineages {
		label := "unclaimed"
		if l.Tag.Lineage() {
			label = "lineage " + strconv.Itoa(int(l.Tag))
		}
		out[i] = core.LegendEntry{Label: label, Color: g.pal.Lineage(int(l.Tag)), Count: l.Count}
	}
	return out
}
