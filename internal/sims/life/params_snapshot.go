package life

import (
	"strings"

	"lineage-life/internal/core"
)

// Parameters describes the grid configuration and live counters for the HUD.
func (g *Grid) Parameters() core.ParameterSnapshot {
	s := g.Stats()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", g.cfg.Width),
				core.IntParam("h", "Height", g.cfg.Height),
				core.Int64Param("seed", "Seed", g.cfg.Seed),
				core.IntParam("workers", "Workers", g.cfg.Workers),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				core.StringParam("layout", "Layout", g.cfg.Layout),
				core.StringParam("patterns", "Patterns", strings.Join(g.cfg.Patterns, ",")),
				core.IntParam("spacing", "Spacing", g.cfg.Spacing),
				core.FloatParam("density", "Density", g.cfg.Density),
			},
		},
		{
			Name: "Generation",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", s.Generation),
				core.IntParam("population", "Population", s.Population),
				core.IntParam("births", "Births", s.Births),
				core.IntParam("deaths", "Deaths", s.Deaths),
				core.IntParam("lineages", "Lineages", len(g.Lineages())),
			},
		},
	}}
}
