//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lineage-life/internal/app"
	"lineage-life/internal/core"
	"lineage-life/internal/palette"
	"lineage-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg, err := life.Load(cfg.ConfigFile, cfg.Overrides)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	pal := palette.Default()
	grid, err := life.NewWithConfig(simCfg, pal)
	if err != nil {
		log.Fatalf("grid: %v", err)
	}
	grid.Reset(cfg.Seed)
	log.Printf("seeded %dx%d %s layout, population %d", simCfg.Width, simCfg.Height, simCfg.Layout, grid.Stats().Population)

	game := app.New(grid, core.NewFixedStep(simCfg.Interval), pal.Background(), cfg.HUD)

	ebiten.SetWindowTitle("lineage-life — " + grid.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
