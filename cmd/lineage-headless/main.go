package main

import (
	"context"
	"flag"
	"image/png"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"lineage-life/internal/app"
	"lineage-life/internal/core"
	"lineage-life/internal/palette"
	"lineage-life/internal/render"
	"lineage-life/internal/sims/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.BindSim(flag.CommandLine)
	generations := flag.Int("generations", 200, "generations to run (0 runs until interrupted)")
	reportEvery := flag.Int("report", 20, "log stats every n generations (0 disables)")
	paced := flag.Bool("paced", false, "wait the configured interval between generations")
	pngPath := flag.String("png", "", "write the final generation to this PNG file")
	flag.Parse()

	simCfg, err := life.Load(cfg.ConfigFile, cfg.Overrides)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	grid, err := life.NewWithConfig(simCfg, palette.Default())
	if err != nil {
		log.Fatalf("grid: %v", err)
	}
	grid.Reset(cfg.Seed)
	logStats(grid)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := &app.Headless{
		Sim:         grid,
		Generations: *generations,
		ReportEvery: *reportEvery,
		Report:      func(int) { logStats(grid) },
	}
	if *paced {
		runner.Pacer = core.NewFixedStep(simCfg.Interval)
	}
	n, err := runner.Run(ctx)
	if err != nil {
		log.Printf("stopped after %d generations: %v", n, err)
	}
	if *reportEvery <= 0 || n%*reportEvery != 0 {
		logStats(grid)
	}

	if *pngPath != "" {
		if err := writePNG(*pngPath, grid); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *pngPath)
	}
}

func logStats(grid *life.Grid) {
	s := grid.Stats()
	log.Printf("gen=%d population=%d births=%d deaths=%d lineages=%d",
		s.Generation, s.Population, s.Births, s.Deaths, len(grid.Lineages()))
}

func writePNG(path string, grid *life.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[writePNG] failed to create file: %s", path)
	}
	if err := png.Encode(f, render.Snapshot(grid.Size(), grid)); err != nil {
		f.Close()
		return errors.Wrapf(err, "[writePNG] failed to encode frame: %s", path)
	}
	return errors.Wrapf(f.Close(), "[writePNG] failed to close file: %s", path)
}
