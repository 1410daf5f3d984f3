//go:build ebiten

package app

import (
	"image/color"

	"lineage-life/internal/core"
	"lineage-life/internal/render"
	"lineage-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a core simulation to the ebiten.Game interface. It advances the
// sim once per interval and redraws the full grid every frame.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep
}

// New constructs a Game for the provided simulation. The sim must already be
// seeded.
func New(sim core.Sim, pacer *core.FixedStep, background color.Color, showHUD bool) *Game {
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(sim.Size(), background),
		pacer:   pacer,
	}
	if showHUD {
		g.hud = ui.NewHUD(sim, hudWidth)
		g.hud.Update()
	}
	return g
}

// Update handles the quit keys and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.pacer.ShouldStep() {
		g.sim.Step()
		g.hud.Update()
	}
	return nil
}

// Draw renders the current generation letterboxed into the window.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim)
	g.hud.Draw(screen)
}

// Layout uses the window size as the logical screen so the grid can be
// scaled to any viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
