//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"lineage-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 8
	headerBaseline = 12
	lineHeight     = 16
	groupGap       = 6
	swatchSize     = 10
	legendLimit    = 8
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 200}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor  = color.RGBA{R: 150, G: 150, B: 170, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	valueColor  = color.RGBA{R: 240, G: 240, B: 250, A: 255}
	mutedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	borderColor = color.RGBA{R: 60, G: 60, B: 70, A: 255}
)

// HUD draws a read-only panel with the sim's parameters, counters and the
// largest lineages in the top-left corner of the screen.
type HUD struct {
	sim   core.Sim
	width int
	title string

	panel    *ebiten.Image
	pixel    *ebiten.Image
	snapshot core.ParameterSnapshot
	legend   []core.LegendEntry
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update refreshes the cached snapshot from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	if provider, ok := h.sim.(core.LegendProvider); ok {
		h.legend = provider.Legend(legendLimit)
	}
}

// Draw paints the panel over screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	height := h.contentHeight()
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)
	h.fillRect(0, height-1, h.width, 1, borderColor)
	h.drawContents()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(panelPadding, panelPadding)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) contentHeight() int {
	rows := 1
	for _, g := range h.snapshot.Groups {
		rows += 1 + len(g.Params)
	}
	if len(h.legend) > 0 {
		rows += 1 + len(h.legend)
	}
	return panelPadding*2 + rows*lineHeight + len(h.snapshot.Groups)*groupGap
}

func (h *HUD) drawContents() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)

	for _, group := range h.snapshot.Groups {
		y += lineHeight + groupGap
		text.Draw(h.panel, group.Name, face, panelPadding, y, groupColor)
		for _, p := range group.Params {
			y += lineHeight
			text.Draw(h.panel, p.Label, face, panelPadding*2, y, labelColor)
			value := truncate(p.Value, 18)
			bounds := text.BoundString(face, value)
			text.Draw(h.panel, value, face, h.width-panelPadding-bounds.Dx(), y, valueColor)
		}
	}

	if len(h.legend) == 0 {
		return
	}
	y += lineHeight
	text.Draw(h.panel, "Largest lineages", face, panelPadding, y, groupColor)
	for _, entry := range h.legend {
		y += lineHeight
		h.fillRect(panelPadding*2, y-swatchSize, swatchSize, swatchSize, entry.Color)
		text.Draw(h.panel, entry.Label, face, panelPadding*3+swatchSize, y, labelColor)
		count := strconv.Itoa(entry.Count)
		bounds := text.BoundString(face, count)
		text.Draw(h.panel, count, face, h.width-panelPadding-bounds.Dx(), y, mutedColor)
	}
}

func (h *HUD) fillRect(x, y, w, hgt int, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(hgt))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.pixel, op)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "~"
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Status"
	}
	size := sim.Size()
	return fmt.Sprintf("%s %dx%d", strings.ToUpper(sim.Name()), size.W, size.H)
}
