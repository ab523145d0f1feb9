//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"biodefense/internal/game"
	"biodefense/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the board view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
}

// NewHUD constructs a HUD with the provided panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Draw paints the status panel anchored to the right edge of the board view.
func (h *HUD) Draw(screen *ebiten.Image, g *game.GameState, selected game.ToolID, offsetX, scale int) {
	if h == nil || h.width <= 0 || g == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := g.Board().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	bright := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dim := color.RGBA{R: 160, G: 160, B: 170, A: 255}

	spec := g.Spec()
	y := panelPadding + headerBaseline
	title := spec.Title
	if title == "" {
		title = fmt.Sprintf("World %d", spec.World)
	}
	text.Draw(h.panel, title, face, panelPadding, y, bright)

	y += lineSpacing
	text.Draw(h.panel, fmt.Sprintf("Turn %d / %d", g.Turn()+1, spec.TurnLimit), face, panelPadding, y, bright)

	y += lineSpacing
	text.Draw(h.panel, fmt.Sprintf("Infection %4.1f%%", g.Board().InfectionFraction()*100), face, panelPadding, y, bright)
	y += lineSpacing
	text.Draw(h.panel, fmt.Sprintf("Peak      %4.1f%%", g.PeakInfection()*100), face, panelPadding, y, dim)

	y += lineSpacing
	text.Draw(h.panel, objectiveLine(spec.Objective), face, panelPadding, y, dim)
	if spec.Hint != "" {
		y += lineSpacing
		text.Draw(h.panel, spec.Hint, face, panelPadding, y, dim)
	}

	y += lineSpacing + lineSpacing/2
	text.Draw(h.panel, "Tools", face, panelPadding, y, bright)
	inv := g.Inventory()
	for tool := game.ToolID(0); tool < game.ToolCount; tool++ {
		if inv[tool] <= 0 && tool != selected {
			continue
		}
		y += lineSpacing
		marker := "  "
		col := dim
		if tool == selected {
			marker = "> "
			col = bright
		}
		if v, ok := tool.CounterVariant(); ok {
			col = tintFor(col, render.MedicineColor(v))
		}
		text.Draw(h.panel, fmt.Sprintf("%s%-13s x%d", marker, tool, inv[tool]), face, panelPadding, y, col)
	}

	if g.Result() != game.Playing {
		y += lineSpacing * 2
		banner := "OUTBREAK CONTAINED"
		col := color.RGBA{R: 110, G: 230, B: 130, A: 255}
		if g.Result() == game.Lose {
			banner = "INFECTION WON"
			col = color.RGBA{R: 240, G: 90, B: 80, A: 255}
		}
		text.Draw(h.panel, banner, face, panelPadding, y, col)
		y += lineSpacing
		text.Draw(h.panel, "R restart  Q quit", face, panelPadding, y, dim)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func objectiveLine(o game.Objective) string {
	switch o.Kind {
	case game.ClearAll:
		return "Goal: wipe out every pathogen"
	case game.Survive:
		return "Goal: hold out to the turn limit"
	case game.Contain:
		return fmt.Sprintf("Goal: stay under %.0f%%", o.Threshold*100)
	}
	return "Goal: unknown"
}

// tintFor nudges the label color toward the medicine color so tool rows echo
// their board tiles without losing legibility.
func tintFor(base, tint color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((int(base.R) + int(tint.R)) / 2),
		G: uint8((int(base.G) + int(tint.G)) / 2),
		B: uint8((int(base.B) + int(tint.B)) / 2),
		A: 255,
	}
}

const (
	panelPadding   = 12
	headerBaseline = 18
	lineSpacing    = 18
)
