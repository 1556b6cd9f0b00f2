//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"dredgesim/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the instrument panel to the right of the terrain view.
// Gauges are read-only; controls go through the keyboard bindings.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Update refreshes the cached instrument snapshot from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
}

// Draw paints the panel anchored to the right edge of the terrain view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := 18
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, 8, y, color.RGBA{R: 120, G: 180, B: 240, A: 255})
		y += 16
		for _, param := range group.Params {
			text.Draw(h.panel, param.Label, face, 14, y, color.White)
			text.Draw(h.panel, param.Value, face, h.width-8-7*len(param.Value), y, color.RGBA{R: 200, G: 220, B: 160, A: 255})
			y += 14
			if y > height-8 {
				break
			}
		}
		y += 8
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
