//go:build !ebiten

package ui

import "dredgesim/internal/core"

// HUD is a placeholder that satisfies the API expected by the GUI build.
type HUD struct{}

// NewHUD returns an inert HUD in the headless build.
func NewHUD(core.Sim, int) *HUD { return &HUD{} }

// Update is a no-op placeholder.
func (h *HUD) Update() {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (h *HUD) Draw(any, int, int) {}
