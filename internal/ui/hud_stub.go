//go:build !ebiten

package ui

import "lifegrid/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}

// Width is zero in the headless build.
func (h *HUD) Width() int { return 0 }

// MinHeight is zero in the headless build.
func (h *HUD) MinHeight() int { return 0 }
