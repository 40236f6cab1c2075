//go:build !ebiten

package ui

import "conway/pkg/core"

// HUD has nothing to draw in headless builds; a nil *HUD is valid.
type HUD struct{}

func NewHUD(core.Sim, int) *HUD { return nil }

func (h *HUD) Update(int, bool) Action { return ActionNone }

func (h *HUD) Draw(any, int, int) {}
