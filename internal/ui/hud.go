// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"go-spin-sticks/internal/config"
	"go-spin-sticks/internal/entity"
	"go-spin-sticks/pkg/render"
)

// HUD выводит уровень, оставшиеся палки и счёт в левом верхнем углу.
type HUD struct {
	X, Y     float64 // baseline of the first line
	LineStep float64
	FontSize float64
	Color    color.Color
}

// NewHUD создаёт HUD с позициями из конфига.
func NewHUD(c color.Color) *HUD {
	return &HUD{
		X:        config.HUDMarginX,
		Y:        config.HUDFirstLine,
		LineStep: config.HUDLineStep,
		FontSize: config.HUDFontSize,
		Color:    c,
	}
}

// Lines returns the HUD text for w, top to bottom.
func (h *HUD) Lines(w *entity.World) []string {
	return []string{
		fmt.Sprintf("Level: %d", w.Level),
		fmt.Sprintf("Sticks Left: %d", w.Remaining),
		fmt.Sprintf("Score: %d", w.Score()),
	}
}

func (h *HUD) Draw(s render.Surface, w *entity.World) {
	for i, line := range h.Lines(w) {
		s.DrawText(line, h.X, h.Y+float64(i)*h.LineStep, h.FontSize, h.Color)
	}
}
