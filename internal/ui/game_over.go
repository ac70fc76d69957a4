// internal/ui/game_over.go
package ui

import (
	"fmt"
	"image/color"

	"go-spin-sticks/internal/config"
	"go-spin-sticks/pkg/render"
)

// GameOverOverlay затемняет кадр и выводит итоговый счёт.
type GameOverOverlay struct {
	Fill      color.Color
	TextColor color.Color
}

func NewGameOverOverlay(fill, text color.Color) *GameOverOverlay {
	return &GameOverOverlay{Fill: fill, TextColor: text}
}

// Draw covers the whole surface; the banner and the score are placed
// relative to its center.
func (o *GameOverOverlay) Draw(s render.Surface, score int) {
	w, h := s.Size()
	s.FillRect(render.Identity, 0, 0, w, h, o.Fill)

	cx, cy := w/2, h/2
	s.DrawText("Game Over!", cx-config.BannerOffsetX, cy, config.BannerFontSize, o.TextColor)
	s.DrawText(fmt.Sprintf("Final Score: %d", score), cx-config.FinalScoreDX, cy+config.FinalScoreDY, config.HUDFontSize, o.TextColor)
}
