// internal/ui/view.go
package ui

import (
	"go-spin-sticks/internal/config"
	"go-spin-sticks/internal/entity"
	"go-spin-sticks/internal/system"
	"go-spin-sticks/pkg/render"
)

// View draws a complete frame: scene, HUD and whichever overlay applies.
// Every host renders through it.
type View struct {
	Scene    *system.RenderSystem
	HUD      *HUD
	GameOver *GameOverOverlay
	Paused   *Label
}

// NewView builds the standard view for a palette.
func NewView(p render.Palette) *View {
	return &View{
		Scene:    system.NewRenderSystem(p),
		HUD:      NewHUD(p.Text),
		GameOver: NewGameOverOverlay(p.Overlay, p.OverlayText),
		Paused: &Label{
			Text:     "PAUSED",
			Y:        -config.FinalScoreDY,
			FontSize: config.BannerFontSize,
			Color:    config.PausedTextColor,
		},
	}
}

// Draw renders w. The game-over overlay replaces the pause label once the
// run has ended.
func (v *View) Draw(s render.Surface, w *entity.World, paused bool) {
	v.Scene.Draw(s, w)
	v.HUD.Draw(s, w)
	switch {
	case w.Terminal:
		v.GameOver.Draw(s, w.Score())
	case paused:
		v.Paused.Draw(s)
	}
}
