// internal/state/menu_state.go
package state

import (
	"go-spin-sticks/internal/app"
	"go-spin-sticks/internal/config"
	"go-spin-sticks/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// MenuState - титульный экран, пробел начинает игру
type MenuState struct {
	sm    *StateMachine
	env   *Env
	title *ui.Label
	hint  *ui.Label
}

func NewMenuState(sm *StateMachine, env *Env) *MenuState {
	return &MenuState{
		sm:  sm,
		env: env,
		title: &ui.Label{
			Text:     config.WindowTitle,
			FontSize: config.TitleFontSize,
			Color:    config.TextColor,
		},
		hint: &ui.Label{
			Text:     "Press Space to start",
			Y:        config.FinalScoreDY,
			FontSize: config.HUDFontSize,
			Color:    config.PausedTextColor,
		},
	}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update() {
	for _, k := range m.env.Keys() {
		switch k {
		case app.KeyLaunch:
			m.sm.SetState(NewPlayState(m.sm, m.env))
			return
		case app.KeyQuit:
			m.sm.Quit()
			return
		}
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	s := m.env.surface(screen)
	s.Clear(config.BackgroundColor)
	m.title.Draw(s)
	m.hint.Draw(s)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
