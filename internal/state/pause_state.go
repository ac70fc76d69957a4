// internal/state/pause_state.go
package state

import (
	"go-spin-sticks/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает забег: диск не вращается, палки не летят
type PauseState struct {
	stateMachine  *StateMachine
	previousState *PlayState
}

func NewPauseState(sm *StateMachine, prevState *PlayState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() {
	for _, k := range s.previousState.env.Keys() {
		switch k {
		case app.KeyPause:
			s.stateMachine.SetState(s.previousState)
			return
		case app.KeyQuit:
			s.stateMachine.Quit()
			return
		}
	}
}

// Draw рисует замороженный кадр с надписью паузы
func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.env.drawFrame(screen, s.previousState.game.World, true)
}

func (s *PauseState) Exit() {}
