// internal/state/game_over_state.go
package state

import (
	"log"

	"go-spin-sticks/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ State = (*GameOverState)(nil)

// GameOverState держит последний кадр проигранного забега под затемнением
type GameOverState struct {
	sm   *StateMachine
	env  *Env
	game *app.Game
}

func NewGameOverState(sm *StateMachine, env *Env, g *app.Game) *GameOverState {
	return &GameOverState{sm: sm, env: env, game: g}
}

func (s *GameOverState) Enter() {
	log.Printf("[Game] run finished, score %d", s.game.Score())
}

// Update waits for a restart. The finished game is never stepped again;
// a restart builds a new one.
func (s *GameOverState) Update() {
	for _, k := range s.env.Keys() {
		switch k {
		case app.KeyRestart:
			s.sm.SetState(NewPlayState(s.sm, s.env))
			return
		case app.KeyQuit:
			s.sm.Quit()
			return
		}
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.env.drawFrame(screen, s.game.World, false)
}

func (s *GameOverState) Exit() {}
