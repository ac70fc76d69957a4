// internal/state/play_state.go
package state

import (
	"go-spin-sticks/internal/app"
	"go-spin-sticks/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
)

// Убеждаемся, что PlayState соответствует интерфейсу State
var _ State = (*PlayState)(nil)

// PlayState - состояние игры: один забег от первой палки до столкновения
type PlayState struct {
	sm     *StateMachine
	env    *Env
	game   *app.Game
	logger *app.EventLogger
}

// NewPlayState starts a fresh run.
func NewPlayState(sm *StateMachine, env *Env) *PlayState {
	return &PlayState{
		sm:     sm,
		env:    env,
		game:   app.NewGame(env.Tuning, event.NewDispatcher()),
		logger: app.NewEventLogger("Game"),
	}
}

func (s *PlayState) Game() *app.Game { return s.game }

func (s *PlayState) Enter() {
	s.logger.Attach(s.game.EventDispatcher)
}

// Update handles this tick's keys and then advances one frame.
func (s *PlayState) Update() {
	for _, k := range s.env.Keys() {
		switch k {
		case app.KeyPause:
			s.sm.SetState(NewPauseState(s.sm, s))
			return
		case app.KeyQuit:
			s.sm.Quit()
			return
		default:
			s.game.HandleKey(k)
		}
	}

	if !s.game.Step() {
		s.sm.SetState(NewGameOverState(s.sm, s.env, s.game))
	}
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.env.drawFrame(screen, s.game.World, false)
}

// Exit отписывает логгер, чтобы диспетчер не держал слушателей старого забега
func (s *PlayState) Exit() {
	s.logger.Detach(s.game.EventDispatcher)
}
