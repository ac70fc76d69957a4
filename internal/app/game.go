// internal/app/game.go
package app

import (
	"go-spin-sticks/internal/component"
	"go-spin-sticks/internal/config"
	"go-spin-sticks/internal/entity"
	"go-spin-sticks/internal/event"
	"go-spin-sticks/internal/system"
)

// Game drives one run: it owns the world, the systems that mutate it and the
// dispatcher that reports what happened. Step and HandleKey are the only
// entry points and must not be called concurrently.
type Game struct {
	World           *entity.World
	StickSystem     *system.StickSystem
	CollisionSystem *system.CollisionSystem
	EventDispatcher *event.Dispatcher
}

// NewGame creates a fresh world and puts the first stick on the platform.
// A nil dispatcher gets a private one.
func NewGame(tuning config.Tuning, dispatcher *event.Dispatcher) *Game {
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	world := entity.NewWorld(tuning)
	g := &Game{
		World:           world,
		StickSystem:     system.NewStickSystem(world),
		CollisionSystem: system.NewCollisionSystem(world),
		EventDispatcher: dispatcher,
	}
	g.spawn()
	return g
}

// Step advances the simulation by one frame. It returns false once the game
// is over; a finished game is never mutated again.
func (g *Game) Step() bool {
	w := g.World
	if w.Terminal {
		return false
	}

	// The disc never stops, with or without a stick in flight.
	w.DiscAngle += w.Tuning.RotationSpeed
	w.Frame++

	stick := g.StickSystem.Advance()
	if stick == nil {
		return true
	}
	angle, _ := stick.AngleAt(w.DiscAngle)
	g.EventDispatcher.Dispatch(event.Event{Type: event.StickAttached, Data: event.AttachData{
		Index:     len(w.Attached) - 1,
		Angle:     angle,
		Level:     w.Level,
		Remaining: w.Remaining,
	}})

	if i, j, hit := g.CollisionSystem.Check(); hit {
		w.Terminal = true
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{
			First:  i,
			Second: j,
			Level:  w.Level,
			Score:  w.Score(),
		}})
		return false
	}

	if w.Remaining == 0 {
		completed := w.Level
		w.Level++
		w.Remaining = w.Level
		w.ClearAttached()
		g.EventDispatcher.Dispatch(event.Event{Type: event.LevelCompleted, Data: event.LevelData{
			Completed: completed,
			Next:      w.Level,
		}})
	}
	g.spawn()
	return true
}

// HandleKey applies a key press. Only KeyLaunch does anything, and only while
// the current stick is still on the platform. It reports whether a stick was
// launched.
func (g *Game) HandleKey(key Key) bool {
	if key != KeyLaunch || !g.StickSystem.Launch() {
		return false
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.StickLaunched, Data: g.World.Level})
	return true
}

func (g *Game) IsOver() bool {
	return g.World.Terminal
}

func (g *Game) Score() int {
	return g.World.Score()
}

// State reports whether the run is still going.
func (g *Game) State() component.GameState {
	return g.World.State()
}

func (g *Game) spawn() {
	if st := g.StickSystem.Spawn(); st != nil {
		g.EventDispatcher.Dispatch(event.Event{Type: event.StickSpawned, Data: g.World.Remaining})
	}
}
