package entity

import (
	"go-spin-sticks/internal/component"
	"go-spin-sticks/internal/config"
)

// World is the whole simulation state of one run. It is a plain value owned
// by whoever drives the frames; nothing in it is shared or global.
type World struct {
	Tuning    config.Tuning
	Disc      component.Disc
	DiscAngle float64
	Frame     uint64

	Attached []*component.Stick // insertion order, cleared on level completion
	Current  *component.Stick   // pending or flying, nil between sticks

	Level     int
	Remaining int
	Terminal  bool
}

func NewWorld(t config.Tuning) *World {
	return &World{
		Tuning: t,
		Disc: component.Disc{
			Center: component.Vec2{X: t.DiscCenter.X, Y: t.DiscCenter.Y},
			Radius: t.DiscRadius,
		},
		Attached:  make([]*component.Stick, 0, t.StartLevel),
		Level:     t.StartLevel,
		Remaining: t.StartLevel,
	}
}

// Score is derived from the level and never stored.
func (w *World) Score() int {
	return w.Level - 1
}

// ClearAttached drops every attached stick at the end of a level. The next
// level gets a fresh slice, so a slice taken earlier keeps its sticks.
func (w *World) ClearAttached() {
	w.Attached = make([]*component.Stick, 0, w.Level)
}

func (w *World) State() component.GameState {
	if w.Terminal {
		return component.GameOver
	}
	return component.Running
}
