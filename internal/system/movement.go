// internal/system/movement.go
package system

import (
	"math"

	"go-spin-sticks/internal/component"
	"go-spin-sticks/internal/entity"
	"go-spin-sticks/pkg/utils"
)

// StickSystem owns the stick lifecycle: spawn on the platform, launch on
// input, fly toward the disc and attach.
type StickSystem struct {
	world *entity.World
}

func NewStickSystem(world *entity.World) *StickSystem {
	return &StickSystem{world: world}
}

// Spawn places a pending stick on the platform. It returns nil when the game
// is over, a stick is already in play or the level has no sticks left.
func (s *StickSystem) Spawn() *component.Stick {
	w := s.world
	if w.Terminal || w.Current != nil || w.Remaining <= 0 {
		return nil
	}
	t := w.Tuning
	w.Current = component.NewStick(
		component.Vec2{X: t.SpawnPoint.X, Y: t.SpawnPoint.Y},
		t.StickLength,
		t.StickWidth,
	)
	return w.Current
}

// Launch sends the pending stick toward the disc.
func (s *StickSystem) Launch() bool {
	w := s.world
	if w.Terminal || w.Current == nil {
		return false
	}
	return w.Current.Launch()
}

// Advance moves the flying stick one frame straight up and attaches it once
// its tip is within capture range of the disc center. The tip is the stick's
// position point. It returns the stick if it attached this frame.
func (s *StickSystem) Advance() *component.Stick {
	w := s.world
	st := w.Current
	if w.Terminal || st == nil || !st.IsFlying() {
		return nil
	}

	st.Pos.Y -= w.Tuning.StickSpeed

	c := w.Disc.Center
	if utils.Distance(st.Pos.X, st.Pos.Y, c.X, c.Y) > w.Tuning.CaptureRadius() {
		return nil
	}

	rest := math.Atan2(c.Y-st.Pos.Y, c.X-st.Pos.X) + math.Pi/2
	st.Attach(w.DiscAngle, rest)
	w.Attached = append(w.Attached, st)
	w.Current = nil
	w.Remaining--
	return st
}
