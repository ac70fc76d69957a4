package system

import (
	"math"

	"go-spin-sticks/internal/component"
	"go-spin-sticks/internal/entity"
	"go-spin-sticks/pkg/utils"
)

// CollisionSystem checks attached sticks for angular overlap. It runs once
// per attachment, not every frame: sticks co-rotate rigidly, so their
// relative angles never change after they settle.
type CollisionSystem struct {
	world *entity.World
}

func NewCollisionSystem(world *entity.World) *CollisionSystem {
	return &CollisionSystem{world: world}
}

// Check returns the first overlapping pair of attached sticks.
func (s *CollisionSystem) Check() (i, j int, hit bool) {
	w := s.world
	return FindCollision(w.Attached, w.DiscAngle, w.Tuning.CollisionTolerance)
}

// CheckCollision reports whether any two attached sticks overlap.
func CheckCollision(sticks []*component.Stick, discAngle, tolerance float64) bool {
	_, _, hit := FindCollision(sticks, discAngle, tolerance)
	return hit
}

// FindCollision scans every unordered pair in insertion order and stops at
// the first overlap. Sticks that are not attached are skipped.
func FindCollision(sticks []*component.Stick, discAngle, tolerance float64) (i, j int, hit bool) {
	for i = 0; i < len(sticks); i++ {
		a1, ok := sticks[i].AngleAt(discAngle)
		if !ok {
			continue
		}
		for j = i + 1; j < len(sticks); j++ {
			a2, ok := sticks[j].AngleAt(discAngle)
			if !ok {
				continue
			}
			if Overlaps(a1, a2, tolerance) {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}

// Overlaps compares two absolute angles after wrapping them into [0, 2π).
// Differences near 2π are overlaps across the 0/2π seam.
func Overlaps(a1, a2, tolerance float64) bool {
	d := math.Abs(utils.WrapAngle(a1) - utils.WrapAngle(a2))
	return d < tolerance || d > utils.TwoPi-tolerance
}
