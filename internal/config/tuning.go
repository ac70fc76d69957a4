package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Point is a position in logical screen pixels.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Tuning holds every number the simulation depends on.
//
// A YAML file only needs the fields it overrides; everything else keeps
// the value from DefaultTuning.
type Tuning struct {
	RotationSpeed      float64 `yaml:"rotationSpeed"`
	StickSpeed         float64 `yaml:"stickSpeed"`
	CaptureTolerance   float64 `yaml:"captureTolerance"`
	CollisionTolerance float64 `yaml:"collisionTolerance"`
	DiscRadius         float64 `yaml:"discRadius"`
	StickLength        float64 `yaml:"stickLength"`
	StickWidth         float64 `yaml:"stickWidth"`
	DiscCenter         Point   `yaml:"discCenter"`
	SpawnPoint         Point   `yaml:"spawnPoint"`
	StartLevel         int     `yaml:"startLevel"`
}

// DefaultTuning returns the reference geometry: an 800x600 canvas with the
// disc at its midpoint and the platform centered near the bottom edge.
func DefaultTuning() Tuning {
	return Tuning{
		RotationSpeed:      RotationSpeed,
		StickSpeed:         StickSpeed,
		CaptureTolerance:   CaptureTolerance,
		CollisionTolerance: CollisionTolerance,
		DiscRadius:         DiscRadius,
		StickLength:        StickLength,
		StickWidth:         StickWidth,
		DiscCenter:         Point{X: ScreenWidth / 2, Y: ScreenHeight / 2},
		SpawnPoint:         Point{X: ScreenWidth / 2, Y: ScreenHeight - SpawnOffsetY},
		StartLevel:         StartLevel,
	}
}

// CaptureRadius is the distance from the disc center at which a flying
// stick attaches.
func (t Tuning) CaptureRadius() float64 {
	return t.DiscRadius + t.CaptureTolerance
}

// LoadTuning reads a YAML tuning file on top of DefaultTuning.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes YAML tuning data on top of DefaultTuning and validates
// the result.
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// ErrUnreachableDisc is returned when a stick launched from the spawn point
// can never come within capture range of the disc.
var ErrUnreachableDisc = errors.New("spawn point cannot reach the disc")

// Validate checks that the values describe a playable geometry.
//
// Sticks travel straight up from the spawn point, so the spawn point must lie
// below the disc center and horizontally within the capture radius, and one
// frame of travel must not be able to skip over the capture window.
func (t Tuning) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"rotationSpeed", t.RotationSpeed},
		{"stickSpeed", t.StickSpeed},
		{"captureTolerance", t.CaptureTolerance},
		{"collisionTolerance", t.CollisionTolerance},
		{"discRadius", t.DiscRadius},
		{"stickLength", t.StickLength},
		{"stickWidth", t.StickWidth},
		{"discCenter.x", t.DiscCenter.X},
		{"discCenter.y", t.DiscCenter.Y},
		{"spawnPoint.x", t.SpawnPoint.X},
		{"spawnPoint.y", t.SpawnPoint.Y},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s must be a finite number, got %v", f.name, f.v)
		}
	}
	if t.RotationSpeed <= 0 {
		return fmt.Errorf("rotationSpeed must be positive, got %v", t.RotationSpeed)
	}
	if t.StickSpeed <= 0 {
		return fmt.Errorf("stickSpeed must be positive, got %v", t.StickSpeed)
	}
	if t.CaptureTolerance < 0 {
		return fmt.Errorf("captureTolerance must not be negative, got %v", t.CaptureTolerance)
	}
	if t.CollisionTolerance < 0 || t.CollisionTolerance >= math.Pi {
		return fmt.Errorf("collisionTolerance must be in [0, pi), got %v", t.CollisionTolerance)
	}
	if t.DiscRadius <= 0 {
		return fmt.Errorf("discRadius must be positive, got %v", t.DiscRadius)
	}
	if t.StickLength <= 0 || t.StickWidth <= 0 {
		return fmt.Errorf("stick size must be positive, got %vx%v", t.StickWidth, t.StickLength)
	}
	if t.StartLevel < 1 {
		return fmt.Errorf("startLevel must be at least 1, got %d", t.StartLevel)
	}

	r := t.CaptureRadius()
	dx := math.Abs(t.SpawnPoint.X - t.DiscCenter.X)
	dy := t.SpawnPoint.Y - t.DiscCenter.Y
	if dy <= 0 || dx > r || math.Hypot(dx, dy) <= r {
		return fmt.Errorf("%w: spawn (%.1f, %.1f), disc (%.1f, %.1f)", ErrUnreachableDisc,
			t.SpawnPoint.X, t.SpawnPoint.Y, t.DiscCenter.X, t.DiscCenter.Y)
	}
	chord := 2 * math.Sqrt(r*r-dx*dx)
	if t.StickSpeed > chord {
		return fmt.Errorf("%w: stickSpeed %.1f skips the %.1f px capture window", ErrUnreachableDisc, t.StickSpeed, chord)
	}
	return nil
}
