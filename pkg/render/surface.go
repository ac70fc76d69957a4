package render

import (
	"image/color"
	"math"
)

// Transform places local drawing coordinates on the surface: points are
// rotated by Angle around the local origin, then translated to (X, Y).
// This is the canvas translate-then-rotate composition.
type Transform struct {
	X, Y  float64
	Angle float64
}

// Identity draws in surface coordinates.
var Identity = Transform{}

// Apply maps a local point to surface coordinates.
func (t Transform) Apply(x, y float64) (float64, float64) {
	sin, cos := math.Sincos(t.Angle)
	return t.X + x*cos - y*sin, t.Y + x*sin + y*cos
}

// Invert maps a surface point back to local coordinates.
func (t Transform) Invert(x, y float64) (float64, float64) {
	sin, cos := math.Sincos(t.Angle)
	dx, dy := x-t.X, y-t.Y
	return dx*cos + dy*sin, -dx*sin + dy*cos
}

// Surface is the immediate-mode drawing contract the game renders against.
// Coordinates are logical pixels of the reference canvas; text is placed by
// its baseline.
type Surface interface {
	Clear(c color.Color)
	FillRect(t Transform, x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	DrawText(s string, x, y, size float64, c color.Color)
	// MeasureText returns the advance width of s at size.
	MeasureText(s string, size float64) float64
	Size() (w, h float64)
}
