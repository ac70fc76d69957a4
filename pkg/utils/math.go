// pkg/utils/math.go
package utils

import "math"

// TwoPi is one full turn in radians.
const TwoPi = 2 * math.Pi

// WrapAngle maps an angle into [0, 2π) using a floored modulo, so negative
// angles wrap the same way positive ones do.
func WrapAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	if a >= TwoPi {
		return 0
	}
	return a
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
