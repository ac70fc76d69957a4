// component/movement.go
package component

// Vec2 is a position in logical screen pixels.
type Vec2 struct {
	X, Y float64
}

// Disc is the rotating hub sticks attach to.
type Disc struct {
	Center Vec2
	Radius float64
}
