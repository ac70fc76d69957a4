package component

// GameState is the coarse state of a run. A level transition completes
// inside a single frame and has no state of its own.
type GameState int

const (
	Running GameState = iota
	GameOver
)

func (s GameState) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game over"
	}
	return "unknown"
}
