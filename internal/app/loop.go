package app

import (
	"context"
	"time"
)

// Loop schedules frames for a Game until the game ends or the loop is
// stopped. Tests drive it synchronously with RunFrames; clock-less hosts use
// Run.
type Loop struct {
	game    *Game
	stopped bool
	paused  bool
}

func NewLoop(g *Game) *Loop {
	return &Loop{game: g}
}

func (l *Loop) Game() *Game { return l.game }

// Stop cancels all further frames.
func (l *Loop) Stop() { l.stopped = true }

func (l *Loop) Stopped() bool { return l.stopped }

func (l *Loop) Paused() bool { return l.paused }

// TogglePause freezes or resumes the simulation. A paused loop still
// reports frames to Run's callback so the host can keep drawing.
func (l *Loop) TogglePause() {
	if !l.stopped {
		l.paused = !l.paused
	}
}

// Tick runs one frame and reports whether a frame ran. The frame that ends
// the game counts; after it the loop is stopped.
func (l *Loop) Tick() bool {
	if l.stopped || l.game.IsOver() {
		l.stopped = true
		return false
	}
	if l.paused {
		return false
	}
	if !l.game.Step() {
		l.stopped = true
	}
	return true
}

// RunFrames runs up to n frames back to back and returns how many ran.
func (l *Loop) RunFrames(n int) int {
	ran := 0
	for ran < n && l.Tick() {
		ran++
	}
	return ran
}

// Run drives the game from a ticker. Key presses and frames are handled on
// the calling goroutine, so the game never sees them concurrently. onFrame
// is called after every tick, including the final one and ticks while
// paused. Run returns nil when the game ends and ctx.Err() when cancelled.
func (l *Loop) Run(ctx context.Context, interval time.Duration, keys <-chan Key, onFrame func(*Loop)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if l.stopped {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case k, ok := <-keys:
			if !ok {
				keys = nil
				continue
			}
			l.handleKey(k)
		case <-ticker.C:
			l.Tick()
			if onFrame != nil {
				onFrame(l)
			}
		}
	}
}

func (l *Loop) handleKey(k Key) {
	switch k {
	case KeyPause:
		l.TogglePause()
	case KeyLaunch:
		if !l.paused {
			l.game.HandleKey(k)
		}
	}
}
