package app

import (
	"math"
	"testing"

	"go-spin-sticks/internal/component"
	"go-spin-sticks/internal/config"
	"go-spin-sticks/internal/event"
)

// framesToAttach is how many frames a stick needs from the default platform:
// 550 -> 320 in 10px steps.
const framesToAttach = 23

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestGame(t *testing.T, mutate func(*config.Tuning)) (*Game, *eventLog) {
	t.Helper()
	tn := config.DefaultTuning()
	if mutate != nil {
		mutate(&tn)
	}
	d := event.NewDispatcher()
	log := &eventLog{}
	d.SubscribeAll(log)
	return NewGame(tn, d), log
}

// launchAndFly launches the current stick and steps until it attaches or
// the frame budget runs out. It returns the number of frames stepped.
func launchAndFly(t *testing.T, g *Game) int {
	t.Helper()
	if !g.HandleKey(KeyLaunch) {
		t.Fatalf("launch failed: current=%v", g.World.Current)
	}
	attached := len(g.World.Attached)
	level := g.World.Level
	for i := 1; i <= 100; i++ {
		g.Step()
		if g.World.Terminal || g.World.Level != level || len(g.World.Attached) != attached {
			return i
		}
	}
	t.Fatal("stick never attached")
	return 0
}

func TestNewGameSpawnsFirstStick(t *testing.T) {
	g, log := newTestGame(t, nil)

	if g.World.Current == nil || !g.World.Current.IsPending() {
		t.Fatal("a new game should have a pending stick on the platform")
	}
	if g.World.Level != 1 || g.World.Remaining != 1 || g.Score() != 0 {
		t.Errorf("start: level=%d remaining=%d score=%d", g.World.Level, g.World.Remaining, g.Score())
	}
	if log.count(event.StickSpawned) != 1 {
		t.Errorf("StickSpawned events: got %d, want 1", log.count(event.StickSpawned))
	}
	if g.State() != component.Running {
		t.Errorf("State: got %v, want running", g.State())
	}
}

func TestNewGameWithoutDispatcher(t *testing.T) {
	g := NewGame(config.DefaultTuning(), nil)
	if g.EventDispatcher == nil {
		t.Fatal("NewGame should create a dispatcher")
	}
	g.HandleKey(KeyLaunch)
	g.Step()
}

func TestDiscAngleAdvancesEveryFrame(t *testing.T) {
	g, _ := newTestGame(t, nil)
	step := g.World.Tuning.RotationSpeed

	prev := g.World.DiscAngle
	for i := 0; i < 50; i++ {
		if i == 10 {
			g.HandleKey(KeyLaunch)
		}
		if !g.Step() {
			t.Fatalf("frame %d: game ended unexpectedly", i)
		}
		got := g.World.DiscAngle
		if got <= prev || math.Abs(got-prev-step) > 1e-12 {
			t.Fatalf("frame %d: angle %v -> %v, want +%v", i, prev, got, step)
		}
		prev = got
	}
	if g.World.Frame != 50 {
		t.Errorf("Frame: got %d, want 50", g.World.Frame)
	}
}

func TestFirstLevelScenario(t *testing.T) {
	g, log := newTestGame(t, nil)

	frames := launchAndFly(t, g)
	if frames != framesToAttach {
		t.Errorf("frames to attach: got %d, want %d", frames, framesToAttach)
	}

	w := g.World
	if w.Level != 2 || w.Remaining != 2 || g.Score() != 1 {
		t.Errorf("after level 1: level=%d remaining=%d score=%d, want 2/2/1", w.Level, w.Remaining, g.Score())
	}
	if len(w.Attached) != 0 {
		t.Errorf("Attached should be cleared, got %d", len(w.Attached))
	}
	if w.Current == nil || !w.Current.IsPending() {
		t.Error("next stick should be waiting on the platform")
	}
	if w.Terminal {
		t.Error("a single stick cannot end the game")
	}
	if log.count(event.StickAttached) != 1 || log.count(event.LevelCompleted) != 1 {
		t.Errorf("events: attached=%d level=%d", log.count(event.StickAttached), log.count(event.LevelCompleted))
	}
	if log.count(event.StickSpawned) != 2 {
		t.Errorf("StickSpawned: got %d, want 2", log.count(event.StickSpawned))
	}
}

func TestLevelCompletion(t *testing.T) {
	for level := 1; level <= 4; level++ {
		g, _ := newTestGame(t, func(tn *config.Tuning) { tn.StartLevel = level })

		for k := 1; k <= level; k++ {
			launchAndFly(t, g)
			if g.World.Terminal {
				t.Fatalf("level %d: collision on attachment %d", level, k)
			}
			if k < level {
				if g.World.Level != level || g.World.Remaining != level-k || len(g.World.Attached) != k {
					t.Fatalf("level %d after %d: level=%d remaining=%d attached=%d",
						level, k, g.World.Level, g.World.Remaining, len(g.World.Attached))
				}
			}
		}

		w := g.World
		if w.Level != level+1 || w.Remaining != level+1 || len(w.Attached) != 0 {
			t.Errorf("level %d done: level=%d remaining=%d attached=%d", level, w.Level, w.Remaining, len(w.Attached))
		}
	}
}

func TestCollisionEndsGame(t *testing.T) {
	// A slow disc turns far less than the tolerance while the second stick
	// flies, so both land on the same spot.
	g, log := newTestGame(t, func(tn *config.Tuning) {
		tn.StartLevel = 2
		tn.RotationSpeed = 1e-4
	})

	launchAndFly(t, g)
	if g.World.Terminal {
		t.Fatal("first stick cannot collide")
	}
	launchAndFly(t, g)

	w := g.World
	if !w.Terminal || !g.IsOver() {
		t.Fatal("second stick should end the game")
	}
	if w.Level != 2 || g.Score() != 1 {
		t.Errorf("no level-up on collision: level=%d score=%d", w.Level, g.Score())
	}
	if w.Current != nil {
		t.Error("no stick spawns after game over")
	}
	if len(w.Attached) != 2 {
		t.Errorf("Attached: got %d, want 2", len(w.Attached))
	}
	if log.count(event.GameOver) != 1 || log.count(event.LevelCompleted) != 0 {
		t.Errorf("events: gameOver=%d levelCompleted=%d", log.count(event.GameOver), log.count(event.LevelCompleted))
	}
	last := log.events[len(log.events)-1]
	data, ok := last.Data.(event.GameOverData)
	if !ok || data.First != 0 || data.Second != 1 || data.Score != 1 {
		t.Errorf("GameOver payload: got %#v", last.Data)
	}
}

func TestCollisionWithConstructedAngles(t *testing.T) {
	g, _ := newTestGame(t, func(tn *config.Tuning) { tn.StartLevel = 2 })
	w := g.World
	step := w.Tuning.RotationSpeed

	// The incoming stick will attach with angle 0 after framesToAttach
	// frames; give the settled one the same angle at that moment.
	settled := component.NewStick(component.Vec2{}, 100, 4)
	settled.Launch()
	settled.Attach(0, -framesToAttach*step)
	w.Attached = append(w.Attached, settled)
	w.Remaining = 1

	g.HandleKey(KeyLaunch)
	loop := NewLoop(g)
	if ran := loop.RunFrames(1000); ran != framesToAttach {
		t.Errorf("frames: got %d, want %d", ran, framesToAttach)
	}

	a1, _ := w.Attached[0].AngleAt(w.DiscAngle)
	a2, _ := w.Attached[1].AngleAt(w.DiscAngle)
	if math.Abs(a1-a2) > 1e-9 {
		t.Fatalf("constructed angles differ: %v vs %v", a1, a2)
	}
	if !w.Terminal {
		t.Fatal("equal angles must end the game")
	}
	if w.Level != 2 || w.Score() != 1 {
		t.Errorf("level=%d score=%d, want 2/1", w.Level, w.Score())
	}
}

func TestTerminalFreezesState(t *testing.T) {
	g, log := newTestGame(t, nil)
	g.World.Terminal = true

	before := *g.World
	beforeStick := *g.World.Current
	events := len(log.events)

	for i := 0; i < 10; i++ {
		if g.Step() {
			t.Fatal("Step should report false once terminal")
		}
		g.HandleKey(KeyLaunch)
		g.HandleKey(KeyOther)
	}

	if g.World.DiscAngle != before.DiscAngle || g.World.Frame != before.Frame {
		t.Errorf("disc moved after game over: %v -> %v", before.DiscAngle, g.World.DiscAngle)
	}
	if g.World.Level != before.Level || g.World.Remaining != before.Remaining {
		t.Error("counters changed after game over")
	}
	if *g.World.Current != beforeStick {
		t.Error("current stick changed after game over")
	}
	if len(log.events) != events {
		t.Errorf("events dispatched after game over: %d", len(log.events)-events)
	}
	if g.State() != component.GameOver {
		t.Errorf("State: got %v, want game over", g.State())
	}
}

func TestHandleKey(t *testing.T) {
	g, log := newTestGame(t, nil)

	if g.HandleKey(KeyOther) {
		t.Error("unrelated keys must be ignored")
	}
	if !g.World.Current.IsPending() {
		t.Fatal("stick launched by an unrelated key")
	}
	if !g.HandleKey(KeyLaunch) {
		t.Fatal("launch key should launch the pending stick")
	}
	if g.HandleKey(KeyLaunch) {
		t.Error("launch is idempotent per stick")
	}
	if log.count(event.StickLaunched) != 1 {
		t.Errorf("StickLaunched: got %d, want 1", log.count(event.StickLaunched))
	}
	if !g.World.Current.IsFlying() {
		t.Errorf("phase: got %v, want flying", g.World.Current.Phase)
	}
}

func TestAtMostOneCurrentStick(t *testing.T) {
	g, _ := newTestGame(t, func(tn *config.Tuning) { tn.StartLevel = 3 })
	first := g.World.Current

	g.spawn()
	if g.World.Current != first {
		t.Fatal("spawn must not replace a pending stick")
	}

	g.HandleKey(KeyLaunch)
	for i := 0; i < 5; i++ {
		g.Step()
		g.spawn()
		if g.World.Current != first {
			t.Fatal("spawn must not replace a flying stick")
		}
	}
}

func TestKeyString(t *testing.T) {
	if KeyLaunch.String() != "launch" || Key(42).String() != "other" {
		t.Errorf("unexpected key names: %q %q", KeyLaunch, Key(42))
	}
}
