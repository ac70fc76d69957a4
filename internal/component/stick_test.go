package component

import "testing"

func TestStickPhaseTransitions(t *testing.T) {
	s := NewStick(Vec2{X: 400, Y: 550}, 100, 4)

	if !s.IsPending() {
		t.Fatalf("new stick phase: got %v, want pending", s.Phase)
	}
	if s.Attach(1, 0) {
		t.Fatal("pending stick must not attach")
	}
	if s.Attachment != nil {
		t.Fatal("pending stick must not carry an attachment")
	}

	if !s.Launch() {
		t.Fatal("Launch on pending stick should succeed")
	}
	if !s.IsFlying() {
		t.Fatalf("phase after launch: got %v, want flying", s.Phase)
	}
	if s.Launch() {
		t.Fatal("second Launch should be a no-op")
	}

	if !s.Attach(1.5, 0.25) {
		t.Fatal("Attach on flying stick should succeed")
	}
	if !s.IsAttached() {
		t.Fatalf("phase after attach: got %v, want attached", s.Phase)
	}
	if s.Launch() {
		t.Fatal("attached stick must not go back to flying")
	}
	if s.Attach(9, 9) {
		t.Fatal("attached stick must keep its first attachment")
	}
	if s.Attachment.AttachAngle != 1.5 || s.Attachment.RestAngle != 0.25 {
		t.Errorf("attachment changed: got %+v", *s.Attachment)
	}
}

func TestStickAngleAt(t *testing.T) {
	s := NewStick(Vec2{}, 100, 4)
	if _, ok := s.AngleAt(1); ok {
		t.Fatal("AngleAt on pending stick should report !ok")
	}

	s.Launch()
	s.Attach(0.5, 0.1)

	got, ok := s.AngleAt(2.5)
	if !ok {
		t.Fatal("AngleAt on attached stick should report ok")
	}
	if want := 2.5 - 0.5 + 0.1; got != want {
		t.Errorf("AngleAt: got %v, want %v", got, want)
	}
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{
		Pending:  "pending",
		Flying:   "flying",
		Attached: "attached",
		Phase(9): "unknown",
	}
	for p, want := range tests {
		if got := p.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(p), got, want)
		}
	}
	if GameOver.String() != "game over" || Running.String() != "running" {
		t.Errorf("unexpected GameState strings: %q %q", Running, GameOver)
	}
}
