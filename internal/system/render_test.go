package system

import (
	"testing"

	"go-spin-sticks/internal/config"
	"go-spin-sticks/internal/entity"
	"go-spin-sticks/pkg/render"
)

func TestRenderSystemDrawOrder(t *testing.T) {
	w := entity.NewWorld(config.DefaultTuning())
	sticks := NewStickSystem(w)

	attached := attachedAt(0.25)
	w.Attached = append(w.Attached, attached)
	w.DiscAngle = 1
	sticks.Spawn()

	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	NewRenderSystem(DefaultPalette()).Draw(rec, w)

	kinds := make([]render.OpKind, 0, len(rec.Ops))
	for _, op := range rec.Ops {
		kinds = append(kinds, op.Kind)
	}
	want := []render.OpKind{render.OpClear, render.OpCircle, render.OpRect, render.OpRect}
	if len(kinds) != len(want) {
		t.Fatalf("ops: got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("ops: got %v, want %v", kinds, want)
		}
	}

	if rec.Ops[0].Color != config.BackgroundColor {
		t.Errorf("clear color: got %+v", rec.Ops[0].Color)
	}

	disc := rec.Ops[1]
	if disc.X != 400 || disc.Y != 300 || disc.R != 20 {
		t.Errorf("disc: got (%v, %v) r=%v", disc.X, disc.Y, disc.R)
	}

	// Attached: rotated around the disc center, hanging from its surface.
	a := rec.Ops[2]
	if a.Transform != (render.Transform{X: 400, Y: 300, Angle: 1.25}) {
		t.Errorf("attached transform: got %+v", a.Transform)
	}
	if a.X != -2 || a.Y != -20 || a.W != 4 || a.H != 100 {
		t.Errorf("attached rect: got (%v, %v, %v, %v)", a.X, a.Y, a.W, a.H)
	}

	// Current: centered on its own position, unrotated.
	c := rec.Ops[3]
	if c.Transform != (render.Transform{X: 400, Y: 550}) {
		t.Errorf("current transform: got %+v", c.Transform)
	}
	if c.X != -2 || c.Y != -50 {
		t.Errorf("current rect origin: got (%v, %v)", c.X, c.Y)
	}
}

func TestRenderSystemEmptyWorld(t *testing.T) {
	w := entity.NewWorld(config.DefaultTuning())
	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	NewRenderSystem(DefaultPalette()).Draw(rec, w)

	if n := len(rec.Filter(render.OpRect)); n != 0 {
		t.Errorf("no sticks should be drawn, got %d rects", n)
	}
	if n := len(rec.Filter(render.OpCircle)); n != 1 {
		t.Errorf("disc should always be drawn, got %d circles", n)
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	if p.Stick != config.StickColor || p.Overlay != config.OverlayColor {
		t.Errorf("palette does not match config: %+v", p)
	}
}
