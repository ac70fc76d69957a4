// internal/system/render.go
package system

import (
	"go-spin-sticks/internal/config"
	"go-spin-sticks/internal/entity"
	"go-spin-sticks/pkg/render"
)

// DefaultPalette builds the palette from config colors.
func DefaultPalette() render.Palette {
	return render.Palette{
		Background:  config.BackgroundColor,
		Disc:        config.DiscColor,
		Stick:       config.StickColor,
		Text:        config.TextColor,
		Overlay:     config.OverlayColor,
		OverlayText: config.OverlayTextColor,
	}
}

// RenderSystem draws the disc and every stick of a world.
type RenderSystem struct {
	palette render.Palette
}

func NewRenderSystem(palette render.Palette) *RenderSystem {
	return &RenderSystem{palette: palette}
}

func (s *RenderSystem) Palette() render.Palette {
	return s.palette
}

func (s *RenderSystem) Draw(surface render.Surface, w *entity.World) {
	surface.Clear(s.palette.Background)

	c := w.Disc.Center
	surface.FillCircle(c.X, c.Y, w.Disc.Radius, s.palette.Disc)

	// Attached sticks hang from the disc surface and turn with it.
	for _, st := range w.Attached {
		angle, ok := st.AngleAt(w.DiscAngle)
		if !ok {
			continue
		}
		t := render.Transform{X: c.X, Y: c.Y, Angle: angle}
		surface.FillRect(t, -st.Width/2, -w.Disc.Radius, st.Width, st.Length, s.palette.Stick)
	}

	if st := w.Current; st != nil {
		t := render.Transform{X: st.Pos.X, Y: st.Pos.Y}
		surface.FillRect(t, -st.Width/2, -st.Length/2, st.Width, st.Length, s.palette.Stick)
	}
}
