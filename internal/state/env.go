// internal/state/env.go
package state

import (
	"fmt"

	"go-spin-sticks/internal/app"
	"go-spin-sticks/internal/config"
	"go-spin-sticks/internal/entity"
	"go-spin-sticks/internal/system"
	"go-spin-sticks/internal/ui"
	"go-spin-sticks/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Env is what every screen shares: the tuning for new runs, fonts and the
// view that draws a frame.
type Env struct {
	Tuning config.Tuning
	Fonts  *render.FontSet
	View   *ui.View
	Debug  bool

	// Keys returns the keys pressed since the last tick.
	Keys func() []app.Key
}

func NewEnv(tuning config.Tuning, fonts *render.FontSet) *Env {
	return &Env{
		Tuning: tuning,
		Fonts:  fonts,
		View:   ui.NewView(system.DefaultPalette()),
		Keys:   PollKeys,
	}
}

var keyBindings = []struct {
	key ebiten.Key
	app app.Key
}{
	{ebiten.KeySpace, app.KeyLaunch},
	{ebiten.KeyP, app.KeyPause},
	{ebiten.KeyEnter, app.KeyRestart},
	{ebiten.KeyR, app.KeyRestart},
	{ebiten.KeyEscape, app.KeyQuit},
}

// PollKeys reports keys that went down this tick. Holding a key does not
// repeat it.
func PollKeys() []app.Key {
	var keys []app.Key
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			keys = append(keys, b.app)
		}
	}
	return keys
}

func (e *Env) surface(screen *ebiten.Image) render.Surface {
	return render.NewEbitenSurface(screen, e.Fonts)
}

func (e *Env) drawFrame(screen *ebiten.Image, w *entity.World, paused bool) {
	e.View.Draw(e.surface(screen), w, paused)
	if e.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("frame %d  angle %.2f  TPS %.0f", w.Frame, w.DiscAngle, ebiten.ActualTPS()), 0, config.ScreenHeight-16)
	}
}
