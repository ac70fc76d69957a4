// cmd/termgame/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"go-spin-sticks/internal/app"
	"go-spin-sticks/internal/config"
	"go-spin-sticks/internal/event"
	"go-spin-sticks/internal/system"
	"go-spin-sticks/internal/ui"
	"go-spin-sticks/pkg/render"
	"go-spin-sticks/pkg/utils"

	"github.com/gdamore/tcell/v2"
)

// session runs games on one terminal until the player quits.
type session struct {
	screen   tcell.Screen
	surface  *render.CellSurface
	view     *ui.View
	tuning   config.Tuning
	interval time.Duration
	sounds   *SoundCues
}

func (s *session) draw(l *app.Loop) {
	s.view.Draw(s.surface, l.Game().World, l.Paused())
	s.screen.Show()
}

// play runs one game to its end. It returns nil when the game ends and the
// context error when the player quits.
func (s *session) play(ctx context.Context, keys <-chan app.Key) (*app.Game, error) {
	d := event.NewDispatcher()
	logger := app.NewEventLogger("Term")
	logger.Attach(d)
	s.sounds.Attach(d)
	defer func() {
		logger.Detach(d)
		s.sounds.Detach(d)
	}()

	g := app.NewGame(s.tuning, d)
	loop := app.NewLoop(g)
	s.draw(loop)
	return g, loop.Run(ctx, s.interval, keys, s.draw)
}

// waitRestart blocks until a restart key or cancellation. It reports
// whether a new game should start.
func waitRestart(ctx context.Context, keys <-chan app.Key) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case k := <-keys:
			if k == app.KeyRestart {
				return true
			}
		}
	}
}

func (s *session) run(ctx context.Context, keys <-chan app.Key) error {
	for {
		g, err := s.play(ctx, keys)
		if err != nil {
			return err
		}
		log.Printf("[Term] run finished, score %d", g.Score())
		if !waitRestart(ctx, keys) {
			return nil
		}
	}
}

func main() {
	configPath := flag.String("config", "", "YAML tuning file")
	fps := flag.Int("fps", config.TerminalFPS, "frames per second")
	logPath := flag.String("log", "", "write the game log to this file")
	mute := flag.Bool("mute", false, "disable sound cues")
	flag.Parse()

	tuning := config.DefaultTuning()
	if *configPath != "" {
		var err error
		if tuning, err = config.LoadTuning(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	// The terminal is owned by the game; log lines go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	log.SetOutput(logOut)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	sounds := &SoundCues{}
	if !*mute {
		if sounds, err = NewSoundCues(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("[Audio] initialization failed: %v", err)
		}
	}
	defer sounds.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	keys := make(chan app.Key, 16)
	go pollInput(screen, keys, cancel)

	s := &session{
		screen:   screen,
		surface:  render.NewCellSurface(screen, config.ScreenWidth, config.ScreenHeight),
		view:     ui.NewView(system.DefaultPalette()),
		tuning:   tuning,
		interval: time.Second / time.Duration(utils.Clamp(*fps, 1, config.MaxTerminalFPS)),
		sounds:   sounds,
	}
	if err := s.run(ctx, keys); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("[Term] %v", err)
	}
}
