// cmd/game/main.go
package main

import (
	"flag"
	"log"

	"go-spin-sticks/internal/config"
	"go-spin-sticks/internal/state"
	"go-spin-sticks/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	if a.stateMachine.Quitting() {
		a.stateMachine.Shutdown()
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "YAML tuning file")
	startFromMenu := flag.Bool("menu", false, "start from the title screen")
	debug := flag.Bool("debug", false, "print frame counters")
	flag.Parse()

	tuning := config.DefaultTuning()
	if *configPath != "" {
		var err error
		if tuning, err = config.LoadTuning(*configPath); err != nil {
			log.Fatal(err)
		}
		log.Printf("[Config] loaded %s", *configPath)
	}

	fonts, err := render.NewDefaultFontSet()
	if err != nil {
		log.Fatal(err)
	}

	env := state.NewEnv(tuning, fonts)
	env.Debug = *debug

	sm := state.NewStateMachine() // Создаём машину состояний
	if *startFromMenu {
		sm.SetState(state.NewMenuState(sm, env))
	} else {
		sm.SetState(state.NewPlayState(sm, env))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
}
