package main

import (
	"go-spin-sticks/internal/app"

	"github.com/gdamore/tcell/v2"
)

// translateKey maps a terminal key press to a game key. quit is true for
// the keys that leave the game.
func translateKey(key tcell.Key, r rune) (k app.Key, quit bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return app.KeyOther, true
	case tcell.KeyEnter:
		return app.KeyRestart, false
	case tcell.KeyRune:
		switch r {
		case ' ':
			return app.KeyLaunch, false
		case 'p', 'P':
			return app.KeyPause, false
		case 'r', 'R':
			return app.KeyRestart, false
		case 'q', 'Q':
			return app.KeyOther, true
		}
	}
	return app.KeyOther, false
}

// pollInput forwards key presses to keys until the screen is finalized.
// Quit keys call cancel; resizes repaint the whole terminal.
func pollInput(screen tcell.Screen, keys chan<- app.Key, cancel func()) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			k, quit := translateKey(ev.Key(), ev.Rune())
			if quit {
				cancel()
				continue
			}
			if k != app.KeyOther {
				select {
				case keys <- k:
				default:
				}
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
