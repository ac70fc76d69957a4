package app

import (
	"log"

	"go-spin-sticks/internal/event"
)

// EventLogger writes game events to the standard logger.
type EventLogger struct {
	prefix string
}

func NewEventLogger(prefix string) *EventLogger {
	return &EventLogger{prefix: prefix}
}

// OnEvent реализует интерфейс event.Listener.
func (l *EventLogger) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.AttachData:
		log.Printf("[%s] stick %d attached at %.3f rad (level %d, %d left)", l.prefix, data.Index, data.Angle, data.Level, data.Remaining)
	case event.LevelData:
		log.Printf("[%s] level %d complete, starting level %d", l.prefix, data.Completed, data.Next)
	case event.GameOverData:
		log.Printf("[%s] sticks %d and %d overlap, game over at level %d, final score %d", l.prefix, data.First, data.Second, data.Level, data.Score)
	}
}

// Attach subscribes the logger to the events worth a log line.
func (l *EventLogger) Attach(d *event.Dispatcher) {
	d.Subscribe(event.StickAttached, l)
	d.Subscribe(event.LevelCompleted, l)
	d.Subscribe(event.GameOver, l)
}

// Detach removes the logger from d.
func (l *EventLogger) Detach(d *event.Dispatcher) {
	d.UnsubscribeAll(l)
}
