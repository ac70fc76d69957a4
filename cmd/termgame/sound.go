package main

import (
	"sync"
	"time"

	"go-spin-sticks/internal/config"
	"go-spin-sticks/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(config.TerminalSoundHz)

// tone is one note of a cue.
type tone struct {
	freq     float64
	duration time.Duration
}

var cues = map[event.EventType][]tone{
	event.StickAttached:  {{880, 50 * time.Millisecond}},
	event.LevelCompleted: {{660, 80 * time.Millisecond}, {990, 120 * time.Millisecond}},
	event.GameOver:       {{220, 200 * time.Millisecond}, {165, 300 * time.Millisecond}},
}

// cue builds the streamer for an event, or nil if the event is silent.
func cue(t event.EventType) beep.Streamer {
	notes, ok := cues[t]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(sampleRate.N(n.duration), sine))
	}
	if len(parts) == 0 {
		return nil
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: -1}
}

// SoundCues plays a short tone for attachments, level-ups and game over.
type SoundCues struct {
	mu      sync.Mutex
	enabled bool
}

// NewSoundCues opens the speaker. The returned cues are usable even when
// err is non-nil; they stay silent.
func NewSoundCues() (*SoundCues, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &SoundCues{}, err
	}
	return &SoundCues{enabled: true}, nil
}

// OnEvent реализует интерфейс event.Listener.
func (s *SoundCues) OnEvent(e event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled {
		return
	}
	if st := cue(e.Type); st != nil {
		speaker.Play(st)
	}
}

func (s *SoundCues) Attach(d *event.Dispatcher) {
	for t := range cues {
		d.Subscribe(t, s)
	}
}

func (s *SoundCues) Detach(d *event.Dispatcher) {
	d.UnsubscribeAll(s)
}

func (s *SoundCues) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.enabled {
		speaker.Close()
		s.enabled = false
	}
}
