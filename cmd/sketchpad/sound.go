package main

import (
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	clickFreq  = 880
	clickLen   = 40 * time.Millisecond
)

// clicker plays a short tone. The zero value is silent.
type clicker struct {
	ok bool
}

// newClicker opens the speaker. Audio is optional, so failures are logged
// and produce a silent clicker.
func newClicker(enabled bool) *clicker {
	if !enabled {
		return &clicker{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		slog.Warn("audio unavailable", "err", err)
		return &clicker{}
	}
	return &clicker{ok: true}
}

func (c *clicker) click() {
	if !c.ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, clickFreq)
	if err != nil {
		slog.Warn("generating click", "err", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(clickLen), sine))
}

func (c *clicker) close() {
	if c.ok {
		speaker.Close()
		c.ok = false
	}
}
