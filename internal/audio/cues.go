// Package audio plays short tones on mining events when a sound device exists.
package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"go-mining-sim/internal/config"
	"go-mining-sim/internal/event"
)

// Cues слушает события симуляции и проигрывает тоны.
type Cues struct {
	sampleRate beep.SampleRate
	enabled    bool
}

// NewCues opens the speaker. Without an audio device the cues stay silent.
func NewCues() *Cues {
	sampleRate := beep.SampleRate(config.ToneSampleRate)
	c := &Cues{sampleRate: sampleRate}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("audio disabled: %v", err)
		return c
	}
	c.enabled = true
	return c
}

func (c *Cues) Attach(d *event.Dispatcher) {
	d.SubscribeAll(c, event.ResourceMined, event.ResourceDelivered)
}

// OnEvent реализует интерфейс event.Listener.
func (c *Cues) OnEvent(e event.Event) {
	switch e.Type {
	case event.ResourceMined:
		c.play(config.MineToneHz)
	case event.ResourceDelivered:
		c.play(config.DeliverToneHz)
	}
}

func (c *Cues) play(freq float64) {
	if !c.enabled {
		return
	}
	sine, err := generators.SineTone(c.sampleRate, freq)
	if err != nil {
		return
	}
	tone := beep.Take(c.sampleRate.N(config.ToneMillis*time.Millisecond), sine)
	speaker.Play(&effects.Volume{Streamer: tone, Base: 2, Volume: -3})
}

func (c *Cues) Close() {
	if c.enabled {
		speaker.Close()
	}
}
