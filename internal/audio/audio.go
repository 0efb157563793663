// Package audio plays short tones when the ball touches something.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-pong/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a sine beep.
type Tone struct {
	Freq     float64 // Hz
	Duration time.Duration
}

var (
	PaddleTone = Tone{Freq: 660, Duration: 40 * time.Millisecond}
	WallTone   = Tone{Freq: 440, Duration: 30 * time.Millisecond}
	LostTone   = Tone{Freq: 196, Duration: 250 * time.Millisecond}
)

// ToneFor picks the tone for a step's contacts. A lost ball outranks a paddle
// hit, which outranks a wall bounce. ok is false when nothing was touched.
func ToneFor(c core.Contact) (Tone, bool) {
	switch {
	case c.Has(core.ContactLost):
		return LostTone, true
	case c.Has(core.ContactPaddle):
		return PaddleTone, true
	case c.Has(core.ContactWall):
		return WallTone, true
	default:
		return Tone{}, false
	}
}

// Stream builds a finite streamer for t.
func (t Tone) Stream(sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, t.Freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sr.N(t.Duration), sine), nil
}

// Player sends contact tones to an output. The zero value is silent.
type Player struct {
	mu      sync.Mutex
	sr      beep.SampleRate
	output  func(...beep.Streamer)
	speaker bool
}

// NewSpeakerPlayer initializes the system speaker. Callers that can run
// without sound should fall back to Nop on error.
func NewSpeakerPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Player{sr: sampleRate, output: speaker.Play, speaker: true}, nil
}

// NewPlayer creates a player writing to output at sample rate sr.
func NewPlayer(sr beep.SampleRate, output func(...beep.Streamer)) *Player {
	return &Player{sr: sr, output: output}
}

// Nop returns a player that never makes a sound.
func Nop() *Player {
	return &Player{}
}

// Play queues the tone for c, if any.
func (p *Player) Play(c core.Contact) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.output == nil {
		return
	}
	tone, ok := ToneFor(c)
	if !ok {
		return
	}
	s, err := tone.Stream(p.sr)
	if err != nil {
		return
	}
	p.output(s)
}

// Close stops anything still playing on the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.speaker && p.output != nil {
		speaker.Clear()
	}
	p.output = nil
}
