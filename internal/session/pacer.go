package session

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Pacer enforces a minimum interval between simulation steps and turns the
// elapsed wall time into a clamped step length.
type Pacer struct {
	clock    Clock
	interval time.Duration
	maxDelta float64
}

// NewPacer creates a pacer. maxDelta is in seconds.
func NewPacer(clock Clock, interval time.Duration, maxDelta float64) *Pacer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Pacer{
		clock:    clock,
		interval: interval,
		maxDelta: maxDelta,
	}
}

// WaitAndComputeDelta blocks until at least the frame interval has passed
// since last, then returns the elapsed seconds clamped to [0, maxDelta] and
// the new tick time for the caller to keep.
func (p *Pacer) WaitAndComputeDelta(last time.Time) (float64, time.Time) {
	now := p.clock.Now()
	for elapsed := now.Sub(last); elapsed < p.interval; elapsed = now.Sub(last) {
		p.clock.Sleep(p.interval - elapsed)
		now = p.clock.Now()
	}

	delta := now.Sub(last).Seconds()
	return core.ClampF(delta, 0, p.maxDelta), now
}
