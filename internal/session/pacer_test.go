package session

import (
	"math"
	"testing"
	"time"
)

func TestPacerDelta(t *testing.T) {
	tests := []struct {
		name      string
		sinceLast time.Duration
		fraction  float64
		expected  float64
		sleeps    bool
	}{
		{"waits a full frame", 0, 0, 0.016, true},
		{"waits the remainder", 10 * time.Millisecond, 0, 0.016, true},
		{"late frame is not delayed", 30 * time.Millisecond, 0, 0.030, false},
		{"long stall is clamped", 2 * time.Second, 0, 0.05, false},
		{"early wakeups retry", 0, 0.25, 0.016, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clock := newFakeClock()
			clock.fraction = tc.fraction
			last := clock.Now()
			clock.Advance(tc.sinceLast)

			p := NewPacer(clock, 16*time.Millisecond, 0.05)
			dt, now := p.WaitAndComputeDelta(last)

			if math.Abs(dt-tc.expected) > 1e-9 {
				t.Errorf("dt = %v, expected %v", dt, tc.expected)
			}
			if now.Sub(last) < 16*time.Millisecond {
				t.Errorf("returned after %v, expected at least 16ms", now.Sub(last))
			}
			if (len(clock.sleeps) > 0) != tc.sleeps {
				t.Errorf("slept %d times, expected sleeping = %v", len(clock.sleeps), tc.sleeps)
			}
		})
	}
}

func TestPacerEarlyWakeupsSleepRepeatedly(t *testing.T) {
	clock := newFakeClock()
	clock.fraction = 0.5
	p := NewPacer(clock, 16*time.Millisecond, 0.05)

	p.WaitAndComputeDelta(clock.Now())

	if len(clock.sleeps) < 2 {
		t.Errorf("slept %d times, expected repeated sleeps", len(clock.sleeps))
	}
}

func TestPacerClockGoingBackwards(t *testing.T) {
	clock := newFakeClock()
	// A last tick in the future can never produce a negative step
	last := clock.Now().Add(time.Second)
	p := NewPacer(clock, 0, 0.05)

	dt, _ := p.WaitAndComputeDelta(last)

	if dt != 0 {
		t.Errorf("dt = %v, expected 0", dt)
	}
}

func TestNewPacerDefaultsClock(t *testing.T) {
	p := NewPacer(nil, time.Millisecond, 0.05)
	if _, ok := p.clock.(SystemClock); !ok {
		t.Errorf("clock = %T, expected SystemClock", p.clock)
	}
}
