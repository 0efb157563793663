package platform

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// DefaultHoldWindow is how long a key stays held after its last press.
// Terminals repeat held keys every ~30ms after an initial delay.
const DefaultHoldWindow = 250 * time.Millisecond

// KeyHold derives held-key state from press events. Terminals report key
// presses and autorepeats but never releases, so a key counts as held while
// its most recent press is younger than the hold window.
// KeyHold is safe for concurrent use: backends record presses from their
// input goroutine while the session samples from its own.
type KeyHold struct {
	mu     sync.Mutex
	window time.Duration
	now    func() time.Time
	last   map[core.Key]time.Time
}

// NewKeyHold creates a tracker with the given hold window.
// A non-positive window selects DefaultHoldWindow.
func NewKeyHold(window time.Duration) *KeyHold {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &KeyHold{
		window: window,
		now:    time.Now,
		last:   make(map[core.Key]time.Time),
	}
}

// Press records a press (or autorepeat) of k at the current time.
func (h *KeyHold) Press(k core.Key) {
	if k == core.KeyNone {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last[k] = h.now()
}

// Pressed implements core.KeyboardState.
func (h *KeyHold) Pressed(k core.Key) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	t, ok := h.last[k]
	if !ok {
		return false
	}
	if h.now().Sub(t) >= h.window {
		delete(h.last, k)
		return false
	}
	return true
}

// Snapshot returns the keys held right now as a fixed set.
func (h *KeyHold) Snapshot() core.KeySet {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	set := make(core.KeySet, len(h.last))
	for k, t := range h.last {
		if now.Sub(t) < h.window {
			set[k] = true
		}
	}
	return set
}

// EventQueue is a mutex-guarded event buffer shared by backend input
// goroutines and PollEvents.
type EventQueue struct {
	mu     sync.Mutex
	events []Event
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, e)
}

// Drain returns all queued events and empties the queue.
func (q *EventQueue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.events
	q.events = nil
	return out
}
