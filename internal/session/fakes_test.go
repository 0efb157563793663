package session

import (
	"errors"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform"
)

// fakeClock is a controllable Clock: Sleep advances time instead of blocking.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
	// fraction of each requested sleep that actually passes (1 when zero)
	fraction float64
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	if c.fraction > 0 {
		d = time.Duration(float64(d) * c.fraction)
		if d == 0 {
			d = 1
		}
	}
	c.now = c.now.Add(d)
}

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

var errFake = errors.New("fake failure")

// fakeBackend scripts events and keys per PollEvents call and counts teardown.
type fakeBackend struct {
	initErr, surfaceErr, rendererErr error

	events [][]platform.Event // events[i] is returned by the i-th poll
	keys   []core.KeySet      // keys[i] is returned after the i-th poll; last one repeats
	polls  int

	surface  *fakeSurface
	renderer *fakeRenderer
	quits    int
}

func (b *fakeBackend) Init() error { return b.initErr }

func (b *fakeBackend) CreateSurface(title string, x, y, w, h int) (platform.Surface, error) {
	if b.surfaceErr != nil {
		return nil, b.surfaceErr
	}
	b.surface = &fakeSurface{title: title, w: w, h: h}
	return b.surface, nil
}

func (b *fakeBackend) CreateRenderer(platform.Surface) (platform.Renderer, error) {
	if b.rendererErr != nil {
		return nil, b.rendererErr
	}
	b.renderer = &fakeRenderer{}
	return b.renderer, nil
}

func (b *fakeBackend) PollEvents() []platform.Event {
	i := b.polls
	b.polls++
	if i < len(b.events) {
		return b.events[i]
	}
	return nil
}

func (b *fakeBackend) KeyboardState() core.KeyboardState {
	if len(b.keys) == 0 {
		return core.KeySet{}
	}
	i := min(b.polls-1, len(b.keys)-1)
	return b.keys[max(i, 0)]
}

func (b *fakeBackend) Quit() { b.quits++ }

type fakeSurface struct {
	title     string
	w, h      int
	destroyed int
}

func (s *fakeSurface) Destroy() { s.destroyed++ }

type fakeRenderer struct {
	clears    int
	rects     int
	presents  int
	destroyed int
}

func (r *fakeRenderer) Clear(core.Color)               { r.clears++ }
func (r *fakeRenderer) FillRect(core.Rect, core.Color) { r.rects++ }
func (r *fakeRenderer) Present()                       { r.presents++ }
func (r *fakeRenderer) Destroy()                       { r.destroyed++ }

// soundLog records every contact set passed to Play.
type soundLog struct {
	played []core.Contact
}

func (s *soundLog) Play(c core.Contact) { s.played = append(s.played, c) }
