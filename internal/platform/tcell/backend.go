// Package tcell is the tcell backend: the playfield is rasterised into a
// cell buffer and painted with true-colour backgrounds.
package tcell

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform"
)

// Option configures a Backend.
type Option func(*Backend)

// WithScreen uses s instead of the real terminal. Init still calls s.Init.
func WithScreen(s tcell.Screen) Option {
	return func(b *Backend) {
		b.screen = s
	}
}

// Backend implements platform.Backend on a tcell screen. Input is read by a
// pump goroutine between Init and Quit.
type Backend struct {
	hold  *platform.KeyHold
	queue platform.EventQueue

	mu     sync.Mutex
	screen tcell.Screen
	cells  *core.Screen // Nil until a renderer exists

	started  bool
	done     chan struct{}
	quitOnce sync.Once
}

var _ platform.Backend = (*Backend)(nil)

// New creates a backend. holdWindow is how long a key press counts as held.
func New(holdWindow time.Duration, opts ...Option) *Backend {
	b := &Backend{
		hold: platform.NewKeyHold(holdWindow),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Factory adapts New to platform.Factory.
func Factory(opts ...Option) platform.Factory {
	return func(holdWindow time.Duration) platform.Backend {
		return New(holdWindow, opts...)
	}
}

// Init opens the terminal and starts the input pump.
func (b *Backend) Init() error {
	if b.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("tcell: new screen: %w", err)
		}
		b.screen = s
	}
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("tcell: init screen: %w", err)
	}
	b.screen.HideCursor()
	b.screen.Clear()

	b.started = true
	b.done = make(chan struct{})
	go b.pump()
	return nil
}

// pump forwards terminal events until the screen is finalized.
func (b *Backend) pump() {
	defer close(b.done)
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		b.handleEvent(ev)
	}
}

func (b *Backend) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k, quit := translateKey(ev)
		if quit {
			b.queue.Push(platform.Event{Type: platform.EventQuit})
			return
		}
		b.hold.Press(k)

	case *tcell.EventResize:
		w, h := ev.Size()
		b.mu.Lock()
		if b.cells != nil {
			b.cells.Resize(w, h)
		}
		b.mu.Unlock()
		b.screen.Sync()
	}
}

// translateKey maps a tcell key event to a held key, or reports a quit request.
func translateKey(ev *tcell.EventKey) (core.Key, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return core.KeyNone, true
	case tcell.KeyUp:
		return core.KeyUp, false
	case tcell.KeyDown:
		return core.KeyDown, false
	case tcell.KeyEscape:
		return core.KeyEscape, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return core.KeyW, false
		case 's', 'S':
			return core.KeyS, false
		case 'q':
			return core.KeyNone, true
		}
	}
	return core.KeyNone, false
}

// CreateSurface binds the playfield size. The terminal has no window
// position or title bar, so title, x and y are ignored.
func (b *Backend) CreateSurface(title string, x, y, width, height int) (platform.Surface, error) {
	if !b.started {
		return nil, errors.New("tcell: backend not initialized")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("tcell: invalid surface size %dx%d", width, height)
	}
	return &surface{width: float64(width), height: float64(height)}, nil
}

// CreateRenderer creates the cell buffer sized to the terminal.
func (b *Backend) CreateRenderer(s platform.Surface) (platform.Renderer, error) {
	surf, ok := s.(*surface)
	if !ok || surf == nil {
		return nil, fmt.Errorf("tcell: foreign surface %T", s)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cells != nil {
		return nil, errors.New("tcell: renderer already exists")
	}
	w, h := b.screen.Size()
	b.cells = core.NewScreen(w, h, surf.width, surf.height)
	return &renderer{b: b, styles: make(map[core.Color]tcell.Style)}, nil
}

// PollEvents drains queued events.
func (b *Backend) PollEvents() []platform.Event {
	return b.queue.Drain()
}

// KeyboardState returns the keys held right now.
func (b *Backend) KeyboardState() core.KeyboardState {
	return b.hold.Snapshot()
}

// Quit restores the terminal and waits for the pump to exit.
func (b *Backend) Quit() {
	b.quitOnce.Do(func() {
		if !b.started {
			return
		}
		b.screen.Fini()
		<-b.done
	})
}

type surface struct {
	width, height float64
}

func (s *surface) Destroy() {}

// renderer draws into the backend's cell buffer; Present copies it to tcell.
type renderer struct {
	b         *Backend
	styles    map[core.Color]tcell.Style
	destroyed bool
}

func (r *renderer) Clear(c core.Color) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	if r.destroyed {
		return
	}
	r.b.cells.Clear(c)
}

func (r *renderer) FillRect(rect core.Rect, c core.Color) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	if r.destroyed {
		return
	}
	r.b.cells.FillRect(rect, c)
}

func (r *renderer) style(c core.Color) tcell.Style {
	st, ok := r.styles[c]
	if !ok {
		st = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		r.styles[c] = st
	}
	return st
}

func (r *renderer) Present() {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	if r.destroyed {
		return
	}

	cells := r.b.cells
	for y := range cells.Height() {
		for x := range cells.Width() {
			cell := cells.GetCell(x, y)
			r.b.screen.SetContent(x, y, cell.Rune, nil, r.style(cell.Bg))
		}
	}
	r.b.screen.Show()
}

func (r *renderer) Destroy() {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	r.destroyed = true
	r.b.cells = nil
}
