// Package tui is the Bubble Tea backend: the playfield is rasterised into a
// cell buffer and shown full-screen with a key help footer.
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform"
)

// Terminal size used when the real one cannot be read.
const (
	fallbackCols = 80
	fallbackRows = 24
)

// footerRows is the height of the help footer below the playfield.
const footerRows = 1

var errNotTerminal = errors.New("tui: stdout is not a terminal")

// Option configures a Backend.
type Option func(*Backend)

// WithIO replaces the terminal with the given streams. No TTY check is made.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(b *Backend) {
		b.in, b.out = in, out
	}
}

// WithLogger sets the logger for backend diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(b *Backend) {
		b.logger = l
	}
}

// WithScreenshotDir enables ctrl+s screenshots into dir.
func WithScreenshotDir(dir string) Option {
	return func(b *Backend) {
		b.screenshotDir = dir
	}
}

// Backend implements platform.Backend on top of a Bubble Tea program
// running in its own goroutine.
type Backend struct {
	keys          KeyMap
	hold          *platform.KeyHold
	queue         platform.EventQueue
	logger        *log.Logger
	screenshotDir string
	in            io.Reader
	out           io.Writer

	mu     sync.Mutex
	cols   int
	rows   int
	screen *core.Screen // Nil until a renderer exists
	bg     core.Color   // Last clear color, the screenshot background

	program  *tea.Program
	done     chan struct{}
	quitOnce sync.Once
}

var _ platform.Backend = (*Backend)(nil)

// New creates a backend. holdWindow is how long a key press counts as held.
func New(holdWindow time.Duration, opts ...Option) *Backend {
	b := &Backend{
		keys:   DefaultKeyMap(),
		hold:   platform.NewKeyHold(holdWindow),
		logger: log.New(io.Discard),
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

// Init measures the terminal and starts the program.
func (b *Backend) Init() error {
	var progOpts []tea.ProgramOption
	cols, rows := fallbackCols, fallbackRows

	if b.in == nil {
		fd := int(os.Stdout.Fd())
		if !term.IsTerminal(fd) {
			return errNotTerminal
		}
		if w, h, err := term.GetSize(fd); err == nil {
			cols, rows = w, h
		}
		progOpts = append(progOpts, tea.WithAltScreen())
	} else {
		progOpts = append(progOpts, tea.WithInput(b.in), tea.WithOutput(b.out))
	}

	b.mu.Lock()
	b.cols, b.rows = cols, max(rows-footerRows, 1)
	b.mu.Unlock()

	b.program = tea.NewProgram(newModel(b), progOpts...)
	b.done = make(chan struct{})
	go b.run()
	return nil
}

// run drives the program until it exits. An exit the session did not ask
// for becomes a quit event.
func (b *Backend) run() {
	defer close(b.done)

	_, err := b.program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		b.logger.Error("terminal program failed", "error", err)
	}
	b.queue.Push(platform.Event{Type: platform.EventQuit})
}

// CreateSurface binds the playfield size and window title. The terminal has
// no window position, so x and y are ignored.
func (b *Backend) CreateSurface(title string, x, y, width, height int) (platform.Surface, error) {
	if b.program == nil {
		return nil, errors.New("tui: backend not initialized")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("tui: invalid surface size %dx%d", width, height)
	}

	b.program.Send(titleMsg(title))

	return &surface{width: float64(width), height: float64(height)}, nil
}

// CreateRenderer creates the cell buffer the surface is drawn into.
func (b *Backend) CreateRenderer(s platform.Surface) (platform.Renderer, error) {
	surf, ok := s.(*surface)
	if !ok || surf == nil {
		return nil, fmt.Errorf("tui: foreign surface %T", s)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.screen != nil {
		return nil, errors.New("tui: renderer already exists")
	}
	b.screen = core.NewScreen(b.cols, b.rows, surf.width, surf.height)
	return &renderer{b: b}, nil
}

// PollEvents drains queued events.
func (b *Backend) PollEvents() []platform.Event {
	return b.queue.Drain()
}

// KeyboardState returns the keys held right now.
func (b *Backend) KeyboardState() core.KeyboardState {
	return b.hold.Snapshot()
}

// Quit stops the program and waits for the terminal to be restored.
func (b *Backend) Quit() {
	b.quitOnce.Do(func() {
		if b.program == nil {
			return
		}
		b.program.Quit()
		<-b.done
	})
}

// resize follows the terminal size.
func (b *Backend) resize(cols, rows int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cols, b.rows = max(cols, 1), max(rows-footerRows, 1)
	if b.screen != nil {
		b.screen.Resize(b.cols, b.rows)
	}
}

// saveScreenshot writes the current frame as plain text.
func (b *Backend) saveScreenshot() {
	if b.screenshotDir == "" {
		return
	}

	b.mu.Lock()
	if b.screen == nil {
		b.mu.Unlock()
		return
	}
	text := b.screen.ASCII(b.bg)
	b.mu.Unlock()

	path, err := writeScreenshot(b.screenshotDir, text, time.Now())
	if err != nil {
		b.logger.Warn("screenshot failed", "error", err)
		return
	}
	b.logger.Info("screenshot saved", "path", path)
}

// writeScreenshot stores text in dir under a timestamped name.
func writeScreenshot(dir, text string, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}
	name := fmt.Sprintf("pong_%s.txt", at.Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// surface is the playfield size bound to the terminal.
type surface struct {
	width, height float64
}

func (s *surface) Destroy() {}

// renderer draws into the backend's cell buffer and hands finished frames
// to the program.
type renderer struct {
	b         *Backend
	destroyed bool
}

func (r *renderer) Clear(c core.Color) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	if r.destroyed {
		return
	}
	r.b.bg = c
	r.b.screen.Clear(c)
}

func (r *renderer) FillRect(rect core.Rect, c core.Color) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	if r.destroyed {
		return
	}
	r.b.screen.FillRect(rect, c)
}

// Present sends the buffer to the program. It blocks until the program takes
// the frame or has exited.
func (r *renderer) Present() {
	r.b.mu.Lock()
	if r.destroyed || r.b.program == nil {
		r.b.mu.Unlock()
		return
	}
	frame := RenderScreen(r.b.screen)
	r.b.mu.Unlock()

	r.b.program.Send(frameMsg(frame))
}

func (r *renderer) Destroy() {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	r.destroyed = true
	r.b.screen = nil
}
