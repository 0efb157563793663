// Package session runs one game from surface creation to teardown:
// sample input, pace the frame, step the game, render, repeat.
package session

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// StopReason records why the loop ended.
type StopReason int

const (
	StopNone       StopReason = iota
	StopQuit                  // Quit event from the backend
	StopEscape                // Escape key
	StopGameOver              // The game stopped running (ball lost)
	StopCanceled              // Context canceled (signal)
	StopInitFailed            // The loop was never entered
)

// String returns a human-readable name for the stop reason.
func (r StopReason) String() string {
	switch r {
	case StopNone:
		return "none"
	case StopQuit:
		return "quit"
	case StopEscape:
		return "escape"
	case StopGameOver:
		return "game over"
	case StopCanceled:
		return "canceled"
	case StopInitFailed:
		return "init failed"
	default:
		return "unknown"
	}
}

// Sounder plays feedback for collisions.
type Sounder interface {
	Play(c core.Contact)
}

// Frame pacing used when Config leaves it unset.
const (
	DefaultFrameInterval = 16 * time.Millisecond
	DefaultMaxDelta      = 0.05
)

// Config holds session settings.
type Config struct {
	Title         string
	X, Y          int
	Width, Height int
	FrameInterval time.Duration
	MaxDelta      float64 // Seconds
	Clock         Clock
	Logger        *log.Logger
	Sound         Sounder
}

// Session owns the backend handles and the loop state for one game run.
type Session struct {
	backend platform.Backend
	game    registry.Game
	cfg     Config
	logger  *log.Logger
	pacer   *Pacer

	surface  platform.Surface
	renderer platform.Renderer

	running  bool
	reason   StopReason
	lastTick time.Time
	started  time.Time
	frames   int
	shutdown bool
}

// New creates a session. Nothing is opened until Initialize.
func New(backend platform.Backend, game registry.Game, cfg Config) *Session {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = DefaultFrameInterval
	}
	if cfg.MaxDelta <= 0 {
		cfg.MaxDelta = DefaultMaxDelta
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Session{
		backend: backend,
		game:    game,
		cfg:     cfg,
		logger:  logger,
		pacer:   NewPacer(cfg.Clock, cfg.FrameInterval, cfg.MaxDelta),
	}
}

// Initialize starts the backend and opens the surface and renderer.
// Each failure is logged and aborts initialization; Shutdown must still be called.
func (s *Session) Initialize() bool {
	if err := s.backend.Init(); err != nil {
		s.logger.Error("Unable to initialize backend", "error", err)
		return false
	}

	surface, err := s.backend.CreateSurface(s.cfg.Title, s.cfg.X, s.cfg.Y, s.cfg.Width, s.cfg.Height)
	if err != nil {
		s.logger.Error("Failed to create surface", "error", err)
		return false
	}
	s.surface = surface

	renderer, err := s.backend.CreateRenderer(surface)
	if err != nil {
		s.logger.Error("Failed to create renderer", "error", err)
		return false
	}
	s.renderer = renderer

	s.game.Reset()
	s.running = true
	s.started = s.cfg.Clock.Now()
	s.lastTick = s.started
	s.logger.Info("session started", "game", s.game.ID(), "width", s.cfg.Width, "height", s.cfg.Height)
	return true
}

// RunLoop runs frames until the session stops. The frame during which a stop
// is detected still completes.
func (s *Session) RunLoop(ctx context.Context) {
	for s.running {
		s.frame(ctx)
	}
}

// frame runs one loop iteration.
func (s *Session) frame(ctx context.Context) {
	if ctx.Err() != nil {
		s.stop(StopCanceled)
		return
	}

	in := SampleFrom(s.backend)
	if in.Quit {
		s.stop(StopQuit)
	}
	if in.Escape {
		s.stop(StopEscape)
	}

	dt, now := s.pacer.WaitAndComputeDelta(s.lastTick)
	s.lastTick = now

	result := s.game.Step(in.Intent, dt)
	if result.Contacts != core.ContactNone {
		s.logger.Debug("contact", "bits", uint8(result.Contacts), "tick", result.State.Ticks)
		if s.cfg.Sound != nil {
			s.cfg.Sound.Play(result.Contacts)
		}
	}
	if !result.State.Running {
		s.stop(StopGameOver)
	}

	s.game.Render(s.renderer)
	s.renderer.Present()
	s.frames++
}

// stop marks the session stopped. The first reason wins.
func (s *Session) stop(reason StopReason) {
	if s.reason == StopNone {
		s.reason = reason
	}
	s.running = false
}

// Shutdown destroys whatever Initialize managed to create and stops the
// backend. It tolerates partial initialization and repeated calls.
func (s *Session) Shutdown() {
	if s.shutdown {
		return
	}
	s.shutdown = true

	if s.renderer != nil {
		s.renderer.Destroy()
		s.renderer = nil
	}
	if s.surface != nil {
		s.surface.Destroy()
		s.surface = nil
	}
	s.backend.Quit()

	var elapsed time.Duration
	if !s.started.IsZero() {
		elapsed = s.cfg.Clock.Now().Sub(s.started)
	}
	s.logger.Info("session ended", "reason", s.reason, "frames", s.frames, "elapsed", elapsed)
}

// Run initializes, loops if initialization succeeded, and always shuts down.
func (s *Session) Run(ctx context.Context) StopReason {
	if s.Initialize() {
		s.RunLoop(ctx)
	} else {
		s.stop(StopInitFailed)
	}
	s.Shutdown()
	return s.reason
}

// Running reports whether the loop would take another frame.
func (s *Session) Running() bool {
	return s.running
}

// Reason returns why the session stopped, or StopNone while running.
func (s *Session) Reason() StopReason {
	return s.reason
}

// Frames returns the number of frames rendered.
func (s *Session) Frames() int {
	return s.frames
}
