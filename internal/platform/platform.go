// Package platform defines the windowing collaborator the session drives:
// surface creation, event polling, keyboard state, and rectangle drawing.
// Backends live in the subpackages.
package platform

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// EventType identifies a platform event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit           // Window closed or Ctrl+C
)

// Event is one entry of the backend's event queue.
type Event struct {
	Type EventType
}

// Backend is the windowing library. A Backend is created per session.
type Backend interface {
	// Init starts the library. Must be called before anything else.
	Init() error

	// CreateSurface opens the window the game draws into.
	CreateSurface(title string, x, y, width, height int) (Surface, error)

	// CreateRenderer creates the render context for a surface.
	CreateRenderer(s Surface) (Renderer, error)

	// PollEvents drains the event queue without blocking.
	PollEvents() []Event

	// KeyboardState returns the instantaneous held-key state.
	KeyboardState() core.KeyboardState

	// Quit shuts the library down. Safe to call after a failed Init.
	Quit()
}

// Surface is an open window.
type Surface interface {
	Destroy()
}

// Renderer draws into a surface's back buffer.
type Renderer interface {
	core.Canvas

	// Present swaps the back buffer onto the surface.
	Present()

	Destroy()
}

// Factory builds a backend; the holdWindow tells terminal backends how long a
// key press counts as held.
type Factory func(holdWindow time.Duration) Backend
