// Package shell is the empty game: it opens a surface, clears it to blue
// every frame, and runs until the player quits.
package shell

import (
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Game implements a game with no simulation.
type Game struct {
	ticks int
}

// New creates a new empty game.
func New() *Game {
	return &Game{}
}

func (g *Game) ID() string    { return "shell" }
func (g *Game) Title() string { return "Shell" }

// Reset clears the tick counter.
func (g *Game) Reset() {
	g.ticks = 0
}

// Step only counts ticks; input and time are ignored.
func (g *Game) Step(_ core.Intent, _ float64) core.StepResult {
	g.ticks++
	return core.StepResult{State: g.State()}
}

// Render clears the surface to blue.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear(core.ColorBlue)
}

// State always reports a running game.
func (g *Game) State() core.GameState {
	return core.GameState{Running: true, Ticks: g.ticks}
}

func init() {
	registry.Register("shell", func() registry.Game {
		return New()
	})
}
