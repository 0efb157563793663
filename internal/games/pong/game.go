// Package pong implements single-paddle Pong: the player guards the left edge
// while the ball bounces off the top, bottom and right walls.
package pong

import (
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Colors used for rendering
var (
	BackgroundColor = core.ColorBlue
	ShapeColor      = core.ColorWhite
)

// Game implements the Pong game logic.
type Game struct {
	params *Params
	state  State
	ticks  int
}

// New creates a new Pong game instance with the default constants.
func New() *Game {
	return NewWithParams(DefaultParams())
}

// NewWithParams creates a game around an existing set of constants.
func NewWithParams(p *Params) *Game {
	g := &Game{params: p}
	g.Reset()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Params returns the constants the game runs with.
func (g *Game) Params() *Params {
	return g.params
}

// Reset puts the paddle and ball back at their start positions.
func (g *Game) Reset() {
	g.state = NewState(g.params)
	g.ticks = 0
}

// Step advances the game by dt seconds. A stopped game does not move.
func (g *Game) Step(in core.Intent, dt float64) core.StepResult {
	if !g.state.Running {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	contacts := Advance(g.params, &g.state, in, dt)

	return core.StepResult{State: g.State(), Contacts: contacts}
}

// Render draws the walls, paddle and ball over a blue background.
func (g *Game) Render(dst core.Canvas) {
	p := g.params
	dst.Clear(BackgroundColor)

	// Walls: top, bottom, right
	dst.FillRect(core.NewRect(0, 0, p.FieldW, p.Thickness), ShapeColor)
	dst.FillRect(core.NewRect(0, p.FieldH-p.Thickness, p.FieldW, p.Thickness), ShapeColor)
	dst.FillRect(core.NewRect(p.FieldW-p.Thickness, 0, p.Thickness, p.FieldH), ShapeColor)

	dst.FillRect(core.NewRect(
		g.state.Paddle.X,
		g.state.Paddle.Y-p.PaddleHeight/2,
		p.Thickness,
		p.PaddleHeight,
	), ShapeColor)

	dst.FillRect(core.CenteredRect(g.state.Ball, p.Thickness, p.Thickness), ShapeColor)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Running: g.state.Running,
		Ticks:   g.ticks,
	}
}

// Snapshot returns a copy of the simulation state.
func (g *Game) Snapshot() State {
	return g.state
}

// Register the game with the registry
func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}
