package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// State is everything one step mutates.
type State struct {
	Paddle  core.Vec2 // X is the left edge, Y the vertical center
	Ball    core.Vec2 // Ball center
	BallVel core.Vec2 // Pixels per second
	Running bool
}

// NewState returns the session start state for p.
func NewState(p *Params) State {
	return State{
		Paddle:  core.Vec2{X: p.PaddleX, Y: p.FieldH / 2},
		Ball:    core.Vec2{X: p.BallStart[0], Y: p.BallStart[1]},
		BallVel: core.Vec2{X: p.BallVelocity[0], Y: p.BallVelocity[1]},
		Running: true,
	}
}

// ClampDelta restricts a step length to [0, max] seconds.
// NaN is treated as zero.
func ClampDelta(seconds, max float64) float64 {
	if math.IsNaN(seconds) {
		return 0
	}
	return core.ClampF(seconds, 0, max)
}

// Advance moves the simulation forward by dt seconds and reports the contacts
// that happened. dt is clamped to [0, p.MaxDelta] first.
func Advance(p *Params, s *State, intent core.Intent, dt float64) core.Contact {
	dt = ClampDelta(dt, p.MaxDelta)
	contacts := core.ContactNone

	// Paddle moves only with input; no drift
	if intent != core.IntentNone {
		s.Paddle.Y += float64(intent) * p.PaddleSpeed * dt
		s.Paddle.Y = core.ClampF(s.Paddle.Y, p.PaddleMinY(), p.PaddleMaxY())
	}

	s.Ball = s.Ball.Add(s.BallVel.Scale(dt))

	// Horizontal: first match wins
	diff := math.Abs(s.Paddle.Y - s.Ball.Y)
	switch {
	case diff <= p.PaddleHeight/2 &&
		s.Ball.X >= p.HitMinX && s.Ball.X <= p.HitMaxX &&
		s.BallVel.X < 0:
		s.BallVel.X = -s.BallVel.X
		contacts |= core.ContactPaddle
	case s.Ball.X <= 0:
		s.Running = false
		contacts |= core.ContactLost
	case s.Ball.X >= p.FieldW-p.Thickness && s.BallVel.X > 0:
		s.BallVel.X = -s.BallVel.X
		contacts |= core.ContactWall
	}

	// Vertical: top wins a tie with bottom
	if s.Ball.Y <= p.Thickness && s.BallVel.Y < 0 {
		s.BallVel.Y = -s.BallVel.Y
		contacts |= core.ContactWall
	} else if s.Ball.Y >= p.FieldH-p.Thickness && s.BallVel.Y > 0 {
		s.BallVel.Y = -s.BallVel.Y
		contacts |= core.ContactWall
	}

	return contacts
}
