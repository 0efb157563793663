package core

// Canvas is the drawing surface games render into.
// Coordinates are playfield coordinates; the implementation handles any scaling.
type Canvas interface {
	// Clear fills the whole surface with c.
	Clear(c Color)

	// FillRect draws a filled rectangle.
	FillRect(r Rect, c Color)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the session.
type GameState struct {
	Running bool // False once the session should stop
	Ticks   int  // Simulation steps taken since Reset
}

// Contact is a bit set of collisions that happened during one step.
type Contact uint8

const (
	ContactPaddle Contact = 1 << iota // Ball bounced off the paddle
	ContactWall                       // Ball bounced off a wall
	ContactLost                       // Ball left through the left boundary
	ContactNone   Contact = 0
)

// Has returns true if every bit of o is set in c.
func (c Contact) Has(o Contact) bool {
	return o != 0 && c&o == o
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State    GameState
	Contacts Contact
}
