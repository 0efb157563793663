package session

import (
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform"
)

// Sample is the input read at the top of one frame.
type Sample struct {
	Quit   bool        // A quit event was in the queue
	Escape bool        // Escape is held
	Intent core.Intent // Net paddle direction
}

// SampleInput converts drained events and the held-key state into a Sample.
// Up (W or Up arrow) and down (S or Down arrow) are read independently, so
// holding both cancels out to no movement.
func SampleInput(events []platform.Event, keys core.KeyboardState) Sample {
	var s Sample
	for _, e := range events {
		if e.Type == platform.EventQuit {
			s.Quit = true
		}
	}

	if keys == nil {
		return s
	}

	s.Escape = keys.Pressed(core.KeyEscape)

	if keys.Pressed(core.KeyW) || keys.Pressed(core.KeyUp) {
		s.Intent += core.IntentUp
	}
	if keys.Pressed(core.KeyS) || keys.Pressed(core.KeyDown) {
		s.Intent += core.IntentDown
	}
	return s
}

// SampleFrom drains b's event queue and reads its keyboard state.
func SampleFrom(b platform.Backend) Sample {
	return SampleInput(b.PollEvents(), b.KeyboardState())
}
