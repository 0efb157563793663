package core

// Key identifies a logical key, abstracted from backend-specific key codes.
// Only the keys the games read are modelled.
type Key int

const (
	KeyNone   Key = iota
	KeyW          // W - paddle up
	KeyS          // S - paddle down
	KeyUp         // Up arrow - paddle up
	KeyDown       // Down arrow - paddle down
	KeyEscape     // Esc - end the session
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// KeyboardState reports whether a key is currently held.
// It is queried once per frame rather than consumed as events.
type KeyboardState interface {
	Pressed(k Key) bool
}

// KeySet is a fixed KeyboardState, handy for snapshots and tests.
type KeySet map[Key]bool

// Pressed returns true if k is in the set.
func (s KeySet) Pressed(k Key) bool {
	return s[k]
}

// NewKeySet creates a KeySet with the given keys held.
func NewKeySet(keys ...Key) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = true
	}
	return s
}

// Intent is the net one-dimensional paddle direction for a frame: -1 (up), 0 or +1 (down).
type Intent int

const (
	IntentUp   Intent = -1
	IntentNone Intent = 0
	IntentDown Intent = 1
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "Up"
	case IntentNone:
		return "None"
	case IntentDown:
		return "Down"
	default:
		return "Unknown"
	}
}
