package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapTranslate(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Key
	}{
		{"w", runeKey('w'), core.KeyW},
		{"W with caps lock", runeKey('W'), core.KeyW},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp},
		{"s", runeKey('s'), core.KeyS},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEscape},
		{"space is unbound", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeyNone},
		{"x is unbound", runeKey('x'), core.KeyNone},
		{"quit is not a held key", runeKey('q'), core.KeyNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Translate(tc.msg); got != tc.expected {
				t.Errorf("Translate(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp() should list bindings")
	}
	total := 0
	for _, group := range km.FullHelp() {
		total += len(group)
	}
	if total != 5 {
		t.Errorf("FullHelp() lists %d bindings, expected 5", total)
	}
}
