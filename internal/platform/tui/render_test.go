package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestRenderScreenDimensions(t *testing.T) {
	s := core.NewScreen(12, 5, 1024, 768)
	s.Clear(core.ColorBlue)
	s.FillRect(core.NewRect(0, 0, 1024, 15), core.ColorWhite)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")

	if len(lines) != 5 {
		t.Fatalf("got %d lines, expected 5", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("line %d width = %d, expected 12", i, w)
		}
	}
}

func TestStyleCacheReuse(t *testing.T) {
	c := styleCache{}
	c.get(core.ColorBlue)
	c.get(core.ColorBlue)
	c.get(core.ColorWhite)

	if len(c) != 2 {
		t.Errorf("cache holds %d styles, expected 2", len(c))
	}
}
