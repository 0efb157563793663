package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform"
)

// frameMsg carries a rendered frame from Present to the program.
type frameMsg string

// titleMsg asks the program to set the terminal title.
type titleMsg string

// model is the Bubble Tea model of the backend. It owns no game state: it
// records key presses for the session and displays whatever was last presented.
type model struct {
	b     *Backend
	help  help.Model
	frame string
}

func newModel(b *Backend) model {
	h := help.New()
	h.ShowAll = false
	return model{b: b, help: h}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.b.resize(msg.Width, msg.Height)

	case frameMsg:
		m.frame = string(msg)

	case titleMsg:
		return m, tea.SetWindowTitle(string(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.b.keys.Quit):
		m.b.queue.Push(platform.Event{Type: platform.EventQuit})
	case key.Matches(msg, m.b.keys.Screenshot):
		m.b.saveScreenshot()
	default:
		if k := m.b.keys.Translate(msg); k != core.KeyNone {
			m.b.hold.Press(k)
		}
	}
}

// View renders the last presented frame above the help footer.
func (m model) View() string {
	if m.frame == "" {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.frame, m.help.View(m.b.keys))
}
