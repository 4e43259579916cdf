package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/scenario"
)

func init() {
	registry.Register(scenario.MustParse([]byte(testLevel)))
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(Options{
		Config:  config.Default(),
		Runtime: core.RuntimeConfig{ScreenW: 100, ScreenH: 30},
	})

	// Select the first scenario.
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != statePlay || m.play == nil {
		t.Fatalf("state = %d, expected play", m.state)
	}
	t.Cleanup(m.Shutdown)

	// Back to the menu.
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateMenu || m.play != nil {
		t.Fatalf("state = %d, expected menu", m.state)
	}

	// Runs board and back.
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state != stateRuns {
		t.Fatalf("state = %d, expected runs", m.state)
	}
	if m.View() == "" {
		t.Error("runs view is empty")
	}
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateMenu {
		t.Fatalf("state = %d, expected menu", m.state)
	}

	m, cmd := sessionUpdate(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q did not quit the session")
	}
}

func TestSessionTracksWindowSize(t *testing.T) {
	m := NewSessionModel(Options{Config: config.Default()})
	m, _ = sessionUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.opts.Runtime.ScreenW != 120 || m.opts.Runtime.ScreenH != 40 {
		t.Errorf("runtime = %+v", m.opts.Runtime)
	}
}
