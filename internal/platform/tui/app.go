package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

type screenState int

const (
	stateMenu screenState = iota
	statePlay
	stateRuns
)

// SessionModel manages the full flow: menu -> play or runs -> menu.
// It is the top-level model for `platformer menu` and SSH sessions.
type SessionModel struct {
	opts     Options
	state    screenState
	menu     MenuModel
	play     *Model
	runs     RunsModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts Options) SessionModel {
	opts = opts.withDefaults()
	return SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Runtime, opts.Config.Render),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.state {
	case statePlay:
		return m.updatePlay(msg)
	case stateRuns:
		return m.updateRuns(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsRuns() {
		m.state = stateRuns
		m.runs = NewRunsModel(m.opts.Store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		return m, m.runs.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		s, err := registry.Get(selected.ID)
		if err != nil {
			// Shouldn't happen since menu only shows registered scenarios
			m.opts.Logger.Error("cannot start scenario", "scenario", selected.ID, "error", err)
			m.menu = NewMenuModel(m.opts.Runtime, m.opts.Config.Render)
			return m, nil
		}

		play := NewModel(s, m.opts)
		m.play = &play
		m.state = statePlay
		return m, m.play.Init()
	}

	return m, cmd
}

// updatePlay handles updates while a scenario is running.
func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.play.Update(msg)
	if playModel, ok := newModel.(Model); ok {
		m.play = &playModel
	}

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.play.BackToMenu() {
		m.play = nil
		return m.backToMenu()
	}

	return m, cmd
}

// updateRuns handles updates on the runs board.
func (m SessionModel) updateRuns(msg tea.Msg) (tea.Model, tea.Cmd) {
	newRuns, cmd := m.runs.Update(msg)
	if runsModel, ok := newRuns.(RunsModel); ok {
		m.runs = runsModel
	}

	if m.runs.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.runs.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.state = stateMenu
	m.menu = NewMenuModel(m.opts.Runtime, m.opts.Config.Render)
	return m, m.menu.Init()
}

// Shutdown stops a scenario that is still running, recording its run.
func (m SessionModel) Shutdown() {
	if m.play != nil {
		m.play.finish()
	}
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case statePlay:
		return m.play.View()
	case stateRuns:
		return m.runs.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven flow until the user quits.
func RunSession(opts Options) error {
	p := tea.NewProgram(NewSessionModel(opts), tea.WithAltScreen())
	final, err := p.Run()
	if sm, ok := final.(SessionModel); ok {
		sm.Shutdown()
	}
	return err
}
