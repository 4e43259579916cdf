package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/scenario"
	"github.com/vovakirdan/tui-platformer/internal/sim"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Options are shared by every model that can start a play session.
type Options struct {
	Config  config.Config
	Preset  string
	Store   *storage.Store // nil disables run history
	Logger  *log.Logger    // nil discards
	Player  string         // recorded with each run
	Runtime core.RuntimeConfig
	Context context.Context  // parent of every loop, default Background
	Now     func() time.Time // default time.Now
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Player == "" {
		o.Player = "local"
	}
	if o.Context == nil {
		o.Context = context.Background()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Runtime.ScreenW <= 0 || o.Runtime.ScreenH <= 0 {
		o.Runtime = core.DefaultConfig()
	}
	return o
}

// playSession is one run of a scenario: a fresh world and its loop.
// The goroutine running the loop records the run when the loop returns,
// whichever way it was stopped.
type playSession struct {
	id       string
	loop     *sim.Loop
	controls *sim.Controls
	ctx      context.Context
	cancel   context.CancelFunc
	record   func(id string, st sim.Stats, fps float64)
	saved    chan struct{} // closed once the run is recorded
	running  bool
	finished bool
	stats    sim.Stats // valid after saved is closed
}

// Model is the Bubble Tea model for playing one scenario.
type Model struct {
	scenario   *scenario.Scenario
	opts       Options
	session    *playSession
	screen     *core.Screen
	hold       *HoldTracker
	keyMapper  *KeyMapper
	help       help.Model
	frame      sim.Frame
	hasFrame   bool
	standalone bool // quit instead of going back to a menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given scenario.
func NewModel(s *scenario.Scenario, opts Options) Model {
	opts = opts.withDefaults()

	m := Model{
		scenario:  s,
		opts:      opts,
		screen:    core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 1)),
		hold:      NewHoldTracker(time.Duration(opts.Config.Render.HoldMillis) * time.Millisecond),
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
	m.help.Width = opts.Runtime.ScreenW
	m.session = m.newSession()
	return m
}

func (m Model) newSession() *playSession {
	controls := &sim.Controls{}
	lo := sim.OptionsFrom(m.opts.Config, m.viewport())
	lo.Logger = m.opts.Logger
	ctx, cancel := context.WithCancel(m.opts.Context)

	return &playSession{
		id:       uuid.NewString(),
		loop:     sim.NewLoop(m.scenario.Build(), controls, lo),
		controls: controls,
		ctx:      ctx,
		cancel:   cancel,
		record:   recordRun(m.scenario.ID(), m.opts),
		saved:    make(chan struct{}),
	}
}

// recordRun logs a finished run and saves it when a store is set.
func recordRun(scenarioID string, opts Options) func(string, sim.Stats, float64) {
	return func(id string, st sim.Stats, fps float64) {
		opts.Logger.Info("run finished",
			"scenario", scenarioID,
			"run", id,
			"frames", st.Frames,
			"skipped", st.Skipped,
			"jumps", st.Jumps,
		)

		if opts.Store == nil || st.Frames == 0 {
			return
		}
		_, err := opts.Store.SaveRun(storage.Run{
			RunID:       id,
			ScenarioID:  scenarioID,
			Player:      opts.Player,
			Preset:      opts.Preset,
			Frames:      st.Frames,
			Skipped:     st.Skipped,
			Jumps:       st.Jumps,
			MaxDistance: st.MaxDistance,
			Elapsed:     st.Elapsed,
			AvgFPS:      fps,
		})
		if err != nil {
			opts.Logger.Warn("could not save run", "run", id, "error", err)
		}
	}
}

// viewport is the screen size in world pixels.
func (m Model) viewport() core.Vec2 {
	rt := core.RuntimeConfig{ScreenW: m.screen.Width(), ScreenH: m.screen.Height()}
	return rt.Viewport(m.opts.Config.Render.PixelsPerCol, m.opts.Config.Render.PixelsPerRow)
}

// start launches the session's loop on its own goroutine.
func (s *playSession) start() {
	s.running = true
	go func() {
		defer close(s.saved)
		s.stats = s.loop.Run(s.ctx)
		s.record(s.id, s.stats, s.loop.FPS())
	}()
}

// Init starts the simulation loop.
func (m Model) Init() tea.Cmd {
	m.session.start()
	return tea.Batch(waitForFrame(m.session), tickCmd(uiTickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if !m.session.finished {
			m.session.controls.Set(m.hold.Input(time.Time(msg)))
		}
		return m, tickCmd(uiTickRate)

	case FrameMsg:
		if msg.session != m.session {
			return m, nil
		}
		m.frame = msg.Frame
		m.hasFrame = true
		return m, waitForFrame(m.session)

	case loopDoneMsg:
		// The parent context ended (e.g. the SSH client went away).
		if msg.session == m.session {
			m.finish()
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	now := m.opts.Now()
	switch action := m.keyMapper.MapKey(msg); action {
	case core.ActionQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.finish()
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil

	case core.ActionReset:
		m.finish()
		m.hold.ReleaseAll()
		m.session = m.newSession()
		m.session.start()
		m.hasFrame = false
		return m, waitForFrame(m.session)

	case core.ActionFocus:
		m.session.controls.CycleFocus()

	case core.ActionLeft, core.ActionRight, core.ActionJump:
		m.hold.Press(action, now)
		m.session.controls.Set(m.hold.Input(now))
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	m.session.loop.SetViewport(m.viewport())
	return m, nil
}

// finish stops the current loop and waits for its run to be recorded.
// A session that never started has stepped by hand (tests) or not at all.
func (m *Model) finish() {
	s := m.session
	if s == nil || s.finished {
		return
	}
	s.finished = true
	s.controls.Close()
	s.cancel()
	if s.running {
		<-s.saved
		return
	}
	s.stats = s.loop.Stats()
	s.record(s.id, s.stats, s.loop.FPS())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	dir := config.DataDir()
	if dir == "" {
		return
	}
	dir = filepath.Join(dir, "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := m.opts.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.scenario.ID(), timestamp))

	//nolint:errcheck // Best-effort save, play continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.hasFrame {
		DrawFrame(m.screen, m.frame, m.opts.Config.Render, m.scenario.Title())
	} else {
		m.screen.Clear()
		m.screen.DrawTextCentered(m.screen.Height()/2, "loading "+m.scenario.Title()+"...", core.ColorGray)
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Stats returns the counters of the last finished run.
func (m Model) Stats() sim.Stats {
	return m.session.stats
}

// Run plays one scenario until the user quits or goes back.
func Run(s *scenario.Scenario, opts Options) error {
	model := NewModel(s, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.finish()
	}
	return err
}
