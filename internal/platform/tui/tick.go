// Package tui provides the Bubble Tea front-end for the platformer.
// The physics runs on its own goroutine (see internal/sim); this package
// maps keys to held flags and draws the frames the loop publishes.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/sim"
)

// uiTickRate is how often held-key state is re-sampled.
const uiTickRate = 30

// TickMsg is sent to re-sample the hold tracker.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// FrameMsg carries a frame published by a session's loop.
type FrameMsg struct {
	session *playSession
	Frame   sim.Frame
}

// loopDoneMsg reports that a session's loop has returned.
type loopDoneMsg struct {
	session *playSession
}

// waitForFrame blocks until the loop publishes a frame or stops.
func waitForFrame(s *playSession) tea.Cmd {
	return func() tea.Msg {
		select {
		case f := <-s.loop.Frames():
			return FrameMsg{session: s, Frame: f}
		case <-s.loop.Done():
			return loopDoneMsg{session: s}
		}
	}
}
