package tui

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// firstHoldFactor stretches the hold after a fresh press to cover the
// terminal's auto-repeat delay, which is longer than the repeat interval.
const firstHoldFactor = 3

// HoldTracker emulates key release for terminals, which only report
// presses. A held action stays held until its deadline passes without a
// repeat.
type HoldTracker struct {
	hold      time.Duration
	deadlines map[core.Action]time.Time
}

// NewHoldTracker creates a tracker where a repeat keeps a key held for
// hold.
func NewHoldTracker(hold time.Duration) *HoldTracker {
	return &HoldTracker{
		hold:      hold,
		deadlines: make(map[core.Action]time.Time),
	}
}

// Press records a press at now. Pressing one direction releases the
// other. Non-held actions are ignored.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if !a.Held() {
		return
	}

	switch a {
	case core.ActionLeft:
		delete(h.deadlines, core.ActionRight)
	case core.ActionRight:
		delete(h.deadlines, core.ActionLeft)
	}

	d := h.hold
	if !h.Held(a, now) {
		d *= firstHoldFactor
	}
	h.deadlines[a] = now.Add(d)
}

// Held reports whether a is still held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	deadline, ok := h.deadlines[a]
	return ok && !now.After(deadline)
}

// Input returns the physics input at now.
func (h *HoldTracker) Input(now time.Time) physics.Input {
	return physics.Input{
		Left:  h.Held(core.ActionLeft, now),
		Right: h.Held(core.ActionRight, now),
		Up:    h.Held(core.ActionJump, now),
	}
}

// ReleaseAll forgets every press.
func (h *HoldTracker) ReleaseAll() {
	clear(h.deadlines)
}
