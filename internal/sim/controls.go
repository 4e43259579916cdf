// Package sim runs the physics on its own goroutine and hands render
// snapshots to the UI.
package sim

import (
	"sync/atomic"

	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// Controls is the state shared between the input handler and the loop.
// It has a single writer (the input side) and a single reader (the loop);
// a read may be one frame stale.
type Controls struct {
	left    atomic.Bool
	right   atomic.Bool
	up      atomic.Bool
	closing atomic.Bool
	focus   atomic.Uint32 // focus-cycle requests issued so far
}

// Set stores all three held flags at once.
func (c *Controls) Set(in physics.Input) {
	c.left.Store(in.Left)
	c.right.Store(in.Right)
	c.up.Store(in.Up)
}

// Snapshot reads the held flags.
func (c *Controls) Snapshot() physics.Input {
	return physics.Input{
		Left:  c.left.Load(),
		Right: c.right.Load(),
		Up:    c.up.Load(),
	}
}

// CycleFocus asks the loop to move the camera to the next body.
func (c *Controls) CycleFocus() { c.focus.Add(1) }

// focusRequests returns the number of CycleFocus calls so far.
func (c *Controls) focusRequests() uint32 { return c.focus.Load() }

// Close asks the loop to stop. It is safe to call more than once.
func (c *Controls) Close() { c.closing.Store(true) }

// Closing reports whether Close was called.
func (c *Controls) Closing() bool { return c.closing.Load() }
