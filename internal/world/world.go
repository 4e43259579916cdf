// Package world holds the scenario's bodies, the controllable player and
// the camera that keeps the focused body centred in the viewport.
package world

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// Sprite is what the renderer needs to place one body on screen.
type Sprite struct {
	Label   string
	Size    core.Vec2
	World   core.Vec2 // top-left in world space
	Display core.Vec2 // top-left in viewport space (World + camera)
	Player  bool
	Focused bool
}

// World owns every body of a scenario. It is not safe for concurrent use;
// the simulation loop is its only owner.
type World struct {
	bodies    []*physics.Body
	obstacles []*physics.Body
	player    int
	focus     int
	state     physics.PlayerState
	camera    core.Vec2
}

// New creates a world from bodies in insertion order. player selects the
// controllable body and focus the body the camera follows. Out-of-range
// indices are a construction bug and panic.
func New(bodies []*physics.Body, player, focus int) *World {
	mustIndex(len(bodies), player, "player")
	mustIndex(len(bodies), focus, "focus")

	obstacles := make([]*physics.Body, 0, len(bodies)-1)
	for i, b := range bodies {
		if i != player {
			obstacles = append(obstacles, b)
		}
	}

	return &World{
		bodies:    bodies,
		obstacles: obstacles,
		player:    player,
		focus:     focus,
	}
}

func mustIndex(n, i int, what string) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("world: %s index %d out of range [0, %d)", what, i, n))
	}
}

// Len returns the number of bodies.
func (w *World) Len() int { return len(w.bodies) }

// Body returns the i-th body in insertion order.
func (w *World) Body(i int) *physics.Body { return w.bodies[i] }

// Player returns the controllable body.
func (w *World) Player() *physics.Body { return w.bodies[w.player] }

// PlayerIndex returns the index of the controllable body.
func (w *World) PlayerIndex() int { return w.player }

// PlayerState returns a copy of the player's velocity and grounded flag.
func (w *World) PlayerState() physics.PlayerState { return w.state }

// Focus returns the index of the body the camera follows.
func (w *World) Focus() int { return w.focus }

// SetFocus changes the camera target. It takes effect on the next Update.
func (w *World) SetFocus(i int) {
	mustIndex(len(w.bodies), i, "focus")
	w.focus = i
}

// CycleFocus moves the camera target to the next body, wrapping around.
func (w *World) CycleFocus() {
	w.focus = (w.focus + 1) % len(w.bodies)
}

// Camera returns the offset computed by the last Update.
func (w *World) Camera() core.Vec2 { return w.camera }

// Update recomputes the camera so the focused body is centred in a
// viewport of the given size.
func (w *World) Update(viewport core.Vec2) {
	f := w.bodies[w.focus]
	w.camera = f.Pos().Neg().Sub(f.Size().Half()).Add(viewport.Half())
}

// DisplayPosition returns body i's top-left relative to the viewport.
func (w *World) DisplayPosition(i int) core.Vec2 {
	return w.bodies[i].Pos().Add(w.camera)
}

// Advance runs one physics step for the player against every other body,
// then refreshes the camera.
func (w *World) Advance(in physics.Input, dt float64, p physics.Params, viewport core.Vec2) physics.StepResult {
	res := physics.Step(w.Player(), &w.state, w.obstacles, in, dt, p)
	for i := range res.Contacts {
		res.Contacts[i].Index = w.bodyIndex(res.Contacts[i].Index)
	}
	w.Update(viewport)
	return res
}

// bodyIndex maps an obstacle index back to its body index.
func (w *World) bodyIndex(obstacle int) int {
	if obstacle >= w.player {
		return obstacle + 1
	}
	return obstacle
}

// Sprites returns a render snapshot of every body in insertion order.
func (w *World) Sprites() []Sprite {
	out := make([]Sprite, len(w.bodies))
	for i, b := range w.bodies {
		out[i] = Sprite{
			Label:   b.Label(),
			Size:    b.Size(),
			World:   b.Pos(),
			Display: b.Pos().Add(w.camera),
			Player:  i == w.player,
			Focused: i == w.focus,
		}
	}
	return out
}
