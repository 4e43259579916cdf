package physics

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Params are the movement constants, in pixels and seconds.
type Params struct {
	Speed          float64 // horizontal run speed
	JumpSpeed      float64 // vertical velocity set on jump (negative is up)
	Gravity        float64 // downward acceleration while airborne
	GroundFriction float64 // horizontal deceleration while grounded
	AirFriction    float64 // horizontal deceleration while airborne
}

// DefaultParams returns the classic tuning.
func DefaultParams() Params {
	return Params{
		Speed:          600,
		JumpSpeed:      -1200,
		Gravity:        3600,
		GroundFriction: 7200,
		AirFriction:    1800,
	}
}

// Input is the held-direction state sampled once per frame.
// When Left and Right are both held, Left wins.
type Input struct {
	Left  bool
	Right bool
	Up    bool
}

// PlayerState is the extra state of the controllable body.
// Grounded is derived from collisions every frame and never set by input.
type PlayerState struct {
	Velocity core.Vec2
	Grounded bool
}

// Contact records one obstacle overlap found during a step.
type Contact struct {
	Index   int  // position of the obstacle in the obstacle slice
	Side    Side // side of the obstacle that was hit
	Applied bool // false when a Top/Bottom correction was gated off by vy
}

// StepResult summarizes one frame.
type StepResult struct {
	Contacts []Contact // in obstacle order
	Grounded bool
	Jumped   bool
}

// Step advances the player by dt seconds against the obstacles.
//
// Obstacles are resolved one at a time in slice order and each correction
// is applied before the next overlap test, so the final position can depend
// on that order when several obstacles overlap in the same frame.
func Step(actor *Body, st *PlayerState, obstacles []*Body, in Input, dt float64, p Params) StepResult {
	if in.Left {
		st.Velocity.X = -p.Speed
	} else if in.Right {
		st.Velocity.X = p.Speed
	}

	actor.Move(st.Velocity.Scale(dt))

	var res StepResult
	st.Grounded = false
	for i, ob := range obstacles {
		if ob == actor || !actor.Overlaps(ob) {
			continue
		}
		c := Contact{Index: i, Side: CollisionSide(actor, ob)}
		c.Applied = resolve(actor, st, ob, c.Side)
		res.Contacts = append(res.Contacts, c)
	}

	friction := p.AirFriction
	if st.Grounded {
		friction = p.GroundFriction
	}
	st.Velocity.X = ApplyFriction(st.Velocity.X, friction*dt)

	if st.Grounded {
		if in.Up {
			st.Velocity.Y = p.JumpSpeed
			res.Jumped = true
		} else {
			st.Velocity.Y = 0
		}
	} else {
		st.Velocity.Y += p.Gravity * dt
	}

	res.Grounded = st.Grounded
	return res
}

// resolve applies the correction policy for one contact and reports
// whether anything was changed.
func resolve(actor *Body, st *PlayerState, ob *Body, side Side) bool {
	switch side {
	case SideTop:
		if st.Velocity.Y < 0 {
			return false
		}
		st.Grounded = true
	case SideBottom:
		if st.Velocity.Y > 0 {
			return false
		}
		st.Velocity.Y = 0
	case SideLeft, SideRight:
		st.Velocity.X = 0
	}
	actor.Move(Correction(actor, ob, side))
	return true
}

// ApplyFriction reduces |v| by amount, stopping at zero. The sign of v is
// preserved and the magnitude never grows.
func ApplyFriction(v, amount float64) float64 {
	if v == 0 {
		return 0
	}
	return math.Copysign(math.Max(math.Abs(v)-math.Abs(amount), 0), v)
}
