package physics

import "github.com/vovakirdan/tui-platformer/internal/core"

// Side names the face of the obstacle the moving body ran into, which
// selects the correction axis.
//
//	SideTop    - the mover's bottom hit the obstacle's top (landing)
//	SideBottom - the mover's top hit the obstacle's bottom (head bump)
//	SideLeft   - the mover's right hit the obstacle's left
//	SideRight  - the mover's left hit the obstacle's right
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Pen holds the four penetration depths of a moving body into an obstacle.
// All four are non-negative only when the bodies overlap.
type Pen struct {
	Bottom float64 // obstacle bottom - mover top
	Top    float64 // mover bottom - obstacle top
	Left   float64 // mover right - obstacle left
	Right  float64 // obstacle right - mover left
}

// Penetration computes the depths of a (moving) into b (obstacle).
func Penetration(a, b *Body) Pen {
	return Pen{
		Bottom: b.Bottom() - a.Y(),
		Top:    a.Bottom() - b.Y(),
		Left:   a.Right() - b.X(),
		Right:  b.Right() - a.X(),
	}
}

// Shallowest returns the side with the smallest depth. Ties resolve in the
// fixed order Bottom, Top, Left, Right.
func (p Pen) Shallowest() Side {
	side, depth := SideBottom, p.Bottom
	if p.Top < depth {
		side, depth = SideTop, p.Top
	}
	if p.Left < depth {
		side, depth = SideLeft, p.Left
	}
	if p.Right < depth {
		side = SideRight
	}
	return side
}

// CollisionSide returns the side of b that a collided with.
// a and b must overlap; the result is meaningless otherwise.
func CollisionSide(a, b *Body) Side {
	return Penetration(a, b).Shallowest()
}

// Correction returns the translation that snaps a flush against the given
// side of b, on that side's axis only.
func Correction(a, b *Body, side Side) core.Vec2 {
	switch side {
	case SideTop:
		return core.V(0, b.Y()-a.Bottom())
	case SideBottom:
		return core.V(0, b.Bottom()-a.Y())
	case SideLeft:
		return core.V(b.X()-a.Right(), 0)
	case SideRight:
		return core.V(b.Right()-a.X(), 0)
	}
	return core.Vec2{}
}
