// Package physics implements the platformer stepping engine: axis-aligned
// bodies, the penetration-based collision resolver and the per-frame
// player step. It is pure computation with no I/O and no goroutines.
package physics

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Body is an axis-aligned rectangle with a display label.
// Y grows downward, so Y is the top edge and Bottom() the bottom edge.
// Position changes only through Move.
type Body struct {
	label string
	pos   core.Vec2
	size  core.Vec2
}

// NewBody creates a body. A negative or NaN size component panics.
func NewBody(label string, pos, size core.Vec2) *Body {
	if !(size.X >= 0) || !(size.Y >= 0) {
		panic(fmt.Sprintf("physics: body %q has invalid size %v", label, size))
	}
	return &Body{label: label, pos: pos, size: size}
}

// Move translates the body by delta.
func (b *Body) Move(delta core.Vec2) {
	b.pos = b.pos.Add(delta)
}

// Label returns the display label.
func (b *Body) Label() string { return b.label }

// Pos returns the top-left corner.
func (b *Body) Pos() core.Vec2 { return b.pos }

// Size returns the width and height.
func (b *Body) Size() core.Vec2 { return b.size }

// X returns the left edge.
func (b *Body) X() float64 { return b.pos.X }

// Y returns the top edge.
func (b *Body) Y() float64 { return b.pos.Y }

// Width returns the horizontal size.
func (b *Body) Width() float64 { return b.size.X }

// Height returns the vertical size.
func (b *Body) Height() float64 { return b.size.Y }

// Right returns the right edge.
func (b *Body) Right() float64 { return b.pos.X + b.size.X }

// Bottom returns the bottom edge.
func (b *Body) Bottom() float64 { return b.pos.Y + b.size.Y }

// Center returns the midpoint of the body.
func (b *Body) Center() core.Vec2 { return b.pos.Add(b.size.Half()) }

// Overlaps reports whether b and other intersect on both axes.
// Touching edges do not count: a body resting exactly on a platform does
// not overlap it.
func (b *Body) Overlaps(other *Body) bool {
	return Overlaps(b, other)
}

// Overlaps reports whether a and b intersect. It is symmetric.
func Overlaps(a, b *Body) bool {
	return a.X() < b.Right() &&
		a.Right() > b.X() &&
		a.Y() < b.Bottom() &&
		a.Bottom() > b.Y()
}

// String implements fmt.Stringer.
func (b *Body) String() string {
	return fmt.Sprintf("%s@%v[%gx%g]", b.label, b.pos, b.size.X, b.size.Y)
}
