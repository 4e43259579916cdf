package core

import "fmt"

// Vec2 is a 2D floating-point vector in world pixels.
// All operations return new values; a Vec2 is never mutated in place.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns v / s.
// Dividing by zero is a programming error and panics.
func (v Vec2) Div(s float64) Vec2 {
	if s == 0 {
		panic("core: Vec2 division by zero")
	}
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Half returns v / 2.
func (v Vec2) Half() Vec2 {
	return v.Div(2)
}

// String implements fmt.Stringer.
func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}
