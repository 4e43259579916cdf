// Package core provides the value types shared by the simulation and the
// terminal front-end: vectors, cell rectangles, the cell screen buffer and
// input actions. It has no external dependencies (especially no Bubble Tea)
// so the physics packages stay pure and testable.
package core

import "math"

// Rect is an integer rectangle in terminal cells, used by the renderer.
// World-space bodies use physics.Body instead.
type Rect struct {
	X, Y int // Top-left cell
	W, H int // Width and height in cells
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
// Adjacent rectangles do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Intersect returns the overlapping part of r and other.
// The result is Empty when they do not intersect.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// CellRect projects a world-space box (display position and size, in
// pixels) onto the cell grid. Any box with a positive size covers at least
// one cell, so thin platforms stay visible.
func CellRect(pos, size Vec2, pxPerCol, pxPerRow float64) Rect {
	x0 := int(math.Floor(pos.X / pxPerCol))
	y0 := int(math.Floor(pos.Y / pxPerRow))
	x1, y1 := x0, y0
	if size.X > 0 {
		x1 = max(int(math.Ceil((pos.X+size.X)/pxPerCol)), x0+1)
	}
	if size.Y > 0 {
		y1 = max(int(math.Ceil((pos.Y+size.Y)/pxPerRow)), y0+1)
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
