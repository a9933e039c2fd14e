// Package core provides fundamental types and utilities for the smashbing
// simulation. It contains no external dependencies to keep game logic pure
// and testable.
package core

// Rect is an axis-aligned box in arena space (y-up).
// Callers keep Left <= Right and Bottom <= Top; translation preserves size.
type Rect struct {
	Left, Right float64
	Bottom, Top float64
}

// NewRect creates a rectangle from its four edges.
func NewRect(left, right, bottom, top float64) Rect {
	return Rect{Left: left, Right: right, Bottom: bottom, Top: top}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Top - r.Bottom
}

// Contains returns true if p lies inside the rectangle.
// All four edges are inclusive.
func (r Rect) Contains(p Vector2) bool {
	inX := r.Left <= p.X && p.X <= r.Right
	inY := r.Bottom <= p.Y && p.Y <= r.Top
	return inX && inY
}

// Translate moves the rectangle by (dx, dy) in place.
func (r *Rect) Translate(dx, dy float64) {
	r.Left += dx
	r.Right += dx
	r.Bottom += dy
	r.Top += dy
}

// Translated returns a copy moved by (dx, dy).
func (r Rect) Translated(dx, dy float64) Rect {
	r.Translate(dx, dy)
	return r
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vector2 {
	return Vector2{
		X: (r.Left + r.Right) / 2,
		Y: (r.Bottom + r.Top) / 2,
	}
}

// DistanceTo returns the per-axis signed distance from the rectangle to p.
// An axis where p is within the rectangle's span contributes zero.
func (r Rect) DistanceTo(p Vector2) Vector2 {
	var d Vector2
	switch {
	case p.X < r.Left:
		d.X = p.X - r.Left
	case p.X > r.Right:
		d.X = p.X - r.Right
	}
	switch {
	case p.Y > r.Top:
		d.Y = p.Y - r.Top
	case p.Y < r.Bottom:
		d.Y = p.Y - r.Bottom
	}
	return d
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
