// Package core provides fundamental types and utilities for Star Drift.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep game logic pure and testable.
package core

// Rect represents an axis-aligned rectangle of terminal cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec2 is a point or displacement in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Box is an axis-aligned bounding box in world units.
// Every spatial entity in the game is described by one.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height, never negative
}

// NewBox creates a box at (x, y) with the given size.
// Negative sizes are treated as zero.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
}

// BoxAt creates a box of the given size whose center is (cx, cy).
func BoxAt(cx, cy, w, h float64) Box {
	w, h = max(w, 0), max(h, 0)
	return NewBox(cx-w/2, cy-h/2, w, h)
}

// Pos returns the top-left corner.
func (b Box) Pos() Vec2 {
	return Vec2{X: b.X, Y: b.Y}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() Vec2 {
	return Vec2{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Intersects returns true if the two boxes overlap with a positive area.
// Touching edges and empty boxes never intersect.
func (b Box) Intersects(other Box) bool {
	if b.W <= 0 || b.H <= 0 || other.W <= 0 || other.H <= 0 {
		return false
	}
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Contains returns true if p lies inside the box (right and bottom edges exclusive).
func (b Box) Contains(p Vec2) bool {
	return p.X >= b.X && p.X < b.Right() && p.Y >= b.Y && p.Y < b.Bottom()
}

// Inset shrinks the box by d on every side, keeping its center.
// A negative d grows the box. The size never drops below zero.
func (b Box) Inset(d float64) Box {
	c := b.Center()
	return BoxAt(c.X, c.Y, b.W-2*d, b.H-2*d)
}

// Inflate grows the box by dx horizontally and dy vertically in total,
// keeping its center.
func (b Box) Inflate(dx, dy float64) Box {
	c := b.Center()
	return BoxAt(c.X, c.Y, b.W+dx, b.H+dy)
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	b.X += dx
	b.Y += dy
	return b
}

// ClampInside moves the box so it lies fully inside [0,w] x [0,h].
// A box larger than the bounds on an axis is centered on that axis.
func (b Box) ClampInside(w, h float64) Box {
	if b.W >= w {
		b.X = (w - b.W) / 2
	} else {
		b.X = ClampF(b.X, 0, w-b.W)
	}
	if b.H >= h {
		b.Y = (h - b.H) / 2
	} else {
		b.Y = ClampF(b.Y, 0, h-b.H)
	}
	return b
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
