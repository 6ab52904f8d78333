// Package core holds what games and hosts share: the screen grid, input
// frames, runtime config and small geometry helpers. It imports no UI code.
package core

// Rect is a block of terminal cells, such as a card face.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// Right is the first column past r.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past r.
func (r Rect) Bottom() int { return r.Y + r.H }

// Center returns the middle cell, rounding towards the top-left.
func (r Rect) Center() (x, y int) { return r.X + r.W/2, r.Y + r.H/2 }

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int { return min(max(v, lo), hi) }

func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Vec2 is a point or offset in grid space, where the board spans 0..1 on
// both axes.
type Vec2 struct {
	X, Y float64
}
