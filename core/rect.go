package core

// Rect is an axis-aligned region in logical canvas coordinates
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Contains reports whether (x, y) lies in the half-open box [X, X+W) x [Y, Y+H)
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}
