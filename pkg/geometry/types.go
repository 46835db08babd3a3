// Package geometry provides the small geometric types shared by the
// segmentation and OCR packages.
package geometry

import "math"

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// RectInt represents a pixel-aligned rectangle.
type RectInt struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Empty reports whether the rectangle has no area.
func (r RectInt) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Clip restricts the rectangle to an image of the given dimensions.
func (r RectInt) Clip(width, height int) RectInt {
	x := max(0, r.X)
	y := max(0, r.Y)
	w := min(r.Width-(x-r.X), width-x)
	h := min(r.Height-(y-r.Y), height-y)
	return RectInt{X: x, Y: y, Width: w, Height: h}
}

// Contains returns true if the pixel (x, y) lies inside the rectangle.
func (r RectInt) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}
