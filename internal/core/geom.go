// Package core provides fundamental field types and utilities for the simulator.
// It contains no external dependencies to keep engine logic pure and testable.
package core

import "math"

// Field dimensions in yards. Y runs from the offense's own end line (0)
// to the opponent's end line (FieldLength); each end zone is EndZoneDepth deep.
const (
	FieldWidth   = 53.3
	FieldLength  = 120.0
	EndZoneDepth = 10.0
)

// Vec is a point or direction on the field, in yards.
type Vec struct {
	X, Y float64
}

// V creates a new vector.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between two points.
func (v Vec) Dist(o Vec) float64 {
	return v.Sub(o).Len()
}

// Unit returns the normalized vector, or the zero vector for zero length.
func (v Vec) Unit() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Lerp returns the point a fraction t of the way from v to o.
func (v Vec) Lerp(o Vec, t float64) Vec {
	return Vec{X: v.X + (o.X-v.X)*t, Y: v.Y + (o.Y-v.Y)*t}
}

// ClampToField restricts a point to the playing surface including end zones.
func ClampToField(v Vec) Vec {
	return Vec{
		X: ClampF(v.X, 0, FieldWidth),
		Y: ClampF(v.Y, 0, FieldLength),
	}
}

// InField reports whether the point lies on the playing surface.
func InField(v Vec) bool {
	return v.X >= 0 && v.X <= FieldWidth && v.Y >= 0 && v.Y <= FieldLength
}

// GoalLine returns the Y coordinate of the goal line the offense attacks.
func GoalLine() float64 {
	return FieldLength - EndZoneDepth
}

// CenterX is the middle of the field across.
const CenterX = FieldWidth / 2

// LineOfScrimmage converts a 0–100 ball spot into a field Y coordinate.
func LineOfScrimmage(ballOn int) float64 {
	return EndZoneDepth + float64(Clamp(ballOn, 0, 100))
}

// Rect represents an axis-aligned box in screen cells.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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
