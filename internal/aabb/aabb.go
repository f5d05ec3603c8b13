// Package aabb provides axis-aligned bounding box primitives for the platformer:
// a slab-method segment test, a static overlap test with a minimum translation
// vector, and a swept box-vs-box test built on the two.
//
// Everything here is a pure function over value types. Results depend only on
// the arguments, so identical inputs always produce identical outputs.
package aabb

import "math"

// Vec2 is a 2D vector used both as a point and as a displacement.
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

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// AABB is a box described by its center and half-extent.
// Half components must be non-negative; this is not checked.
type AABB struct {
	Pos  Vec2 // Center
	Half Vec2 // Half width and half height
}

// New creates a box centered at pos with the given half-extent.
func New(pos, half Vec2) AABB {
	return AABB{Pos: pos, Half: half}
}

// Min returns the top-left corner (smallest X and Y).
func (b AABB) Min() Vec2 {
	return b.Pos.Sub(b.Half)
}

// Max returns the bottom-right corner (largest X and Y).
func (b AABB) Max() Vec2 {
	return b.Pos.Add(b.Half)
}

// Moved returns a copy of b centered at pos.
func (b AABB) Moved(pos Vec2) AABB {
	return AABB{Pos: pos, Half: b.Half}
}

// Expanded returns the Minkowski sum of b and a box with half-extent half.
func (b AABB) Expanded(half Vec2) AABB {
	return AABB{Pos: b.Pos, Half: b.Half.Add(half)}
}

// Clamp restricts f to [lower, upper]. lower <= upper is assumed.
func Clamp(f, lower, upper float64) float64 {
	if f < lower {
		return lower
	}
	if f > upper {
		return upper
	}
	return f
}

// Sign returns 1 for f >= 0 and -1 otherwise. Zero maps to +1.
func Sign(f float64) float64 {
	if f >= 0 {
		return 1
	}
	return -1
}

const (
	// invTolerance is the magnitude below which TolInv stops dividing.
	invTolerance = 0.00001
	// invSentinel stands in for 1/0 so slab intervals stay finite.
	invSentinel = 99999.9
)

// TolInv returns 1/f, or a large positive sentinel when |f| is within
// 1e-5 of zero.
func TolInv(f float64) float64 {
	if math.Abs(f) > invTolerance {
		return 1.0 / f
	}
	return invSentinel
}
