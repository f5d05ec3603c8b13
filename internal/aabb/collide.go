package aabb

import "math"

// SegmentTest reports whether the segment a->b enters box, and the fraction t
// in [0, 1] along the segment where it first does.
//
// A zero-length segment never hits, even when a lies inside box.
func SegmentTest(box AABB, a, b Vec2) (float64, bool) {
	if a.X == b.X && a.Y == b.Y {
		return 0, false
	}

	delta := b.Sub(a)
	scale := Vec2{X: TolInv(delta.X), Y: TolInv(delta.Y)}
	sign := Vec2{X: Sign(scale.X), Y: Sign(scale.Y)}

	// Entry and exit times per slab.
	near := box.Pos.Sub(box.Half.Mul(sign)).Sub(a).Mul(scale)
	far := box.Pos.Add(box.Half.Mul(sign)).Sub(a).Mul(scale)

	if near.X > far.Y || near.Y > far.X {
		return 0, false
	}

	t0 := near.X
	if near.Y > t0 {
		t0 = near.Y
	}
	t1 := far.X
	if far.Y < t1 {
		t1 = far.Y
	}

	if t0 >= 1 || t1 <= 0 {
		return 0, false
	}

	return Clamp(t0, 0, 1), true
}

// StaticOverlap reports whether a and b overlap and, if so, the minimum
// translation that moves b out of a.
//
// The offset lies on the axis of least penetration (X wins ties) and points
// from a's center toward b's center. Coincident centers push toward +X/+Y.
// Touching edges do not count as overlap.
func StaticOverlap(a, b AABB) (Vec2, bool) {
	dx := b.Pos.X - a.Pos.X
	px := (a.Half.X + b.Half.X) - math.Abs(dx)
	if px <= 0 {
		return Vec2{}, false
	}

	dy := b.Pos.Y - a.Pos.Y
	py := (a.Half.Y + b.Half.Y) - math.Abs(dy)
	if py <= 0 {
		return Vec2{}, false
	}

	if px <= py {
		return Vec2{X: px * Sign(dx)}, true
	}
	return Vec2{Y: py * Sign(dy)}, true
}

// SweepTest moves b by delta against the stationary box a.
// It returns where b ends up and whether it touched a on the way.
//
// On a hit b stops at the first point of contact. With no hit the result is
// exactly b.Pos + delta. A zero delta reports the static overlap and leaves b
// where it is; no separation is applied in that case.
func SweepTest(a, b AABB, delta Vec2) (Vec2, bool) {
	if delta.IsZero() {
		if _, ok := StaticOverlap(a, b); ok {
			return b.Pos.Add(delta), true
		}
	}

	// Grow a by b's extent so b can be swept as a point.
	expanded := a.Expanded(b.Half)

	if t, ok := SegmentTest(expanded, b.Pos, b.Pos.Add(delta)); ok {
		return b.Pos.Add(delta.Scale(t)), true
	}

	return b.Pos.Add(delta), false
}
