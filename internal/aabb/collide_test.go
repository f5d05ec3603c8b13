package aabb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/baamageddon/internal/aabb"
	"github.com/vovakirdan/baamageddon/internal/core"
)

type (
	Vec2 = aabb.Vec2
	AABB = aabb.AABB
)

var V = aabb.V

func box(x, y, hx, hy float64) AABB {
	return aabb.New(V(x, y), V(hx, hy))
}

const eps = 1e-9

func TestClamp(t *testing.T) {
	require.Equal(t, 5.0, aabb.Clamp(5, 0, 10))
	require.Equal(t, 0.0, aabb.Clamp(-3, 0, 10))
	require.Equal(t, 10.0, aabb.Clamp(11, 0, 10))
	require.Equal(t, 1.0, aabb.Clamp(1, 1, 1))
}

func TestSignZeroIsPositive(t *testing.T) {
	require.Equal(t, 1.0, aabb.Sign(0))
	require.Equal(t, 1.0, aabb.Sign(3.5))
	require.Equal(t, -1.0, aabb.Sign(-0.0001))
}

func TestTolInv(t *testing.T) {
	require.Equal(t, 0.5, aabb.TolInv(2))
	require.Equal(t, -0.25, aabb.TolInv(-4))
	require.Equal(t, 99999.9, aabb.TolInv(0))
	require.Equal(t, 99999.9, aabb.TolInv(0.000001))
	require.Equal(t, 99999.9, aabb.TolInv(-0.000001))
}

func TestSegmentTest(t *testing.T) {
	b := box(0, 0, 10, 10)

	tests := []struct {
		name  string
		a, b  Vec2
		hit   bool
		tWant float64
	}{
		{"horizontal entry", V(-30, 0), V(30, 0), true, 1.0 / 3.0},
		{"diagonal entry", V(-20, -20), V(20, 20), true, 0.25},
		{"passes above", V(-30, 20), V(30, 20), false, 0},
		{"stops short", V(-30, 0), V(-25, 0), false, 0},
		{"ends exactly on face", V(-30, 0), V(-10, 0), false, 0},
		{"moving away", V(-30, 0), V(-40, 0), false, 0},
		{"starts inside", V(0, 0), V(50, 0), true, 0},
		{"zero length inside", V(1, 1), V(1, 1), false, 0},
		{"vertical entry from below", V(0, 40), V(0, -40), true, 0.375},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tOut, hit := aabb.SegmentTest(b, tc.a, tc.b)
			require.Equal(t, tc.hit, hit)
			if tc.hit {
				assert.InDelta(t, tc.tWant, tOut, eps)
			}
		})
	}
}

func TestSegmentTestStartInsideReportsZero(t *testing.T) {
	b := box(100, 100, 20, 20)
	for _, end := range []Vec2{V(300, 100), V(100, -50), V(0, 0), V(101, 101)} {
		tOut, hit := aabb.SegmentTest(b, V(105, 95), end)
		require.True(t, hit, "segment to %v should hit", end)
		require.Equal(t, 0.0, tOut)
	}
}

func TestSegmentTestTimeIsClamped(t *testing.T) {
	b := box(0, 0, 15, 5)
	for ax := -60.0; ax <= 60; ax += 7.5 {
		for ay := -60.0; ay <= 60; ay += 7.5 {
			for _, d := range []Vec2{V(80, 0), V(0, -80), V(-45, 30), V(12, 12), V(0.000001, 90)} {
				a := V(ax, ay)
				tOut, hit := aabb.SegmentTest(b, a, a.Add(d))
				if hit {
					assert.GreaterOrEqual(t, tOut, 0.0)
					assert.LessOrEqual(t, tOut, 1.0)
				}
			}
		}
	}
}

func TestStaticOverlap(t *testing.T) {
	a := box(0, 0, 10, 10)

	tests := []struct {
		name   string
		b      AABB
		hit    bool
		offset Vec2
	}{
		{"right side", box(15, 0, 10, 10), true, V(5, 0)},
		{"left side", box(-15, 0, 10, 10), true, V(-5, 0)},
		{"below", box(0, 15, 10, 10), true, V(0, 5)},
		{"above", box(0, -15, 10, 10), true, V(0, -5)},
		{"touching edge", box(20, 0, 10, 10), false, Vec2{}},
		{"touching corner", box(20, 20, 10, 10), false, Vec2{}},
		{"far apart", box(100, 100, 10, 10), false, Vec2{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			offset, hit := aabb.StaticOverlap(a, tc.b)
			require.Equal(t, tc.hit, hit)
			require.Equal(t, tc.offset, offset)
		})
	}
}

func TestStaticOverlapTieBreaksOnX(t *testing.T) {
	a := box(100, 100, 20, 20)
	b := box(100, 100, 5, 5)

	offset, hit := aabb.StaticOverlap(a, b)
	require.True(t, hit)
	require.Equal(t, V(25, 0), offset)

	// Equal penetration off-center still prefers X.
	offset, hit = aabb.StaticOverlap(box(0, 0, 10, 10), box(-5, -5, 10, 10))
	require.True(t, hit)
	require.Equal(t, V(-15, 0), offset)
}

func TestStaticOverlapCoincidentCentersPushPositive(t *testing.T) {
	a := box(100, 100, 20, 20)

	offset, hit := aabb.StaticOverlap(a, box(100, 100, 30, 5))
	require.True(t, hit)
	require.Equal(t, V(0, 25), offset)

	offset, hit = aabb.StaticOverlap(a, box(100, 100, 5, 30))
	require.True(t, hit)
	require.Equal(t, V(25, 0), offset)
}

func TestStaticOverlapOffsetSeparates(t *testing.T) {
	a := box(0, 0, 50, 50)
	for _, b := range []AABB{box(30, 5, 10, 10), box(-10, 45, 10, 10), box(0, 0, 10, 30), box(-55, -20, 8, 8)} {
		offset, hit := aabb.StaticOverlap(a, b)
		require.True(t, hit)
		_, still := aabb.StaticOverlap(a, b.Moved(b.Pos.Add(offset)))
		assert.False(t, still, "offset %v should separate %v", offset, b)
	}
}

func TestSweepTestStopsAtContact(t *testing.T) {
	a := box(0, 0, 50, 50)

	pos, hit := aabb.SweepTest(a, box(200, 0, 10, 10), V(-300, 0))
	require.True(t, hit)
	assert.InDelta(t, 60, pos.X, eps)
	assert.InDelta(t, 0, pos.Y, eps)

	pos, hit = aabb.SweepTest(a, box(-200, 0, 10, 10), V(300, 0))
	require.True(t, hit)
	assert.InDelta(t, -60, pos.X, eps)
	assert.InDelta(t, 0, pos.Y, eps)
}

func TestSweepTestLandsOnPlatform(t *testing.T) {
	platform := box(0, 100, 100, 15)
	sheep := box(0, 0, 40, 40)

	pos, hit := aabb.SweepTest(platform, sheep, V(0, 100))
	require.True(t, hit)
	assert.InDelta(t, 45, pos.Y, eps)
	assert.InDelta(t, 0, pos.X, eps)
}

func TestSweepTestMissMovesFreely(t *testing.T) {
	a := box(0, 0, 50, 50)
	moves := []struct {
		b     AABB
		delta Vec2
	}{
		{box(200, 0, 10, 10), V(0, -50)},
		{box(200, 0, 10, 10), V(50, 0)},
		{box(0, 200, 10, 10), V(0, 0)},
		{box(0, 200, 10, 10), V(0, 120)},
		{box(-75, -75, 10, 10), V(-3.3, 1.7)},
	}

	for _, m := range moves {
		pos, hit := aabb.SweepTest(a, m.b, m.delta)
		require.False(t, hit)
		require.Equal(t, m.b.Pos.Add(m.delta), pos)
	}
}

func TestSweepTestZeroDeltaMatchesStaticOverlap(t *testing.T) {
	a := box(0, 0, 50, 50)
	for x := -80.0; x <= 80; x += 10 {
		for y := -80.0; y <= 80; y += 10 {
			b := box(x, y, 10, 10)
			_, overlap := aabb.StaticOverlap(a, b)
			pos, hit := aabb.SweepTest(a, b, Vec2{})
			require.Equal(t, overlap, hit, "box at (%v, %v)", x, y)
			require.Equal(t, b.Pos, pos)
		}
	}
}

func TestSweepTestFarApartZeroDelta(t *testing.T) {
	a := box(0, 0, 50, 50)
	b := box(0, 200, 10, 10)

	_, overlap := aabb.StaticOverlap(a, b)
	require.False(t, overlap)

	_, hit := aabb.SweepTest(a, b, Vec2{})
	require.False(t, hit)
}

func TestSweepTestDeterministic(t *testing.T) {
	a := box(13.7, -2.25, 31, 9)
	b := box(-120.5, 40.125, 12, 18)
	delta := V(171.3, -66.6)

	p1, h1 := aabb.SweepTest(a, b, delta)
	p2, h2 := aabb.SweepTest(a, b, delta)
	require.Equal(t, h1, h2)
	require.Equal(t, p1, p2)
}

type strokeRecorder struct {
	min, max Vec2
	color    core.Color
	calls    int
}

func (r *strokeRecorder) StrokeRect(min, max Vec2, color core.Color) {
	r.min, r.max, r.color = min, max, color
	r.calls++
}

func TestDraw(t *testing.T) {
	rec := &strokeRecorder{}
	aabb.Draw(rec, box(10, 20, 5, 8), core.ColorRed)

	require.Equal(t, 1, rec.calls)
	require.Equal(t, V(5, 12), rec.min)
	require.Equal(t, V(15, 28), rec.max)
	require.Equal(t, core.ColorRed, rec.color)
}
