package core

import "testing"

func TestRectFromCorners(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		expected       Rect
	}{
		{"ordered", 1, 2, 4, 3, Rect{X: 1, Y: 2, W: 4, H: 2}},
		{"reversed", 4, 3, 1, 2, Rect{X: 1, Y: 2, W: 4, H: 2}},
		{"single cell", 5, 5, 5, 5, Rect{X: 5, Y: 5, W: 1, H: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RectFromCorners(tc.x0, tc.y0, tc.x1, tc.y1); got != tc.expected {
				t.Errorf("RectFromCorners() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 10, 5)

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"overlapping", NewRect(5, 2, 10, 10), true},
		{"contained", NewRect(2, 1, 2, 2), true},
		{"adjacent right", NewRect(10, 0, 3, 3), false},
		{"adjacent below", NewRect(0, 5, 3, 3), false},
		{"disjoint", NewRect(20, 20, 1, 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Intersects(tc.other); got != tc.expected {
				t.Errorf("Intersects(%+v) = %v, expected %v", tc.other, got, tc.expected)
			}
			if got := tc.other.Intersects(base); got != tc.expected {
				t.Errorf("Intersects is not symmetric for %+v", tc.other)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	if !r.Contains(2, 3) || !r.Contains(5, 4) {
		t.Error("Contains should include top-left and bottom-right cells")
	}
	if r.Contains(6, 3) || r.Contains(2, 5) || r.Contains(1, 3) {
		t.Error("Contains should exclude cells past the edges")
	}
}

func TestRectClip(t *testing.T) {
	tests := []struct {
		name     string
		rect     Rect
		expected Rect
	}{
		{"inside", NewRect(1, 1, 2, 2), NewRect(1, 1, 2, 2)},
		{"left overhang", NewRect(-3, 0, 5, 1), NewRect(0, 0, 2, 1)},
		{"bottom overhang", NewRect(0, 8, 2, 5), NewRect(0, 8, 2, 2)},
		{"outside", NewRect(20, 20, 2, 2), Rect{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rect.Clip(10, 10); got != tc.expected {
				t.Errorf("Clip() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{CameraX: 640, CameraY: 320, Zoom: 1, Cols: 80, Rows: 24}

	col, row := v.WorldToCell(640, 320)
	if col != 40 || row != 12 {
		t.Errorf("WorldToCell(camera) = (%d, %d), expected (40, 12)", col, row)
	}

	x, y := v.CellToWorld(col, row)
	if c2, r2 := v.WorldToCell(x, y); c2 != col || r2 != row {
		t.Errorf("CellToWorld/WorldToCell round trip = (%d, %d), expected (%d, %d)", c2, r2, col, row)
	}

	// One cell to the right is CellW pixels away.
	if c, _ := v.WorldToCell(640+CellW, 320); c != 41 {
		t.Errorf("WorldToCell(+CellW) col = %d, expected 41", c)
	}
}

func TestViewportZoomOut(t *testing.T) {
	v := Viewport{Zoom: 0.5, Cols: 10, Rows: 10}
	cw, ch := v.CellSize()
	if cw != 2*CellW || ch != 2*CellH {
		t.Errorf("CellSize() at zoom 0.5 = (%v, %v), expected doubled", cw, ch)
	}

	// Zero zoom is treated as 1.
	v.Zoom = 0
	if cw, _ := v.CellSize(); cw != CellW {
		t.Errorf("CellSize() at zoom 0 = %v, expected %v", cw, CellW)
	}
}

func TestViewportVisible(t *testing.T) {
	v := Viewport{Zoom: 1, Cols: 10, Rows: 10}
	// World bounds are x in [-80, 80], y in [-160, 160].

	if !v.Visible(-10, -10, 10, 10) {
		t.Error("box at the camera should be visible")
	}
	if !v.Visible(70, 0, 200, 10) {
		t.Error("box straddling the right edge should be visible")
	}
	if v.Visible(100, 0, 120, 10) {
		t.Error("box past the right edge should not be visible")
	}
}
