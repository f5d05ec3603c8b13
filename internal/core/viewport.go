package core

import "math"

// Default world-pixel size of one terminal cell. Terminal cells are roughly
// twice as tall as they are wide.
const (
	CellW = 16.0
	CellH = 32.0
)

// Viewport maps world coordinates (pixels, y down) onto screen cells.
// Camera is the world point shown at the center of the screen.
type Viewport struct {
	CameraX, CameraY float64
	Zoom             float64
	Cols, Rows       int
}

// NewViewport returns a viewport of the given size centered on the origin at zoom 1.
func NewViewport(cols, rows int) Viewport {
	return Viewport{Zoom: 1, Cols: cols, Rows: rows}
}

func (v Viewport) zoom() float64 {
	if v.Zoom <= 0 {
		return 1
	}
	return v.Zoom
}

// CellSize returns the world extent of one cell at the current zoom.
func (v Viewport) CellSize() (w, h float64) {
	z := v.zoom()
	return CellW / z, CellH / z
}

// WorldToCell converts a world point to the cell containing it.
func (v Viewport) WorldToCell(x, y float64) (int, int) {
	cw, ch := v.CellSize()
	cx := (x-v.CameraX)/cw + float64(v.Cols)/2
	cy := (y-v.CameraY)/ch + float64(v.Rows)/2
	return int(math.Floor(cx)), int(math.Floor(cy))
}

// CellToWorld returns the world point at the center of a cell.
func (v Viewport) CellToWorld(col, row int) (float64, float64) {
	cw, ch := v.CellSize()
	x := (float64(col)+0.5-float64(v.Cols)/2)*cw + v.CameraX
	y := (float64(row)+0.5-float64(v.Rows)/2)*ch + v.CameraY
	return x, y
}

// WorldRect converts a world-space box given by its corners into the
// covering cell rectangle. The result always spans at least one cell.
func (v Viewport) WorldRect(minX, minY, maxX, maxY float64) Rect {
	x0, y0 := v.WorldToCell(minX, minY)
	x1, y1 := v.WorldToCell(maxX, maxY)
	return RectFromCorners(x0, y0, x1, y1)
}

// WorldBounds returns the world area currently on screen.
func (v Viewport) WorldBounds() (minX, minY, maxX, maxY float64) {
	cw, ch := v.CellSize()
	hw := float64(v.Cols) * cw / 2
	hh := float64(v.Rows) * ch / 2
	return v.CameraX - hw, v.CameraY - hh, v.CameraX + hw, v.CameraY + hh
}

// Visible reports whether a world-space box intersects the screen.
func (v Viewport) Visible(minX, minY, maxX, maxY float64) bool {
	l, t, r, b := v.WorldBounds()
	return maxX >= l && minX <= r && maxY >= t && minY <= b
}
