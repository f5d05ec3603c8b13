package aabb

import "github.com/vovakirdan/baamageddon/internal/core"

// Canvas is anything that can stroke a rectangle outline in world space.
type Canvas interface {
	StrokeRect(min, max Vec2, color core.Color)
}

// Draw outlines box on c. It is a debug aid only.
func Draw(c Canvas, box AABB, color core.Color) {
	c.StrokeRect(box.Min(), box.Max(), color)
}
