// Package scene draws world-space things onto a terminal screen: sprites as
// glyph blocks, lines and box outlines. It is shared by the game and the
// level editor.
package scene

import (
	"unicode/utf8"

	"github.com/vovakirdan/baamageddon/internal/aabb"
	"github.com/vovakirdan/baamageddon/internal/config"
	"github.com/vovakirdan/baamageddon/internal/core"
)

// Canvas adapts a screen and a viewport to aabb.Canvas.
type Canvas struct {
	Screen *core.Screen
	View   core.Viewport
}

// StrokeRect outlines the world-space rectangle [min, max].
func (c Canvas) StrokeRect(min, max aabb.Vec2, color core.Color) {
	if !c.View.Visible(min.X, min.Y, max.X, max.Y) {
		return
	}
	c.Screen.DrawBoxColored(c.View.WorldRect(min.X, min.Y, max.X, max.Y), color)
}

// Line draws a world-space segment from a to b.
func (c Canvas) Line(a, b aabb.Vec2, r rune, color core.Color) {
	x0, y0 := c.View.WorldToCell(a.X, a.Y)
	x1, y1 := c.View.WorldToCell(b.X, b.Y)
	c.Screen.DrawLine(x0, y0, x1, y1, r, color)
}

// Text writes text starting at the cell containing world point p.
func (c Canvas) Text(p aabb.Vec2, text string, color core.Color) {
	x, y := c.View.WorldToCell(p.X, p.Y)
	c.Screen.DrawTextColored(x, y, text, color)
}

// SpriteBounds returns the world-space box a sprite covers when centered at pos.
func SpriteBounds(sp config.Sprite, pos aabb.Vec2) aabb.AABB {
	return aabb.New(pos, aabb.V(sp.Width/2, sp.Height/2))
}

// Glyph returns the rune a sprite is drawn with.
func Glyph(sp config.Sprite) rune {
	r, _ := utf8.DecodeRuneInString(sp.Glyph)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

// Color returns the colour a sprite is drawn with.
func Color(sp config.Sprite) core.Color {
	c, ok := core.ParseColor(sp.Color)
	if !ok {
		return core.ColorDefault
	}
	return c
}

// DrawSprite fills the cells covered by sp at pos with its glyph.
// A non-default color overrides the sprite's own.
func (c Canvas) DrawSprite(sp config.Sprite, pos aabb.Vec2, color core.Color) {
	box := SpriteBounds(sp, pos)
	min, max := box.Min(), box.Max()
	if !c.View.Visible(min.X, min.Y, max.X, max.Y) {
		return
	}
	if color == core.ColorDefault {
		color = Color(sp)
	}
	c.Screen.DrawRectColored(c.View.WorldRect(min.X, min.Y, max.X, max.Y), Glyph(sp), color)
}
