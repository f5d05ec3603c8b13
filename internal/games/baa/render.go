package baa

import (
	"fmt"
	"math"

	"github.com/vovakirdan/baamageddon/internal/aabb"
	"github.com/vovakirdan/baamageddon/internal/config"
	"github.com/vovakirdan/baamageddon/internal/core"
	"github.com/vovakirdan/baamageddon/internal/scene"
)

// Draw order, back to front.
var drawOrder = []ObjectType{
	TypeIsland, TypeDoughnut, TypeSprinkle, TypeSpike, TypeWolf, TypeBush, TypeFinal,
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if g.store == nil {
		return
	}

	c := scene.Canvas{
		Screen: dst,
		View: core.Viewport{
			CameraX: g.camera.X,
			CameraY: g.camera.Y,
			Zoom:    1,
			Cols:    dst.Width(),
			Rows:    dst.Height(),
		},
	}

	for _, t := range drawOrder {
		for _, o := range g.store.ByType(t) {
			g.drawObject(c, o)
		}
	}
	g.drawBlades(c)
	if sheep := g.store.FirstOfType(TypeSheep); sheep != nil {
		g.drawSheep(c, sheep)
	}

	if g.st.Debug {
		g.drawDebug(c)
	}
	g.drawHUD(dst)
}

func (g *Game) drawObject(c scene.Canvas, o *Object) {
	// The exit stays hidden until it is opened.
	if o.Sprite == config.SpriteMarker || o.Sprite == "" {
		return
	}

	color := core.ColorDefault
	if o.Type == TypeWolf {
		switch int(o.Frame) {
		case wolfAlert:
			color = core.ColorYellow
		case wolfPounce:
			color = core.ColorRed
		}
	}
	c.DrawSprite(g.cfg.SpriteFor(o.Sprite), o.Pos, color)
}

func (g *Game) drawBlades(c scene.Canvas) {
	for _, pair := range g.st.Blades {
		blade := g.store.Get(pair.Blade)
		bob := g.store.Get(pair.Bob)
		if blade == nil || bob == nil {
			continue
		}
		sp := g.cfg.SpriteFor(blade.Sprite)
		c.Line(blade.Pos, bob.Pos, '·', core.ColorGray)
		c.DrawSprite(config.Sprite{
			Width:  bob.Radius * 2,
			Height: bob.Radius * 2,
			Glyph:  sp.Glyph,
			Color:  sp.Color,
		}, bob.Pos, core.ColorDefault)
	}
}

// sheepGlyphs approximates the sheep's spin in quarter turns.
var sheepGlyphs = [4]string{"@", "ə", "ɐ", "e"}

func (g *Game) drawSheep(c scene.Canvas, sheep *Object) {
	sp := g.cfg.SpriteFor(sheep.Sprite)
	quarter := int(math.Floor(sheep.Rotation/(math.Pi/2)+0.5)) % 4
	if quarter < 0 {
		quarter += 4
	}
	sp.Glyph = sheepGlyphs[quarter]

	color := core.ColorBrightWhite
	if g.st.Play == PlayWait || g.st.Play == PlayDead {
		color = core.ColorGray
	}
	c.DrawSprite(sp, sheep.Pos, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextCenteredColored(0, fmt.Sprintf(" SCORE: %d ", g.st.Score), core.ColorBrightYellow)

	mid := dst.Height() / 2
	switch {
	case g.st.Complete:
		dst.DrawTextCenteredColored(mid, " LEVEL COMPLETE! ", core.ColorBrightGreen)
		dst.DrawTextCenteredColored(mid+1, " Press R to play again ", core.ColorWhite)
	case g.st.Play == PlayWait:
		dst.DrawTextCenteredColored(mid, " BAAAA! ", core.ColorBrightRed)
		dst.DrawTextCenteredColored(mid+1, " Press SPACE to try again ", core.ColorWhite)
	}
	if g.paused {
		dst.DrawTextCenteredColored(mid-2, " PAUSED ", core.ColorBrightCyan)
	}
	if g.loadErr != "" {
		dst.DrawTextColored(0, dst.Height()-1, g.loadErr, core.ColorRed)
	}
}

// drawDebug shows collision boxes, wolf sight lines, state and a live
// segment/sweep probe against the first platform.
func (g *Game) drawDebug(c scene.Canvas) {
	sheep := g.store.FirstOfType(TypeSheep)
	if sheep == nil {
		return
	}

	for _, p := range g.st.Platforms {
		aabb.Draw(c, p.Box, core.ColorBlue)
	}
	for _, s := range g.st.Spikes {
		aabb.Draw(c, s.Box, core.ColorRed)
	}
	for _, wolf := range g.store.ByType(TypeWolf) {
		c.Line(sheep.Pos, wolf.Pos, '.', core.ColorRed)
	}
	aabb.Draw(c, g.sheepBox(sheep), core.ColorBlue)

	if len(g.st.Platforms) > 0 {
		g.drawSweepProbe(c, g.st.Platforms[0].Box)
	}

	info := fmt.Sprintf(" play:%s sheep:%s p{%.2f, %.2f} v{%.2f, %.2f} a{%.2f, %.2f} ",
		g.st.Play, g.st.Sheep,
		sheep.Pos.X, sheep.Pos.Y, sheep.Vel.X, sheep.Vel.Y, sheep.Acc.X, sheep.Acc.Y)
	c.Screen.DrawTextColored(0, c.Screen.Height()-2, info, core.ColorCyan)
}

func (g *Game) drawSweepProbe(c scene.Canvas, target aabb.AABB) {
	a := aabb.V(400, 800)
	b := aabb.V(math.Sin(g.demoT)*200+250, math.Cos(g.demoT)*200+250)

	if t, ok := aabb.SegmentTest(target, a, b); ok {
		c.Line(a, a.Add(b.Sub(a).Scale(t)), '*', core.ColorRed)
	} else {
		c.Line(a, b, '*', core.ColorYellow)
	}

	probe := aabb.New(a, aabb.V(20, 30))
	pos, hit := aabb.SweepTest(target, probe, b.Sub(a))
	aabb.Draw(c, probe, core.ColorYellow)
	if hit {
		aabb.Draw(c, probe.Moved(pos), core.ColorMagenta)
	} else {
		aabb.Draw(c, probe.Moved(pos), core.ColorWhite)
	}
}
