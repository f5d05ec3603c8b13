package editor

import (
	"fmt"
	"math"

	"github.com/vovakirdan/baamageddon/internal/aabb"
	"github.com/vovakirdan/baamageddon/internal/core"
	"github.com/vovakirdan/baamageddon/internal/level"
	"github.com/vovakirdan/baamageddon/internal/scene"
)

var modeNames = map[level.Kind]string{
	level.KindSheep:    "PLAYER",
	level.KindIsland:   "ISLANDS",
	level.KindDoughnut: "DONUTS",
	level.KindSpike:    "SPIKES",
	level.KindWolf:     "WOLVES",
	level.KindBush:     "BUSHES",
	level.KindBlade:    "SWINGING BLADE",
	level.KindFinal:    "FINAL DONUT",
}

// ModeName returns the label shown for an edit mode.
func ModeName(k level.Kind) string {
	if name, ok := modeNames[k]; ok {
		return name
	}
	return k.String()
}

// Draw order, back to front.
var drawOrder = []level.Kind{
	level.KindIsland, level.KindDoughnut, level.KindSheep, level.KindSpike,
	level.KindWolf, level.KindBush, level.KindBlade, level.KindFinal,
}

var helpLines = []string{
	"LEVEL EDITOR HELP",
	"-----------------",
	"Only objects of the current mode can be touched",
	"",
	"SPACE / TAB      change object mode",
	"LEFT CLICK       add or select object",
	"LEFT DRAG        move object",
	"DRAG + 1-4       change object sprite",
	"RIGHT CLICK / X  delete object",
	"ARROWS / WASD    scroll",
	"+ / -            zoom in and out",
	"CTRL+S           save level",
	"H                toggle this help",
	"Q / ESC          quit",
}

// Render draws the level, the selection and the editor's interface.
func (e *Editor) Render(dst *core.Screen) {
	c := scene.Canvas{Screen: dst, View: e.Viewport(dst.Width(), dst.Height())}

	for _, k := range drawOrder {
		for _, o := range e.objects {
			if o.Kind == k {
				c.DrawSprite(e.cfg.SpriteFor(o.Sprite), aabb.V(o.X, o.Y), core.ColorDefault)
			}
		}
	}

	if o, ok := e.Selected(); ok {
		box := e.bounds(o)
		aabb.Draw(c, box, core.ColorBrightWhite)
		label := fmt.Sprintf("X:%d / Y:%d", int(math.Floor(o.X+0.5)), int(math.Floor(o.Y+0.5)))
		x, y := c.View.WorldToCell(box.Pos.X, box.Min().Y)
		dst.DrawTextColored(x-len(label)/2, y-1, label, core.ColorBrightWhite)
	}

	e.drawDeathLine(c)
	e.drawBars(dst)
	if e.help {
		drawHelp(dst)
	}
}

func (e *Editor) drawDeathLine(c scene.Canvas) {
	_, row := c.View.WorldToCell(0, e.cfg.Physics.FloorBound)
	if row < 0 || row >= c.Screen.Height() {
		return
	}
	c.Screen.DrawHLine(0, row, c.Screen.Width(), '╌')
	c.Screen.DrawTextCenteredColored(row, " AUTOMATIC DEATH LEVEL ", core.ColorRed)
}

func (e *Editor) drawBars(dst *core.Screen) {
	w := dst.Width()
	dst.DrawRectColored(core.NewRect(0, 0, w, 1), ' ', core.ColorDefault)

	name := ModeName(e.mode)
	dst.DrawTextColored(1, 0, fmt.Sprintf("%d%%", int(e.zoom*100+0.5)), core.ColorBrightYellow)
	dst.DrawTextCenteredColored(0, "MODE : "+name, core.ColorBrightYellow)
	count := fmt.Sprintf("%d %s", e.Count(e.mode), name)
	dst.DrawTextColored(w-len(count)-1, 0, count, core.ColorBrightYellow)

	bottom := dst.Height() - 1
	if e.Saving() {
		dst.DrawRectColored(core.NewRect(0, bottom, w, 1), ' ', core.ColorDefault)
		dst.DrawTextCenteredColored(bottom, "OVERWRITING LEVEL", core.ColorOrange)
		return
	}
	dst.DrawTextColored(1, bottom, "H FOR CONTROLS", core.ColorGray)
}

func drawHelp(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	box := core.NewRect(w/8, h/8, w*3/4, h*3/4)
	dst.DrawRectColored(box, ' ', core.ColorDefault)
	dst.DrawBoxColored(box, core.ColorMagenta)

	for i, line := range helpLines {
		y := box.Y + 1 + i
		if y >= box.Bottom()-1 {
			break
		}
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorMagenta
		}
		dst.DrawTextColored(box.X+2, y, line, color)
	}
}
