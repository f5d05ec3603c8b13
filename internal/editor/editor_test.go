package editor_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/baamageddon/internal/aabb"
	"github.com/vovakirdan/baamageddon/internal/config"
	"github.com/vovakirdan/baamageddon/internal/core"
	"github.com/vovakirdan/baamageddon/internal/editor"
	"github.com/vovakirdan/baamageddon/internal/level"
)

func newEditor(t *testing.T, path string) *editor.Editor {
	t.Helper()
	lvl := level.Level{Name: "test", Objects: []level.Object{
		{Kind: level.KindSheep, X: 300, Y: 400, Sprite: config.SpriteSheepIdleRight},
		{Kind: level.KindIsland, X: 400, Y: 600, Sprite: config.SpriteIslandB},
	}}
	return editor.New(config.DefaultBaaConfig(), lvl, path, nil)
}

func setMode(e *editor.Editor, k level.Kind) {
	for e.Mode() != k {
		e.CycleMode()
	}
}

func TestCycleMode(t *testing.T) {
	e := newEditor(t, "")
	require.Equal(t, level.KindSheep, e.Mode())

	var seen []level.Kind
	for range level.Kinds() {
		e.CycleMode()
		seen = append(seen, e.Mode())
	}
	assert.Equal(t, level.KindIsland, seen[0])
	assert.Equal(t, level.KindFinal, seen[6])
	assert.Equal(t, level.KindSheep, seen[7])
}

func TestZoomClamps(t *testing.T) {
	e := newEditor(t, "")
	e.Zoom(1)
	assert.Equal(t, 1.0, e.ZoomLevel())

	e.Zoom(-1)
	assert.InDelta(t, 0.9, e.ZoomLevel(), 1e-9)

	for range 20 {
		e.Zoom(-1)
	}
	assert.InDelta(t, 0.2, e.ZoomLevel(), 1e-9)
}

func TestScrollScalesWithZoom(t *testing.T) {
	e := newEditor(t, "")
	start := e.Camera()

	e.Scroll(1, 0)
	assert.InDelta(t, start.X+10, e.Camera().X, 1e-9)

	for range 5 {
		e.Zoom(-1)
	}
	e.Scroll(0, -1)
	assert.InDelta(t, start.Y-20, e.Camera().Y, 1e-9)
}

func TestSnap(t *testing.T) {
	e := newEditor(t, "")
	assert.Equal(t, aabb.V(32, 64), e.Snap(aabb.V(45.7, 70)))
	assert.Equal(t, aabb.V(-32, 0), e.Snap(aabb.V(-40, 5)))
}

func TestPressCreatesSnappedObject(t *testing.T) {
	e := newEditor(t, "")
	setMode(e, level.KindIsland)

	e.Press(aabb.V(2000.5, 100))
	o, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, level.KindIsland, o.Kind)
	assert.Equal(t, 1984.0, o.X)
	assert.Equal(t, 96.0, o.Y)
	assert.Equal(t, config.SpriteIslandA, o.Sprite)

	require.True(t, e.SetVariant(3))
	o, _ = e.Selected()
	assert.Equal(t, config.SpriteIslandC, o.Sprite)
	assert.False(t, e.SetVariant(5))

	e.Drag(aabb.V(100, 200))
	o, _ = e.Selected()
	assert.Equal(t, 96.0, o.X)
	assert.Equal(t, 192.0, o.Y)

	e.Release()
	_, ok = e.Selected()
	assert.False(t, ok)
	assert.False(t, e.SetVariant(1))
	assert.Equal(t, 2, e.Count(level.KindIsland))
}

func TestPressSelectsAndDragsWithGrabOffset(t *testing.T) {
	e := newEditor(t, "")
	setMode(e, level.KindIsland)

	e.Press(aabb.V(410, 610))
	o, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, 400.0, o.X)
	assert.Equal(t, 1, e.Count(level.KindIsland))

	e.Drag(aabb.V(500, 620))
	o, _ = e.Selected()
	assert.Equal(t, 496.0, o.X)
	assert.Equal(t, 600.0, o.Y)
}

func TestPressOnlyTouchesCurrentMode(t *testing.T) {
	e := newEditor(t, "")
	setMode(e, level.KindDoughnut)

	// On top of the island, but islands are not editable in this mode.
	e.Press(aabb.V(410, 610))
	o, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, level.KindDoughnut, o.Kind)
}

func TestPressMovesSheep(t *testing.T) {
	e := newEditor(t, "")

	e.Press(aabb.V(1000.5, 250))
	_, ok := e.Selected()
	assert.False(t, ok)
	assert.Equal(t, 1, e.Count(level.KindSheep))

	sheep, ok := e.Level().Sheep()
	require.True(t, ok)
	assert.Equal(t, 1000.5, sheep.X)
	assert.Equal(t, 250.0, sheep.Y)
}

func TestPressPlacesSingleExit(t *testing.T) {
	e := newEditor(t, "")
	setMode(e, level.KindFinal)

	e.Press(aabb.V(3000, 500))
	e.Release()
	e.Press(aabb.V(5000, 500))
	e.Release()

	assert.Equal(t, 1, e.Count(level.KindFinal))
	objs := e.Objects()
	assert.Equal(t, 5000.0, objs[len(objs)-1].X)
}

func TestDeleteNeverRemovesSheep(t *testing.T) {
	e := newEditor(t, "")
	assert.Equal(t, 0, e.Delete(aabb.V(300, 400)))
	assert.Equal(t, 1, e.Count(level.KindSheep))

	setMode(e, level.KindIsland)
	assert.Equal(t, 0, e.Delete(aabb.V(5000, 5000)))
	assert.Equal(t, 1, e.Delete(aabb.V(400, 600)))
	assert.Equal(t, 0, e.Count(level.KindIsland))
}

func TestSaveWritesAndCoolsDown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edited.lev")
	e := newEditor(t, path)
	setMode(e, level.KindWolf)
	e.Press(aabb.V(800, 500))
	e.Release()

	require.NoError(t, e.Save())
	assert.True(t, e.Saving())
	assert.ErrorIs(t, e.Save(), editor.ErrCoolingDown)

	for range config.DefaultBaaConfig().Editor.SaveCooldown {
		e.Tick()
	}
	assert.False(t, e.Saving())

	back, err := level.Load(path, nil)
	require.NoError(t, err)
	assert.True(t, level.Equal(e.Level(), back))
	assert.Equal(t, 1, back.Count(level.KindWolf))
}

func TestSaveWithoutPath(t *testing.T) {
	e := newEditor(t, "")
	assert.ErrorIs(t, e.Save(), editor.ErrNoPath)
}

func TestRender(t *testing.T) {
	e := newEditor(t, "")
	screen := core.NewScreen(80, 24)
	e.Render(screen)

	assert.Contains(t, screen.Row(0), "MODE : PLAYER")
	assert.Contains(t, screen.Row(0), "100%")
	assert.Contains(t, screen.Row(0), "1 PLAYER")

	e.ToggleHelp()
	screen.Clear()
	e.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "LEVEL EDITOR HELP"))
}
