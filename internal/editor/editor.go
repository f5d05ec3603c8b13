// Package editor implements the Baamageddon level editor: placing, moving,
// re-skinning and deleting level objects, camera scroll and zoom, and saving.
//
// The editor works in world pixels. The terminal front end converts mouse
// cells to world points with the editor's Viewport before calling in.
package editor

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/baamageddon/internal/aabb"
	"github.com/vovakirdan/baamageddon/internal/config"
	"github.com/vovakirdan/baamageddon/internal/core"
	"github.com/vovakirdan/baamageddon/internal/level"
	"github.com/vovakirdan/baamageddon/internal/scene"
)

// ErrCoolingDown is returned by Save while the previous save banner is shown.
var ErrCoolingDown = errors.New("editor: save already in progress")

// ErrNoPath is returned by Save when the editor has nowhere to write.
var ErrNoPath = errors.New("editor: no level path")

// Editor holds the level being edited and the editing session state.
type Editor struct {
	cfg    config.BaaConfig
	path   string
	name   string
	logger *log.Logger

	objects []level.Object

	mode     level.Kind
	camera   aabb.Vec2
	zoom     float64
	selected int // Index into objects, or -1
	grab     aabb.Vec2
	cooldown int
	help     bool
}

// New opens lvl for editing. Saves go to path. A nil logger discards messages.
func New(cfg config.BaaConfig, lvl level.Level, path string, logger *log.Logger) *Editor {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	e := &Editor{
		cfg:      cfg,
		path:     path,
		name:     lvl.Name,
		logger:   logger,
		objects:  append([]level.Object(nil), lvl.Objects...),
		mode:     level.KindSheep,
		camera:   aabb.V(cfg.Physics.DisplayW/2, cfg.Physics.DisplayH/2),
		zoom:     1,
		selected: -1,
	}
	return e
}

// Mode returns the kind of object the editor currently works on.
func (e *Editor) Mode() level.Kind {
	return e.mode
}

// CycleMode advances to the next object kind and drops the selection.
func (e *Editor) CycleMode() {
	kinds := level.Kinds()
	for i, k := range kinds {
		if k == e.mode {
			e.mode = kinds[(i+1)%len(kinds)]
			break
		}
	}
	e.selected = -1
}

// Scroll moves the camera by whole steps in x and y.
// Steps cover more ground when zoomed out.
func (e *Editor) Scroll(dx, dy int) {
	step := e.cfg.Editor.CameraSpeed / e.zoom
	e.camera = e.camera.Add(aabb.V(float64(dx)*step, float64(dy)*step))
}

// Zoom changes the zoom by dir steps, clamped to the configured range.
func (e *Editor) Zoom(dir int) {
	z := e.zoom + float64(dir)*e.cfg.Editor.ZoomStep
	z = math.Round(z*100) / 100
	e.zoom = aabb.Clamp(z, e.cfg.Editor.MinZoom, e.cfg.Editor.MaxZoom)
}

// ZoomLevel returns the current zoom factor.
func (e *Editor) ZoomLevel() float64 {
	return e.zoom
}

// Camera returns the world point at the center of the view.
func (e *Editor) Camera() aabb.Vec2 {
	return e.camera
}

// Viewport returns the editor's view for a screen of cols x rows cells.
func (e *Editor) Viewport(cols, rows int) core.Viewport {
	return core.Viewport{CameraX: e.camera.X, CameraY: e.camera.Y, Zoom: e.zoom, Cols: cols, Rows: rows}
}

// Snap rounds p toward zero onto the placement grid.
func (e *Editor) Snap(p aabb.Vec2) aabb.Vec2 {
	s := e.cfg.Editor.Snap
	if s <= 0 {
		return p
	}
	snap := func(f float64) float64 {
		f = math.Trunc(f)
		return f - math.Mod(f, s)
	}
	return aabb.V(snap(p.X), snap(p.Y))
}

// bounds returns the world box covered by o's sprite.
func (e *Editor) bounds(o level.Object) aabb.AABB {
	return scene.SpriteBounds(e.cfg.SpriteFor(o.Sprite), aabb.V(o.X, o.Y))
}

func inside(b aabb.AABB, p aabb.Vec2) bool {
	min, max := b.Min(), b.Max()
	return p.X > min.X && p.X < max.X && p.Y > min.Y && p.Y < max.Y
}

// hit returns the index of the topmost object of the current kind under p, or -1.
func (e *Editor) hit(p aabb.Vec2) int {
	found := -1
	for i, o := range e.objects {
		if o.Kind == e.mode && inside(e.bounds(o), p) {
			found = i
		}
	}
	return found
}

func (e *Editor) firstOfKind(k level.Kind) int {
	for i, o := range e.objects {
		if o.Kind == k {
			return i
		}
	}
	return -1
}

// Press handles the primary button going down at world point p.
//
// An object of the current kind under p is selected for dragging. Otherwise
// the sheep or the exit is moved to p, or a new object is created on the grid
// and selected.
func (e *Editor) Press(p aabb.Vec2) {
	if e.selected >= 0 {
		return
	}

	snapped := e.Snap(p)
	if i := e.hit(p); i >= 0 {
		o := e.objects[i]
		e.selected = i
		e.grab = aabb.V(o.X, o.Y).Sub(snapped)
		return
	}

	switch e.mode {
	case level.KindSheep, level.KindFinal:
		// Only one of each; move it rather than add another.
		i := e.firstOfKind(e.mode)
		if i < 0 {
			e.objects = append(e.objects, level.Object{Kind: e.mode, Sprite: e.mode.DefaultSprite()})
			i = len(e.objects) - 1
		}
		e.objects[i].X, e.objects[i].Y = p.X, p.Y
	default:
		e.objects = append(e.objects, level.Object{
			Kind:   e.mode,
			X:      snapped.X,
			Y:      snapped.Y,
			Sprite: e.mode.DefaultSprite(),
		})
		e.selected = len(e.objects) - 1
		e.grab = aabb.Vec2{}
	}
}

// Drag moves the selected object so it follows p on the grid.
func (e *Editor) Drag(p aabb.Vec2) {
	if e.selected < 0 {
		return
	}
	pos := e.Snap(p).Add(e.grab)
	e.objects[e.selected].X, e.objects[e.selected].Y = pos.X, pos.Y
}

// Release drops the selection.
func (e *Editor) Release() {
	e.selected = -1
}

// Selected returns the object being dragged, if any.
func (e *Editor) Selected() (level.Object, bool) {
	if e.selected < 0 {
		return level.Object{}, false
	}
	return e.objects[e.selected], true
}

// SetVariant re-skins the selected object with sprite variant n (1 to 4).
func (e *Editor) SetVariant(n int) bool {
	if e.selected < 0 || n < 1 || n > 4 {
		return false
	}
	e.objects[e.selected].Sprite = e.mode.Variants()[n-1]
	return true
}

// Delete removes every object of the current kind under p except the sheep.
// It returns how many objects were removed.
func (e *Editor) Delete(p aabb.Vec2) int {
	kept := e.objects[:0]
	removed := 0
	for _, o := range e.objects {
		if o.Kind == e.mode && o.Kind != level.KindSheep && inside(e.bounds(o), p) {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	e.objects = kept
	if removed > 0 {
		e.selected = -1
	}
	return removed
}

// Objects returns a copy of the level's objects in creation order.
func (e *Editor) Objects() []level.Object {
	return append([]level.Object(nil), e.objects...)
}

// Count returns how many objects of kind k the level holds.
func (e *Editor) Count(k level.Kind) int {
	n := 0
	for _, o := range e.objects {
		if o.Kind == k {
			n++
		}
	}
	return n
}

// Level returns the edited level.
func (e *Editor) Level() level.Level {
	return level.Level{Name: e.name, Path: e.path, Objects: e.Objects()}
}

// Path returns where Save writes.
func (e *Editor) Path() string {
	return e.path
}

// Save writes the level to its path in the format the extension names.
func (e *Editor) Save() error {
	if e.cooldown > 0 {
		return ErrCoolingDown
	}
	if e.path == "" {
		return ErrNoPath
	}
	if err := level.Save(e.path, e.Level()); err != nil {
		e.logger.Error("save failed", "path", e.path, "err", err)
		return fmt.Errorf("editor: %w", err)
	}
	e.cooldown = e.cfg.Editor.SaveCooldown
	e.logger.Info("level saved", "path", e.path, "objects", len(e.objects))
	return nil
}

// Saving reports whether the save banner is showing.
func (e *Editor) Saving() bool {
	return e.cooldown > 0
}

// Tick advances timers by one frame.
func (e *Editor) Tick() {
	if e.cooldown > 0 {
		e.cooldown--
	}
}

// ToggleHelp shows or hides the controls overlay.
func (e *Editor) ToggleHelp() {
	e.help = !e.help
}

// HelpVisible reports whether the controls overlay is showing.
func (e *Editor) HelpVisible() bool {
	return e.help
}
