// Package baa implements Baamageddon, a side-scrolling platformer in which a
// sheep collects doughnuts across floating islands while avoiding spikes,
// wolves and swinging blades.
//
// World coordinates are pixels with y pointing down. The simulation advances
// in fixed ticks and is deterministic for a given seed and input sequence.
package baa

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/baamageddon/internal/aabb"
	"github.com/vovakirdan/baamageddon/internal/config"
	"github.com/vovakirdan/baamageddon/internal/core"
	"github.com/vovakirdan/baamageddon/internal/level"
	"github.com/vovakirdan/baamageddon/internal/registry"
)

// Registry identity of the game.
const (
	ID    = "baamageddon"
	Title = "Baamageddon"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// levelPath stores the level file set via CLI
var levelPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	if preset == "" {
		difficultyPreset = ""
		return
	}
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// SetLevelPath sets the level file played by new games.
// An empty path selects the built-in level.
func SetLevelPath(path string) {
	levelPath = path
}

func init() {
	registry.Register(registry.GameInfo{ID: ID, Title: Title}, func() registry.Game { return New() })
}

// Game implements the Baamageddon game logic.
type Game struct {
	cfg        config.BaaConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
	rng        *rand.Rand

	level   level.Level
	fixed   bool   // Level supplied by the caller, never reloaded from disk
	loadErr string // Shown in the HUD when the level fell back to the default

	store  *Store
	st     State
	camera aabb.Vec2
	paused bool
	tick   int
	demoT  float64 // Phase of the debug sweep demo
}

// New creates a game that loads its config and level from the CLI settings.
func New() *Game {
	return &Game{}
}

// NewWithLevel creates a game that plays lvl with cfg and never touches disk.
func NewWithLevel(cfg config.BaaConfig, lvl level.Level) *Game {
	return &Game{cfg: cfg, level: lvl, fixed: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixed {
		cfg, err := config.LoadBaa(configPath)
		if err != nil {
			cfg = config.DefaultBaaConfig()
		}
		if difficultyPreset != "" {
			config.ApplyBaaPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
		g.loadLevel()
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness only

	g.store = NewStore()
	g.st = newState(g.cfg.Sheep)
	g.st.Debug = runtime.Debug
	g.paused = false
	g.tick = 0
	g.demoT = 0
	g.camera = aabb.V(g.cfg.Physics.DisplayW/2, g.cfg.Physics.DisplayH/2)
	g.st.CameraTarget = g.camera
}

func (g *Game) loadLevel() {
	g.loadErr = ""
	lvl, err := level.Load(levelPath, nil)
	if err == nil {
		err = lvl.Validate()
	}
	if err != nil {
		g.loadErr = fmt.Sprintf("level: %v (playing %s)", err, level.DefaultName)
		lvl = level.Default()
	}
	g.level = lvl
}

// rebuild replaces every live object with a fresh copy of the level.
func (g *Game) rebuild() {
	g.store.DestroyAll()
	g.st.Blades = g.st.Blades[:0]

	for _, o := range g.level.Objects {
		pos := aabb.V(o.X, o.Y)
		switch o.Kind {
		case level.KindSheep:
			if g.store.FirstOfType(TypeSheep) == nil {
				g.store.Create(TypeSheep, pos, g.cfg.Sheep.Radius, o.Sprite)
			}
		case level.KindIsland:
			g.store.Create(TypeIsland, pos, 0, o.Sprite)
		case level.KindDoughnut:
			d := g.store.Create(TypeDoughnut, pos, g.cfg.Doughnuts.Radius, o.Sprite)
			if frames := g.cfg.SpriteFor(o.Sprite).Frames; frames > 1 {
				d.Frame = float64(g.rng.Intn(frames))
			}
		case level.KindSpike:
			g.store.Create(TypeSpike, pos, g.cfg.Spikes.Half.X, o.Sprite)
		case level.KindWolf:
			g.store.Create(TypeWolf, pos, g.cfg.Wolves.Radius, o.Sprite)
		case level.KindBush:
			g.store.Create(TypeBush, pos, g.cfg.Bushes.Radius, o.Sprite)
		case level.KindBlade:
			blade := g.store.Create(TypeBlade, pos, g.cfg.Blades.Radius, o.Sprite)
			bob := g.store.Create(TypeBladeBob, pos.Add(aabb.V(0, g.cfg.Blades.Length)), g.cfg.Blades.BobRadius, "")
			g.st.Blades = append(g.st.Blades, bladePair{Blade: blade.ID, Bob: bob.ID})
		case level.KindFinal:
			g.store.Create(TypeFinal, pos, g.cfg.Exit.Radius, o.Sprite)
		}
	}

	if g.store.FirstOfType(TypeSheep) == nil {
		g.store.Create(TypeSheep, aabb.Vec2{}, g.cfg.Sheep.Radius, config.SpriteSheepIdleRight)
	}

	g.st.Platforms = buildPlatforms(g.store, g.cfg)
	g.st.Spikes = buildSpikes(g.store, g.cfg)
	g.st.WolfLatched = false
	g.st.Complete = false
	g.st.DoughnutsLeft = g.store.Count(TypeDoughnut)
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionDebug) {
		g.st.Debug = !g.st.Debug
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	if g.st.Debug {
		g.advanceDemo()
	}

	ease := g.cfg.Physics.CameraEase
	if ease <= 0 {
		ease = 1
	}
	g.camera = g.camera.Add(g.st.CameraTarget.Sub(g.camera).Scale(1 / ease))

	if g.updatePlayState(in) {
		sheep := g.store.FirstOfType(TypeSheep)
		g.updateDoughnuts(sheep)
		g.updateSprinkles()
		g.updateWolves(sheep)
		g.updateBushes(sheep, in)
		g.updateBlades(sheep)
		g.resolveSpikes(sheep)
	}

	return core.StepResult{State: g.State()}
}

// updatePlayState runs the play-state machine and moves the sheep.
// It reports false on the tick the level is being reloaded.
func (g *Game) updatePlayState(in core.InputFrame) bool {
	if g.st.Play == PlayStart {
		g.rebuild()
		g.st.Play = PlayAppear
		return false
	}

	sheep := g.store.FirstOfType(TypeSheep)

	switch g.st.Play {
	case PlayAppear:
		sheep.Vel = aabb.Vec2{}
		sheep.Acc = aabb.V(0, g.cfg.Sheep.AppearGravity)
		sheep.SetSprite(config.SpriteSheepJumpRight, 0)
		sheep.Rotation = 0
		g.st.Play = PlayPlay
		g.st.Sheep = SheepAirborne

	case PlayPlay:
		g.updateSheep(sheep, in)
		if in.Has(core.ActionSuicide) {
			g.kill()
		}

	case PlayDead:
		g.store.DestroyByType(TypeDoughnut)
		g.st.Play = PlayWait

	case PlayWait:
		g.st.Sheep = SheepIdle
		sheep.SetSprite(g.idleSprite(), 0)
		sheep.Rotation += g.cfg.Sheep.SpinSpeed
		sheep.Acc = aabb.V(0, g.cfg.Sheep.AppearGravity)
		sheep.Vel.Y++
		if in.Has(core.ActionJump) {
			g.st.Play = PlayStart
			g.st.Score = 0
			g.st.resetJump(g.cfg.Sheep)
		}
	}

	sheep.Update()
	return true
}

// advanceDemo moves the debug segment endpoint around its circle.
func (g *Game) advanceDemo() {
	g.demoT += 0.04
	if g.demoT > math.Pi {
		g.demoT -= 2 * math.Pi
	}
}

// State returns the current game state.
// A run is over while waiting for a restart and once the exit is reached.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.st.Score,
		GameOver: g.st.Play == PlayWait || g.st.Complete,
		Won:      g.st.Complete,
		Paused:   g.paused,
	}
}

// PlayState returns the current phase of the run.
func (g *Game) PlayState() PlayState {
	return g.st.Play
}

// Sheep returns the player object, or nil before the level is built.
func (g *Game) Sheep() *Object {
	if g.store == nil {
		return nil
	}
	return g.store.FirstOfType(TypeSheep)
}

// Objects returns the live objects of type t in creation order.
func (g *Game) Objects(t ObjectType) []*Object {
	if g.store == nil {
		return nil
	}
	return g.store.ByType(t)
}

// Camera returns the world point at the center of the view.
func (g *Game) Camera() aabb.Vec2 {
	return g.camera
}

// LoadError returns a message when the configured level could not be used.
func (g *Game) LoadError() string {
	return g.loadErr
}

// LevelName returns the name of the level being played.
func (g *Game) LevelName() string {
	return g.level.Name
}
