// Package config provides YAML-based game configuration loading and
// difficulty management for Baamageddon.
package config

// BaaConfig contains all tunable parameters of the game and the level editor.
// World units are pixels with y pointing down.
type BaaConfig struct {
	Physics    BaaPhysics        `yaml:"physics"`
	Sheep      BaaSheep          `yaml:"sheep"`
	Platforms  []PlatformShape   `yaml:"platforms"`
	Spikes     BaaSpikes         `yaml:"spikes"`
	Wolves     BaaWolves         `yaml:"wolves"`
	Bushes     BaaBushes         `yaml:"bushes"`
	Blades     BaaBlades         `yaml:"blades"`
	Doughnuts  BaaDoughnuts      `yaml:"doughnuts"`
	Exit       BaaExit           `yaml:"exit"`
	Sprites    map[string]Sprite `yaml:"sprites"`
	Editor     BaaEditor         `yaml:"editor"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// Point is a 2D value in world pixels.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// BaaPhysics holds world-wide constants.
type BaaPhysics struct {
	Gravity    float64 `yaml:"gravity"`     // Sheep free-fall acceleration
	FloorBound float64 `yaml:"floor_bound"` // Falling below this y kills
	CameraEase float64 `yaml:"camera_ease"` // Camera closes 1/ease of the gap each tick
	DisplayW   float64 `yaml:"display_w"`   // Reference display size, used for the start camera
	DisplayH   float64 `yaml:"display_h"`
}

// BaaSheep defines the player character.
type BaaSheep struct {
	Half           Point   `yaml:"half"`
	Radius         float64 `yaml:"radius"`
	WalkSpeed      float64 `yaml:"walk_speed"`
	JumpImpulse    float64 `yaml:"jump_impulse"`
	JumpTimeMax    int     `yaml:"jump_time_max"`
	JumpMultiplier float64 `yaml:"jump_multiplier"`
	JumpDecay      float64 `yaml:"jump_decay"`
	SpinAfter      int     `yaml:"spin_after"` // Jump ticks before the sheep starts spinning
	SpinSpeed      float64 `yaml:"spin_speed"`
	AppearGravity  float64 `yaml:"appear_gravity"`
	GroundProbe    float64 `yaml:"ground_probe"`
}

// PlatformShape maps an island sprite to its walkable collision box.
type PlatformShape struct {
	Sprite string `yaml:"sprite"`
	Offset Point  `yaml:"offset"`
	Half   Point  `yaml:"half"`
}

// BaaSpikes defines spike hazards.
type BaaSpikes struct {
	Half  Point   `yaml:"half"`
	Fling float64 `yaml:"fling"` // Upward acceleration applied on death
}

// BaaWolves defines wolf behaviour.
type BaaWolves struct {
	Radius         float64 `yaml:"radius"`
	AlertRange     float64 `yaml:"alert_range"`
	PounceRange    float64 `yaml:"pounce_range"`
	PounceHeight   float64 `yaml:"pounce_height"`
	PounceVelocity Point   `yaml:"pounce_velocity"`
	Gravity        float64 `yaml:"gravity"`
	Bump           float64 `yaml:"bump"`
	Points         int     `yaml:"points"`
}

// BaaBushes defines the bouncy bushes.
type BaaBushes struct {
	Radius     float64 `yaml:"radius"`
	HighBounce float64 `yaml:"high_bounce"` // With jump held
	LowBounce  float64 `yaml:"low_bounce"`
}

// BaaBlades defines the swinging blades.
type BaaBlades struct {
	Radius    float64 `yaml:"radius"`
	BobRadius float64 `yaml:"bob_radius"`
	Length    float64 `yaml:"length"`
	Speed     float64 `yaml:"speed"` // Radians per tick
}

// BaaDoughnuts defines collectibles and their sprinkles.
type BaaDoughnuts struct {
	Radius          float64 `yaml:"radius"`
	Points          int     `yaml:"points"`
	SprinkleSpeed   float64 `yaml:"sprinkle_speed"`
	SprinkleGravity float64 `yaml:"sprinkle_gravity"`
	SprinkleSpin    float64 `yaml:"sprinkle_spin"`
}

// BaaExit defines the level exit.
type BaaExit struct {
	Radius float64 `yaml:"radius"`
	Bursts int     `yaml:"bursts"`
}

// Sprite describes how a named sprite is drawn in the terminal and how
// large it is in the world.
type Sprite struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Glyph  string  `yaml:"glyph"`
	Color  string  `yaml:"color"`
	Frames int     `yaml:"frames"`
}

// BaaEditor defines level editor settings.
type BaaEditor struct {
	Snap         float64 `yaml:"snap"`
	CameraSpeed  float64 `yaml:"camera_speed"`
	ZoomStep     float64 `yaml:"zoom_step"`
	MinZoom      float64 `yaml:"min_zoom"`
	MaxZoom      float64 `yaml:"max_zoom"`
	SaveCooldown int     `yaml:"save_cooldown"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to wolf pounce speed at max difficulty
	RangeBonus      float64 `yaml:"range_bonus"`      // Added to wolf pounce range at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// PlatformFor returns the platform shape for an island sprite.
func (c BaaConfig) PlatformFor(sprite string) (PlatformShape, bool) {
	for _, p := range c.Platforms {
		if p.Sprite == sprite {
			return p, true
		}
	}
	return PlatformShape{}, false
}

// SpriteFor returns the sprite description for name, or a small placeholder.
func (c BaaConfig) SpriteFor(name string) Sprite {
	if s, ok := c.Sprites[name]; ok {
		return s
	}
	return Sprite{Width: 64, Height: 64, Glyph: "?", Color: "magenta", Frames: 1}
}
