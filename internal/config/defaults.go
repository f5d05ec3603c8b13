package config

import (
	_ "embed"
)

//go:embed defaults/baa.yaml
var defaultBaaYAML []byte

// Sprite names shared by the level files, the game and the editor.
const (
	SpriteSheepIdleLeft  = "spr_sheep1_idle_left"
	SpriteSheepIdleRight = "spr_sheep1_idle_right"
	SpriteSheepWalkLeft  = "spr_sheep1_walk_left"
	SpriteSheepWalkRight = "spr_sheep1_walk_right"
	SpriteSheepJumpLeft  = "spr_sheep1_jump_left"
	SpriteSheepJumpRight = "spr_sheep1_jump_right"
	SpriteIslandA        = "spr_island_A"
	SpriteIslandB        = "spr_island_B"
	SpriteIslandC        = "spr_island_C"
	SpriteIslandD        = "spr_island_D"
	SpriteDoughnut       = "spr_doughnut_12"
	SpriteSprinkle       = "spr_sprinkle"
	SpriteSpikes         = "spr_spikes"
	SpriteWolf           = "spr_wolf_left_3"
	SpriteBush           = "spr_bouncy_bush_4"
	SpriteBlade          = "spr_swinging_blade"
	SpriteMarker         = "spr_invisible_marker"
	SpriteExit           = "level_exit"
)

// DefaultBaaConfig returns the default game configuration.
func DefaultBaaConfig() BaaConfig {
	return BaaConfig{
		Physics: BaaPhysics{
			Gravity:    0.7,
			FloorBound: 1440,
			CameraEase: 8,
			DisplayW:   1280,
			DisplayH:   720,
		},
		Sheep: BaaSheep{
			Half:           Point{X: 40, Y: 40},
			Radius:         50,
			WalkSpeed:      5,
			JumpImpulse:    3,
			JumpTimeMax:    30,
			JumpMultiplier: 0.5,
			JumpDecay:      0.75,
			SpinAfter:      7,
			SpinSpeed:      0.25,
			AppearGravity:  0.5,
			GroundProbe:    5,
		},
		Platforms: []PlatformShape{
			{Sprite: SpriteIslandA, Offset: Point{X: 24, Y: 12}, Half: Point{X: 116, Y: 15}},
			{Sprite: SpriteIslandB, Offset: Point{X: 0, Y: 10}, Half: Point{X: 250, Y: 15}},
			{Sprite: SpriteIslandC, Offset: Point{X: 0, Y: 70}, Half: Point{X: 250, Y: 15}},
			{Sprite: SpriteIslandD, Offset: Point{X: 10, Y: 50}, Half: Point{X: 200, Y: 15}},
		},
		Spikes: BaaSpikes{
			Half:  Point{X: 45, Y: 15},
			Fling: -6,
		},
		Wolves: BaaWolves{
			Radius:         30,
			AlertRange:     500,
			PounceRange:    200,
			PounceHeight:   100,
			PounceVelocity: Point{X: -7, Y: -6},
			Gravity:        0.5,
			Bump:           7,
			Points:         1000,
		},
		Bushes: BaaBushes{
			Radius:     30,
			HighBounce: 32,
			LowBounce:  20,
		},
		Blades: BaaBlades{
			Radius:    5,
			BobRadius: 70,
			Length:    270,
			Speed:     0.04,
		},
		Doughnuts: BaaDoughnuts{
			Radius:          30,
			Points:          500,
			SprinkleSpeed:   16,
			SprinkleGravity: 0.5,
			SprinkleSpin:    0.1,
		},
		Exit: BaaExit{
			Radius: 30,
			Bursts: 11,
		},
		Sprites: defaultSprites(),
		Editor: BaaEditor{
			Snap:         32,
			CameraSpeed:  10,
			ZoomStep:     0.1,
			MinZoom:      0.2,
			MaxZoom:      1.0,
			SaveCooldown: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 10000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				RangeBonus:      100,
			},
		},
	}
}

func defaultSprites() map[string]Sprite {
	sheep := Sprite{Width: 100, Height: 100, Glyph: "@", Color: "bright_white", Frames: 1}
	island := func(w, h float64) Sprite {
		return Sprite{Width: w, Height: h, Glyph: "▓", Color: "green", Frames: 1}
	}
	return map[string]Sprite{
		SpriteSheepIdleLeft:  sheep,
		SpriteSheepIdleRight: sheep,
		SpriteSheepWalkLeft:  sheep,
		SpriteSheepWalkRight: sheep,
		SpriteSheepJumpLeft:  sheep,
		SpriteSheepJumpRight: sheep,
		SpriteIslandA:        island(280, 100),
		SpriteIslandB:        island(520, 120),
		SpriteIslandC:        island(520, 200),
		SpriteIslandD:        island(440, 160),
		SpriteDoughnut:       {Width: 64, Height: 64, Glyph: "o", Color: "bright_magenta", Frames: 12},
		SpriteSprinkle:       {Width: 16, Height: 16, Glyph: "*", Color: "bright_yellow", Frames: 1},
		SpriteSpikes:         {Width: 90, Height: 40, Glyph: "^", Color: "red", Frames: 1},
		SpriteWolf:           {Width: 120, Height: 100, Glyph: "W", Color: "gray", Frames: 3},
		SpriteBush:           {Width: 128, Height: 128, Glyph: "%", Color: "bright_green", Frames: 4},
		SpriteBlade:          {Width: 60, Height: 340, Glyph: "|", Color: "cyan", Frames: 1},
		SpriteMarker:         {Width: 64, Height: 64, Glyph: "·", Color: "gray", Frames: 1},
		SpriteExit:           {Width: 64, Height: 64, Glyph: "O", Color: "bright_yellow", Frames: 1},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "baamageddon", "baa":
		return defaultBaaYAML
	default:
		return nil
	}
}
