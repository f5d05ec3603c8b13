package core

// RuntimeConfig is what the platform layer hands a game or the editor:
// the terminal size, the simulation rate and the RNG seed.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // 0 means seed from the clock
	Debug    bool  // Start with the collision overlay on
}

// Values Normalized gives unset fields.
const (
	DefaultScreenW  = 80
	DefaultScreenH  = 24
	DefaultTickRate = 60
)

// Normalized returns c with a non-positive size or tick rate replaced by the
// defaults. SSH clients that report no window size end up here.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = DefaultScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = DefaultScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

// GameState is what a game reports to the platform after each tick.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Won      bool // Whether the level was completed
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
