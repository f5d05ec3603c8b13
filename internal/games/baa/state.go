package baa

import (
	"github.com/vovakirdan/baamageddon/internal/aabb"
	"github.com/vovakirdan/baamageddon/internal/config"
)

// PlayState is the top-level flow of a run.
type PlayState int

const (
	PlayStart  PlayState = iota // Reload the level
	PlayAppear                  // Drop the sheep in
	PlayPlay                    // Player in control
	PlayDead                    // Clear the level
	PlayWait                    // Tumble until jump restarts
)

func (p PlayState) String() string {
	switch p {
	case PlayStart:
		return "start"
	case PlayAppear:
		return "appear"
	case PlayPlay:
		return "play"
	case PlayDead:
		return "dead"
	case PlayWait:
		return "wait"
	default:
		return "unknown"
	}
}

// SheepState is what the sheep's feet are doing.
type SheepState int

const (
	SheepIdle SheepState = iota
	SheepWalking
	SheepAirborne
)

func (s SheepState) String() string {
	switch s {
	case SheepIdle:
		return "idle"
	case SheepWalking:
		return "walking"
	case SheepAirborne:
		return "airborne"
	default:
		return "unknown"
	}
}

// Direction is the way the sheep faces.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// Platform is a walkable box built from an island.
type Platform struct {
	Box      aabb.AABB
	ObjectID int
}

// Spike is a deadly box built from a spike object.
type Spike struct {
	Box      aabb.AABB
	ObjectID int
}

// bladePair ties a blade pivot to the bob that does the killing.
type bladePair struct {
	Blade int
	Bob   int
}

// State is the mutable context of one run.
type State struct {
	Score          int
	JumpTime       int
	Jumping        bool
	JumpMultiplier float64
	Play           PlayState
	Sheep          SheepState
	Direction      Direction
	Platforms      []Platform
	Spikes         []Spike
	Blades         []bladePair
	CameraTarget   aabb.Vec2
	WolfLatched    bool // A wolf contact is being processed
	DoughnutsLeft  int
	Complete       bool
	Debug          bool
}

func newState(sheep config.BaaSheep) State {
	s := State{
		Play:      PlayStart,
		Sheep:     SheepIdle,
		Direction: DirRight,
	}
	s.resetJump(sheep)
	return s
}

func (s *State) resetJump(sheep config.BaaSheep) {
	s.JumpTime = sheep.JumpTimeMax
	s.JumpMultiplier = sheep.JumpMultiplier
	s.Jumping = false
}
