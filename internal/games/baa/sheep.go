package baa

import (
	"github.com/vovakirdan/baamageddon/internal/aabb"
	"github.com/vovakirdan/baamageddon/internal/config"
	"github.com/vovakirdan/baamageddon/internal/core"
)

func (g *Game) idleSprite() string {
	if g.st.Direction == DirRight {
		return config.SpriteSheepIdleRight
	}
	return config.SpriteSheepIdleLeft
}

func (g *Game) jumpSprite() string {
	if g.st.Direction == DirRight {
		return config.SpriteSheepJumpRight
	}
	return config.SpriteSheepJumpLeft
}

// updateSheep applies player control for one tick while in play.
func (g *Game) updateSheep(sheep *Object, in core.InputFrame) {
	sc := g.cfg.Sheep

	switch g.st.Sheep {
	case SheepIdle, SheepWalking:
		switch {
		case in.IsHeld(core.ActionLeft):
			sheep.Vel = aabb.V(-sc.WalkSpeed, 0)
			sheep.SetSprite(config.SpriteSheepWalkLeft, 1)
			g.st.Direction = DirLeft
			g.st.Sheep = SheepWalking
		case in.IsHeld(core.ActionRight):
			sheep.Vel = aabb.V(sc.WalkSpeed, 0)
			sheep.SetSprite(config.SpriteSheepWalkRight, 1)
			g.st.Direction = DirRight
			g.st.Sheep = SheepWalking
		default:
			sheep.SetSprite(g.idleSprite(), 0.333)
			sheep.Vel.X *= 0.5
			sheep.Acc = aabb.Vec2{}
		}

		if in.Has(core.ActionJump) {
			g.st.Jumping = true
			sheep.SetSprite(g.jumpSprite(), 1)
			sheep.Vel.Y = -sc.JumpImpulse
			g.st.Sheep = SheepAirborne
		}

	case SheepAirborne:
		switch {
		case !g.st.Jumping:
			sheep.Acc = aabb.V(0, g.cfg.Physics.Gravity)
		case in.IsHeld(core.ActionJump) && g.st.JumpTime > 0:
			// Holding jump keeps adding lift, less each tick.
			sheep.Vel.Y += -sc.JumpImpulse * g.st.JumpMultiplier
			g.st.JumpMultiplier *= sc.JumpDecay
			g.st.JumpTime--
		default:
			sheep.Rotation = 0
			g.st.resetJump(sc)
		}

		switch {
		case in.IsHeld(core.ActionLeft):
			sheep.Vel.X = -sc.WalkSpeed
			sheep.SetSprite(config.SpriteSheepJumpLeft, 1)
		case in.IsHeld(core.ActionRight):
			sheep.Vel.X = sc.WalkSpeed
			sheep.SetSprite(config.SpriteSheepJumpRight, 1)
		}

		if g.st.JumpTime < sc.JumpTimeMax-sc.SpinAfter {
			if g.st.Direction == DirRight {
				sheep.Rotation += sc.SpinSpeed
			} else {
				sheep.Rotation -= sc.SpinSpeed
			}
		}
	}

	switch g.st.Sheep {
	case SheepIdle:
		sheep.Acc = aabb.Vec2{}
		sheep.Vel = aabb.Vec2{}
	case SheepAirborne:
		if sheep.Pos.Y > g.cfg.Physics.FloorBound {
			g.st.Play = PlayDead
		}
	}

	if g.st.Play != PlayDead {
		g.resolvePlatforms(sheep)
	}

	g.st.CameraTarget = sheep.Pos
}
