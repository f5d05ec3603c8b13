package baa

import (
	"math"

	"github.com/vovakirdan/baamageddon/internal/aabb"
	"github.com/vovakirdan/baamageddon/internal/config"
	"github.com/vovakirdan/baamageddon/internal/core"
)

// Wolf animation frames double as its behaviour state.
const (
	wolfAlert  = 0
	wolfIdle   = 1
	wolfPounce = 2
)

// kill ends the run. Only a sheep under player control can die.
func (g *Game) kill() {
	if g.st.Play == PlayPlay && !g.st.Complete {
		g.st.Play = PlayDead
	}
}

// updateWolves runs the idle/alert/pounce cycle of every wolf.
func (g *Game) updateWolves(sheep *Object) {
	wc := g.cfg.Wolves
	pounceRange := g.difficulty.Range(wc.PounceRange, g.st.Score, g.tick)
	pounceSpeed := g.difficulty.Speed(1, g.st.Score, g.tick)

	for _, wolf := range g.store.ByType(TypeWolf) {
		dx := math.Abs(sheep.Pos.X - wolf.Pos.X)

		if wolf.Frame != wolfPounce {
			// Idle when far away or once the sheep is behind.
			if dx > wc.AlertRange || sheep.Pos.X > wolf.Pos.X {
				wolf.Frame = wolfIdle
			} else {
				wolf.Frame = wolfAlert
				if dx < pounceRange && wolf.Pos.Y+wc.PounceHeight > sheep.Pos.Y {
					wolf.Frame = wolfPounce
				}
			}
		} else if !g.st.WolfLatched {
			wolf.Vel = aabb.V(wc.PounceVelocity.X, wc.PounceVelocity.Y).Scale(pounceSpeed)
			wolf.Acc = wolf.Acc.Add(aabb.V(0, wc.Gravity))
			if Colliding(wolf, sheep) {
				g.kill()
			}
		}

		if Colliding(wolf, sheep) && !g.st.WolfLatched {
			// Bumped: the wolf is knocked up and away.
			wolf.Acc = aabb.V(0, wc.Gravity)
			wolf.Vel.Y -= wc.Bump
			wolf.Update()
			g.st.Score += wc.Points
			g.st.WolfLatched = true
		}

		if wolf.Pos.Y > g.cfg.Physics.FloorBound {
			g.store.Destroy(wolf.ID)
			g.st.WolfLatched = false
			continue
		}
		wolf.Update()
	}
}

// updateBushes bounces the sheep off bushes.
func (g *Game) updateBushes(sheep *Object, in core.InputFrame) {
	bc := g.cfg.Bushes
	frames := g.cfg.SpriteFor(config.SpriteBush).Frames

	for _, bush := range g.store.ByType(TypeBush) {
		if Colliding(bush, sheep) {
			bush.SetSprite(config.SpriteBush, 1)
			if in.IsHeld(core.ActionJump) {
				sheep.Vel.Y = -bc.HighBounce
			} else {
				sheep.Vel.Y = -bc.LowBounce
			}
		}
		if bush.AnimSpeed > 0 && bush.Frame >= float64(frames-1) {
			bush.SetSprite(config.SpriteBush, 0)
			bush.Frame = 0
		}
		bush.Update()
	}
}

// updateBlades swings each blade and moves its bob along the arc.
func (g *Game) updateBlades(sheep *Object) {
	bc := g.cfg.Blades
	for _, pair := range g.st.Blades {
		blade := g.store.Get(pair.Blade)
		bob := g.store.Get(pair.Bob)
		if blade == nil || bob == nil {
			continue
		}

		if blade.Rotation <= 2*math.Pi {
			blade.Rotation += bc.Speed
		} else {
			blade.Rotation = 0
		}

		a := blade.Rotation + math.Pi/2
		bob.Pos = blade.Pos.Add(aabb.V(bc.Length*math.Cos(a), bc.Length*math.Sin(a)))
		bob.Update()
		blade.Update()

		if Colliding(sheep, bob) {
			g.kill()
		}
	}
}

// spawnSprinkles throws sprinkles from pos at angles i*step*pi for i in [1, n].
func (g *Game) spawnSprinkles(pos aabb.Vec2, n int, step float64) {
	dc := g.cfg.Doughnuts
	for i := 1; i <= n; i++ {
		s := g.store.Create(TypeSprinkle, pos, 0, config.SpriteSprinkle)
		s.RotSpeed = dc.SprinkleSpin
		s.Acc = aabb.V(0, dc.SprinkleGravity)
		s.SetDirection(dc.SprinkleSpeed, float64(i)*step*math.Pi)
	}
}

// updateDoughnuts collects doughnuts and, once none are left, opens the exit.
func (g *Game) updateDoughnuts(sheep *Object) {
	dc := g.cfg.Doughnuts
	doughnuts := g.store.ByType(TypeDoughnut)
	g.st.DoughnutsLeft = len(doughnuts)

	for _, d := range doughnuts {
		collided := Colliding(d, sheep)
		if collided {
			g.spawnSprinkles(sheep.Pos, 7, 0.25)
			g.st.Score += dc.Points
		}
		d.Update()
		if collided {
			g.store.Destroy(d.ID)
		}
	}

	if g.st.DoughnutsLeft == 0 && g.st.Play == PlayPlay {
		g.updateExit(sheep)
	}
}

func (g *Game) updateExit(sheep *Object) {
	exit := g.store.FirstOfType(TypeFinal)
	if exit == nil {
		return
	}
	exit.SetSprite(config.SpriteExit, 1)
	exit.Update()

	if Colliding(exit, sheep) {
		for range g.cfg.Exit.Bursts {
			g.spawnSprinkles(exit.Pos, 39, 0.05)
		}
		g.store.Destroy(exit.ID)
		g.st.Complete = true
	}
}

// updateSprinkles moves sprinkles and drops the ones that left the view.
func (g *Game) updateSprinkles() {
	half := aabb.V(g.cfg.Physics.DisplayW/2, g.cfg.Physics.DisplayH/2)
	view := aabb.New(g.camera, half)
	size := g.cfg.SpriteFor(config.SpriteSprinkle)

	for _, s := range g.store.ByType(TypeSprinkle) {
		s.Update()
		box := aabb.New(s.Pos, aabb.V(size.Width/2, size.Height/2))
		if _, ok := aabb.StaticOverlap(view, box); !ok {
			g.store.Destroy(s.ID)
		}
	}
}
