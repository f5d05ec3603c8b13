package baa

import (
	"github.com/vovakirdan/baamageddon/internal/aabb"
	"github.com/vovakirdan/baamageddon/internal/config"
)

// buildPlatforms turns every island into a walkable box using the shape table.
// Islands whose sprite has no shape are decoration only.
func buildPlatforms(store *Store, cfg config.BaaConfig) []Platform {
	var out []Platform
	for _, o := range store.ByType(TypeIsland) {
		shape, ok := cfg.PlatformFor(o.Sprite)
		if !ok {
			continue
		}
		offset := aabb.V(shape.Offset.X, shape.Offset.Y)
		out = append(out, Platform{
			Box:      aabb.New(o.Pos.Add(offset), aabb.V(shape.Half.X, shape.Half.Y)),
			ObjectID: o.ID,
		})
	}
	return out
}

func buildSpikes(store *Store, cfg config.BaaConfig) []Spike {
	var out []Spike
	half := aabb.V(cfg.Spikes.Half.X, cfg.Spikes.Half.Y)
	for _, o := range store.ByType(TypeSpike) {
		out = append(out, Spike{Box: aabb.New(o.Pos, half), ObjectID: o.ID})
	}
	return out
}

// sheepBox returns the sheep's collision box at its current position.
func (g *Game) sheepBox(sheep *Object) aabb.AABB {
	return aabb.New(sheep.Pos, aabb.V(g.cfg.Sheep.Half.X, g.cfg.Sheep.Half.Y))
}

// resolvePlatforms keeps the sheep on top of platforms. Platforms are tried in
// load order and the first one that registers any hit ends the pass.
func (g *Game) resolvePlatforms(sheep *Object) {
	box := g.sheepBox(sheep)

	for _, p := range g.st.Platforms {
		hits := 0

		// Horizontal sweep while falling, so walls stop sideways drift.
		if sheep.Vel.X != 0 && sheep.Vel.Y > 0 {
			if pos, ok := aabb.SweepTest(p.Box, box, aabb.V(sheep.Vel.X, 0)); ok {
				pos.X += sheep.Vel.X * -0.5
				sheep.Pos = pos
				box = box.Moved(pos)
				sheep.Vel.X = 0
				sheep.Acc.X = 0
				hits++
			}
		}

		if g.st.Sheep == SheepAirborne && sheep.Pos.Y < p.Box.Pos.Y && sheep.Vel.Y > 0 {
			// Land only from above.
			if pos, ok := aabb.SweepTest(p.Box, box, aabb.V(0, sheep.Vel.Y)); ok {
				sheep.Pos = aabb.V(pos.X, pos.Y-1)
				g.st.Sheep = SheepIdle
				sheep.Vel.Y = 0
				sheep.Acc.Y = 0
				hits++
			}
		} else if g.st.Sheep != SheepAirborne {
			if _, ok := aabb.SweepTest(p.Box, box, aabb.V(0, g.cfg.Sheep.GroundProbe)); ok {
				hits++
			}
		}

		if hits > 0 {
			return
		}
	}

	// Nothing underfoot.
	if g.st.Sheep != SheepAirborne {
		sheep.Vel.Y = 0
		g.st.Sheep = SheepAirborne
	}
}

// resolveSpikes flings the sheep and kills it when its horizontal motion
// touches a spike.
func (g *Game) resolveSpikes(sheep *Object) {
	box := g.sheepBox(sheep)
	for _, s := range g.st.Spikes {
		if _, ok := aabb.SweepTest(s.Box, box, aabb.V(sheep.Vel.X, 0)); ok {
			sheep.Acc = sheep.Acc.Add(aabb.V(0, g.cfg.Spikes.Fling))
			sheep.Update()
			g.kill()
		}
	}
}
