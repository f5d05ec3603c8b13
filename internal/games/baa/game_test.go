package baa

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/baamageddon/internal/aabb"
	"github.com/vovakirdan/baamageddon/internal/config"
	"github.com/vovakirdan/baamageddon/internal/core"
	"github.com/vovakirdan/baamageddon/internal/level"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     12345,
}

// newTestGame builds a game over a hand-made level.
func newTestGame(objects ...level.Object) *Game {
	g := NewWithLevel(config.DefaultBaaConfig(), level.Level{Name: "test", Objects: objects})
	g.Reset(testRuntime)
	return g
}

func sheepAt(x, y float64) level.Object {
	return level.Object{Kind: level.KindSheep, X: x, Y: y, Sprite: config.SpriteSheepIdleRight}
}

func islandB(x, y float64) level.Object {
	return level.Object{Kind: level.KindIsland, X: x, Y: y, Sprite: config.SpriteIslandB}
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func holding(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

func pressing(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Press(a)
	return in
}

func run(g *Game, ticks int, in core.InputFrame) {
	for range ticks {
		g.Step(in)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		switch {
		case i%90 == 40:
			inputs[i] = pressing(core.ActionJump)
		case i%90 > 40 && i%90 < 55:
			inputs[i] = holding(core.ActionJump, core.ActionRight)
		case i > 30 && i%7 < 5:
			inputs[i] = holding(core.ActionRight)
		default:
			inputs[i] = idle()
		}
	}

	play := func() Snapshot {
		g := NewWithLevel(config.DefaultBaaConfig(), level.Default())
		g.Reset(testRuntime)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := play()
	snap2 := play()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != 600 {
		t.Errorf("Tick = %d, want 600", snap1.Tick)
	}
}

func TestStartBuildsLevel(t *testing.T) {
	g := newTestGame(
		sheepAt(300, 400),
		islandB(400, 600),
		level.Object{Kind: level.KindSpike, X: 1000, Y: 500, Sprite: config.SpriteSpikes},
		level.Object{Kind: level.KindBlade, X: 2000, Y: 100, Sprite: config.SpriteBlade},
	)

	if g.PlayState() != PlayStart {
		t.Fatalf("PlayState = %v, want start", g.PlayState())
	}

	g.Step(idle())
	if g.PlayState() != PlayAppear {
		t.Errorf("PlayState = %v, want appear", g.PlayState())
	}
	if len(g.st.Platforms) != 1 {
		t.Fatalf("platforms = %d, want 1", len(g.st.Platforms))
	}
	box := g.st.Platforms[0].Box
	if box.Pos.X != 400 || box.Pos.Y != 610 || box.Half.X != 250 || box.Half.Y != 15 {
		t.Errorf("platform box = %+v, want center (400,610) half (250,15)", box)
	}
	if len(g.st.Spikes) != 1 {
		t.Errorf("spikes = %d, want 1", len(g.st.Spikes))
	}
	if len(g.Objects(TypeBladeBob)) != 1 {
		t.Errorf("blade bobs = %d, want 1", len(g.Objects(TypeBladeBob)))
	}

	g.Step(idle())
	if g.PlayState() != PlayPlay {
		t.Errorf("PlayState = %v, want play", g.PlayState())
	}
	if g.st.Sheep != SheepAirborne {
		t.Errorf("SheepState = %v, want airborne", g.st.Sheep)
	}
}

func TestSheepLandsOnPlatform(t *testing.T) {
	g := newTestGame(sheepAt(300, 400), islandB(400, 600))
	run(g, 100, idle())

	if g.st.Sheep != SheepIdle {
		t.Fatalf("SheepState = %v, want idle", g.st.Sheep)
	}
	sheep := g.Sheep()
	// Platform top is 595; the sheep's half height is 40 and it rests 1px above.
	if math.Abs(sheep.Pos.Y-554) > 1e-6 {
		t.Errorf("sheep y = %f, want 554", sheep.Pos.Y)
	}
	if !sheep.Vel.IsZero() {
		t.Errorf("sheep velocity = %+v, want zero", sheep.Vel)
	}
	if g.State().GameOver {
		t.Error("game should not be over")
	}
}

func TestResolvePlatforms(t *testing.T) {
	wall := aabb.New(aabb.V(60, 0), aabb.V(10, 100))
	floor := aabb.New(aabb.V(0, 100), aabb.V(100, 15))
	farFloor := aabb.New(aabb.V(0, 500), aabb.V(100, 15))

	tests := []struct {
		name      string
		platforms []aabb.AABB
		state     SheepState
		pos, vel  aabb.Vec2
		wantPos   aabb.Vec2
		wantVel   aabb.Vec2
		wantState SheepState
	}{
		{
			// Contact at x=10, then bounced back by half the sideways speed.
			name:      "falling into a wall stops sideways drift",
			platforms: []aabb.AABB{wall},
			state:     SheepAirborne,
			pos:       aabb.V(0, 40),
			vel:       aabb.V(20, 30),
			wantPos:   aabb.V(0, 40),
			wantVel:   aabb.V(0, 30),
			wantState: SheepAirborne,
		},
		{
			name:      "first hit platform ends the pass",
			platforms: []aabb.AABB{wall, floor},
			state:     SheepAirborne,
			pos:       aabb.V(0, 40),
			vel:       aabb.V(20, 30),
			wantPos:   aabb.V(0, 40),
			wantVel:   aabb.V(0, 30),
			wantState: SheepAirborne,
		},
		{
			// Floor top is 85; the sheep lands 1px above its half height of 40.
			name:      "landing first skips the wall",
			platforms: []aabb.AABB{floor, wall},
			state:     SheepAirborne,
			pos:       aabb.V(0, 40),
			vel:       aabb.V(20, 30),
			wantPos:   aabb.V(0, 44),
			wantVel:   aabb.V(20, 0),
			wantState: SheepIdle,
		},
		{
			name:      "grounded sheep stays on the floor",
			platforms: []aabb.AABB{floor},
			state:     SheepIdle,
			pos:       aabb.V(0, 44),
			wantPos:   aabb.V(0, 44),
			wantState: SheepIdle,
		},
		{
			name:      "nothing within the ground probe",
			platforms: []aabb.AABB{farFloor},
			state:     SheepWalking,
			pos:       aabb.V(0, 44),
			vel:       aabb.V(5, 3),
			wantPos:   aabb.V(0, 44),
			wantVel:   aabb.V(5, 0),
			wantState: SheepAirborne,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(sheepAt(300, 400))
			g.st.Platforms = nil
			for i, box := range tt.platforms {
				g.st.Platforms = append(g.st.Platforms, Platform{Box: box, ObjectID: i + 1})
			}
			g.st.Sheep = tt.state
			sheep := &Object{Pos: tt.pos, Vel: tt.vel}

			g.resolvePlatforms(sheep)

			if g.st.Sheep != tt.wantState {
				t.Errorf("SheepState = %v, want %v", g.st.Sheep, tt.wantState)
			}
			if math.Abs(sheep.Pos.X-tt.wantPos.X) > 1e-9 || math.Abs(sheep.Pos.Y-tt.wantPos.Y) > 1e-9 {
				t.Errorf("pos = %+v, want %+v", sheep.Pos, tt.wantPos)
			}
			if math.Abs(sheep.Vel.X-tt.wantVel.X) > 1e-9 || math.Abs(sheep.Vel.Y-tt.wantVel.Y) > 1e-9 {
				t.Errorf("vel = %+v, want %+v", sheep.Vel, tt.wantVel)
			}
		})
	}
}

func TestHeldJumpGoesHigher(t *testing.T) {
	peak := func(hold bool) float64 {
		g := newTestGame(sheepAt(300, 400), islandB(400, 600))
		run(g, 100, idle())
		if g.st.Sheep != SheepIdle {
			t.Fatalf("sheep did not land")
		}

		g.Step(pressing(core.ActionJump))
		if g.st.Sheep != SheepAirborne {
			t.Fatalf("SheepState = %v after jump, want airborne", g.st.Sheep)
		}

		top := g.Sheep().Pos.Y
		for range 120 {
			if hold {
				g.Step(holding(core.ActionJump))
			} else {
				g.Step(idle())
			}
			top = min(top, g.Sheep().Pos.Y)
		}
		if g.st.Sheep != SheepIdle {
			t.Errorf("sheep did not land after jumping (hold=%v)", hold)
		}
		return top
	}

	tapped := peak(false)
	held := peak(true)
	if tapped >= 554 {
		t.Errorf("tapped jump peak = %f, want above 554", tapped)
	}
	if held >= tapped {
		t.Errorf("held jump peak %f should be above tapped peak %f", held, tapped)
	}
}

func TestWalkingOffEdgeFallsToDeath(t *testing.T) {
	g := newTestGame(sheepAt(300, 400), islandB(400, 600))
	run(g, 100, idle())

	for range 400 {
		g.Step(holding(core.ActionRight))
		if g.State().GameOver {
			break
		}
	}

	if g.PlayState() != PlayWait {
		t.Fatalf("PlayState = %v, want wait", g.PlayState())
	}
	if !g.State().GameOver || g.State().Won {
		t.Errorf("State = %+v, want game over without a win", g.State())
	}
	if g.Sheep().Pos.Y <= g.cfg.Physics.FloorBound {
		t.Errorf("sheep y = %f, want below the floor bound", g.Sheep().Pos.Y)
	}
}

func TestSpikeKills(t *testing.T) {
	g := newTestGame(
		sheepAt(300, 400),
		islandB(400, 600),
		level.Object{Kind: level.KindSpike, X: 300, Y: 580, Sprite: config.SpriteSpikes},
	)

	for range 100 {
		g.Step(idle())
		if g.State().GameOver {
			break
		}
	}
	if g.PlayState() != PlayWait {
		t.Errorf("PlayState = %v, want wait", g.PlayState())
	}
}

func TestDoughnutScores(t *testing.T) {
	g := newTestGame(
		sheepAt(300, 400),
		islandB(400, 600),
		level.Object{Kind: level.KindDoughnut, X: 300, Y: 480, Sprite: config.SpriteDoughnut},
		level.Object{Kind: level.KindDoughnut, X: 2000, Y: 100, Sprite: config.SpriteDoughnut},
	)

	run(g, 2, idle())

	if g.State().Score != 500 {
		t.Errorf("Score = %d, want 500", g.State().Score)
	}
	if n := len(g.Objects(TypeDoughnut)); n != 1 {
		t.Errorf("doughnuts left = %d, want 1", n)
	}
	if n := len(g.Objects(TypeSprinkle)); n != 7 {
		t.Errorf("sprinkles = %d, want 7", n)
	}

	// Sprinkles fly off screen and are removed.
	run(g, 200, idle())
	if n := len(g.Objects(TypeSprinkle)); n != 0 {
		t.Errorf("sprinkles after 200 ticks = %d, want 0", n)
	}
}

func TestExitCompletesLevel(t *testing.T) {
	g := newTestGame(
		sheepAt(300, 400),
		islandB(400, 600),
		level.Object{Kind: level.KindFinal, X: 300, Y: 500, Sprite: config.SpriteMarker},
	)

	run(g, 30, idle())

	st := g.State()
	if !st.GameOver || !st.Won {
		t.Fatalf("State = %+v, want a won game", st)
	}
	if len(g.Objects(TypeFinal)) != 0 {
		t.Error("exit should be removed once reached")
	}
	if len(g.Objects(TypeSprinkle)) == 0 {
		t.Error("reaching the exit should burst sprinkles")
	}
}

func TestExitClosedWhileDoughnutsRemain(t *testing.T) {
	g := newTestGame(
		sheepAt(300, 400),
		islandB(400, 600),
		level.Object{Kind: level.KindDoughnut, X: 2000, Y: 100, Sprite: config.SpriteDoughnut},
		level.Object{Kind: level.KindFinal, X: 300, Y: 500, Sprite: config.SpriteMarker},
	)

	run(g, 30, idle())

	if g.State().Won {
		t.Error("exit opened with a doughnut left")
	}
	if exit := g.Objects(TypeFinal); len(exit) != 1 || exit[0].Sprite != config.SpriteMarker {
		t.Error("exit should stay hidden")
	}
}

func TestWolfBumpScoresOnce(t *testing.T) {
	g := newTestGame(
		sheepAt(300, 400),
		islandB(400, 600),
		level.Object{Kind: level.KindWolf, X: 300, Y: 480, Sprite: config.SpriteWolf},
	)

	run(g, 2, idle())
	if g.State().Score != 1000 {
		t.Fatalf("Score = %d, want 1000", g.State().Score)
	}
	if !g.st.WolfLatched {
		t.Fatal("wolf contact should latch")
	}

	run(g, 300, idle())
	if g.State().Score != 1000 {
		t.Errorf("Score = %d, want 1000 after the wolf fell", g.State().Score)
	}
	if len(g.Objects(TypeWolf)) != 0 {
		t.Error("wolf should be removed below the floor bound")
	}
	if g.st.WolfLatched {
		t.Error("latch should clear once the wolf is gone")
	}
	if g.PlayState() != PlayPlay {
		t.Errorf("PlayState = %v, want play", g.PlayState())
	}
}

func TestWolfPounceKills(t *testing.T) {
	g := newTestGame(
		sheepAt(300, 400),
		islandB(400, 600),
		level.Object{Kind: level.KindWolf, X: 600, Y: 560, Sprite: config.SpriteWolf},
	)
	run(g, 100, idle())
	if g.State().GameOver {
		t.Fatal("sheep died before walking")
	}

	for range 60 {
		g.Step(holding(core.ActionRight))
		if g.State().GameOver {
			break
		}
	}
	if g.PlayState() != PlayWait {
		t.Errorf("PlayState = %v, want wait", g.PlayState())
	}
}

func TestBladeKills(t *testing.T) {
	g := newTestGame(
		sheepAt(300, 400),
		islandB(400, 600),
		level.Object{Kind: level.KindBlade, X: 300, Y: 100, Sprite: config.SpriteBlade},
	)

	run(g, 3, idle())
	if g.PlayState() != PlayWait {
		t.Errorf("PlayState = %v, want wait", g.PlayState())
	}
}

func TestSuicideAndRestart(t *testing.T) {
	g := newTestGame(
		sheepAt(300, 400),
		islandB(400, 600),
		level.Object{Kind: level.KindDoughnut, X: 300, Y: 480, Sprite: config.SpriteDoughnut},
		level.Object{Kind: level.KindDoughnut, X: 2000, Y: 100, Sprite: config.SpriteDoughnut},
	)

	run(g, 2, idle())
	if g.State().Score != 500 {
		t.Fatalf("Score = %d, want 500", g.State().Score)
	}

	g.Step(pressing(core.ActionSuicide))
	if g.PlayState() != PlayDead {
		t.Fatalf("PlayState = %v, want dead", g.PlayState())
	}

	g.Step(idle())
	if g.PlayState() != PlayWait || !g.State().GameOver {
		t.Fatalf("PlayState = %v, want wait", g.PlayState())
	}
	if len(g.Objects(TypeDoughnut)) != 0 {
		t.Error("doughnuts should be cleared on death")
	}
	if g.State().Score != 500 {
		t.Errorf("Score = %d, want 500 kept while waiting", g.State().Score)
	}

	g.Step(pressing(core.ActionJump))
	if g.PlayState() != PlayStart {
		t.Fatalf("PlayState = %v, want start", g.PlayState())
	}
	if g.State().Score != 0 {
		t.Errorf("Score = %d, want 0 after restart", g.State().Score)
	}

	g.Step(idle())
	if n := len(g.Objects(TypeDoughnut)); n != 2 {
		t.Errorf("doughnuts = %d after restart, want 2", n)
	}
	if g.State().GameOver {
		t.Error("restarted game should not be over")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(sheepAt(300, 400), islandB(400, 600))
	run(g, 5, idle())

	g.Step(pressing(core.ActionPause))
	before := g.Snapshot()
	run(g, 10, idle())
	after := g.Snapshot()

	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	if before.Hash() != after.Hash() {
		t.Error("paused game should not change")
	}

	g.Step(pressing(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause press should resume")
	}
}

func TestRenderHUDAndDebug(t *testing.T) {
	g := NewWithLevel(config.DefaultBaaConfig(), level.Default())
	g.Reset(testRuntime)
	run(g, 3, idle())
	g.Step(pressing(core.ActionDebug))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "SCORE: 0") {
		t.Errorf("row 0 = %q, want the score", screen.Row(0))
	}
	if !strings.Contains(screen.String(), "play:play") {
		t.Error("debug overlay should show the play state")
	}
}

func TestRegistered(t *testing.T) {
	g := New()
	if g.ID() != ID || g.Title() != "Baamageddon" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}
