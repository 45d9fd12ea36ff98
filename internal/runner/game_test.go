package runner

import (
	"testing"

	"github.com/ametelin/tui-runner/internal/config"
	"github.com/ametelin/tui-runner/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(seed int64) *Game {
	g := New(config.Default())
	g.Reset(testRuntime(seed))
	return g
}

// stepN advances the game n ticks with no input.
func stepN(g *Game, n int) {
	in := core.NewInputFrame()
	for i := 0; i < n; i++ {
		g.Step(in)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (core.GameState, int) {
		g := newTestGame(12345)
		var state core.GameState
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%25 == 0 {
				in.Set(core.ActionJump)
			}
			state = g.Step(in).State
			if state.GameOver {
				break
			}
		}
		return state, g.tickCount
	}

	state1, ticks1 := run()
	state2, ticks2 := run()

	if state1 != state2 {
		t.Errorf("determinism failed: states differ: %+v vs %+v", state1, state2)
	}
	if ticks1 != ticks2 {
		t.Errorf("determinism failed: tick counts differ: %d vs %d", ticks1, ticks2)
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(42)

	stepN(g, 100)
	g.score = 70
	g.reviveHeld = true

	g.Reset(testRuntime(42))

	state := g.State()
	if state.Score != 0 {
		t.Errorf("Reset should clear score, got %d", state.Score)
	}
	if state.Level != 1 {
		t.Errorf("Reset should return to level 1, got %d", state.Level)
	}
	if state.ReviveHeld || state.AwaitingRevive || state.GameOver || state.Paused {
		t.Errorf("Reset should clear flags, got %+v", state)
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
}

func TestJumpAndDoubleJump(t *testing.T) {
	g := newTestGame(1)
	g.spawnTimer = 1 << 30 // No obstacles in this test

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)

	g.Step(jump)
	if g.player.grounded {
		t.Fatal("jump should leave the ground")
	}
	if g.player.vel != g.cfg.Physics.JumpImpulse+g.cfg.Physics.Gravity {
		t.Errorf("jump velocity = %f, expected impulse %f plus one tick of gravity",
			g.player.vel, g.cfg.Physics.JumpImpulse)
	}

	g.Step(jump)
	if !g.player.doubleJumped {
		t.Error("second input while airborne should double-jump")
	}
	velAfterDouble := g.player.vel

	// Third input is ignored: velocity only changes by gravity.
	g.Step(jump)
	if g.player.vel != velAfterDouble+g.cfg.Physics.Gravity {
		t.Errorf("third jump should be ignored, vel = %f", g.player.vel)
	}

	// Land and verify double-jump eligibility resets.
	stepN(g, 200)
	if !g.player.grounded {
		t.Fatal("player should have landed")
	}
	if g.player.doubleJumped {
		t.Error("double-jump eligibility should reset on landing")
	}
}

func TestCoinCollectionScoresPerCoin(t *testing.T) {
	g := newTestGame(1)
	g.spawnTimer = 1 << 30

	in := core.NewInputFrame()
	for i := 0; i < 3; i++ {
		// Drop a coin just right of the player; the next tick scrolls it in.
		g.course.coins = append(g.course.coins, Coin{X: 11.2, Y: g.groundY - 2})
		g.Step(in)
	}

	if want := 3 * g.cfg.Coins.Value; g.score != want {
		t.Errorf("score after 3 coins = %d, expected %d", g.score, want)
	}
	if len(g.course.Coins()) != 0 {
		t.Errorf("collected coins should be destroyed, %d remain", len(g.course.Coins()))
	}
}

func TestReviveCoinBanksTokenWithoutScore(t *testing.T) {
	g := newTestGame(1)
	g.spawnTimer = 1 << 30

	in := core.NewInputFrame()
	g.course.coins = append(g.course.coins, Coin{X: 11.2, Y: g.groundY - 2, Revive: true})
	g.Step(in)

	if !g.reviveHeld {
		t.Fatal("revive coin should bank the token")
	}
	if g.score != 0 {
		t.Errorf("revive coin should not add points, score = %d", g.score)
	}

	// Collecting a second one is idempotent.
	g.course.coins = append(g.course.coins, Coin{X: 11.2, Y: g.groundY - 2, Revive: true})
	g.Step(in)
	if !g.reviveHeld || g.score != 0 {
		t.Error("second revive coin should not stack or score")
	}
}

func TestCollisionWithoutTokenEndsRun(t *testing.T) {
	g := newTestGame(1)
	g.spawnTimer = 1 << 30
	g.score = 45

	g.course.obstacles = append(g.course.obstacles, Obstacle{X: 9, Width: 2, Height: 3})
	g.Step(core.NewInputFrame())

	state := g.State()
	if !state.GameOver {
		t.Fatal("collision without a token should end the run")
	}
	if state.Score != 45 || state.Level != 1 {
		t.Errorf("final state should keep score/level, got %+v", state)
	}

	// Further steps are no-ops.
	ticks := g.tickCount
	stepN(g, 10)
	if g.tickCount != ticks {
		t.Error("simulation should halt after game over")
	}
}

func TestCollisionWithTokenSuspendsUntilRevive(t *testing.T) {
	g := newTestGame(1)
	g.spawnTimer = 1 << 30
	g.reviveHeld = true

	g.course.obstacles = append(g.course.obstacles, Obstacle{X: 9, Width: 2, Height: 3})
	g.Step(core.NewInputFrame())

	if !g.State().AwaitingRevive {
		t.Fatal("collision with a token should suspend, not end")
	}
	if g.State().GameOver {
		t.Fatal("run should not be over while awaiting revive")
	}

	// Simulation is suspended until the explicit revive action.
	ticks := g.tickCount
	stepN(g, 20)
	if g.tickCount != ticks {
		t.Error("simulation advanced while awaiting revive")
	}

	revive := core.NewInputFrame()
	revive.Set(core.ActionRevive)
	g.Step(revive)

	state := g.State()
	if state.AwaitingRevive {
		t.Fatal("revive action should resume the run")
	}
	if state.ReviveHeld {
		t.Error("revive token should be consumed")
	}
	if !g.player.grounded || g.player.y != 0 {
		t.Error("player should resume at the respawn position")
	}
	for _, o := range g.course.Obstacles() {
		if int(o.X) < g.cfg.Player.X+reviveClearWindow {
			t.Errorf("hazard window should be cleared, obstacle at X=%f", o.X)
		}
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(1)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("pause action should pause")
	}

	ticks := g.tickCount
	stepN(g, 30)
	if g.tickCount != ticks {
		t.Error("paused game should not advance")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause action should resume")
	}
}

func TestLevelUpDuringRun(t *testing.T) {
	g := newTestGame(1)
	g.spawnTimer = 1 << 30
	g.score = 90

	delayBefore := g.prog.SpawnDelay()
	speedBefore := g.prog.Speed()
	g.prog.MarkReviveGranted()

	// The tenth coin pushes the score to 100.
	g.course.coins = append(g.course.coins, Coin{X: 11.2, Y: g.groundY - 2})
	g.Step(core.NewInputFrame())

	state := g.State()
	if state.Score != 100 {
		t.Fatalf("score = %d, expected 100", state.Score)
	}
	if state.Level != 2 {
		t.Errorf("level = %d, expected 2", state.Level)
	}
	if want := delayBefore - g.cfg.Progression.DelayStepTicks; g.prog.SpawnDelay() != want {
		t.Errorf("spawn delay = %d, expected %d", g.prog.SpawnDelay(), want)
	}
	if g.prog.Speed() <= speedBefore {
		t.Error("level-up should increase speed")
	}
	if !g.prog.ReviveEligible() {
		t.Error("revive eligibility should reset for the new level")
	}
}

func TestRenderDrawsGroundAndHUD(t *testing.T) {
	g := newTestGame(1)
	stepN(g, 5)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if screen.Get(0, g.groundY) != GroundChar {
		t.Error("ground line should be drawn")
	}
	row := screen.Row(0)
	if len(row) == 0 || row[2:8] != " Score" {
		t.Errorf("HUD should show the score, row 0 = %q", row)
	}
}
