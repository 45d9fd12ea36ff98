// Package runner implements an endless runner: the player auto-runs, jumps
// over procedurally spawned obstacles, collects coins, and can bank a single
// revive token for one extra continuation after a crash.
package runner

import (
	"github.com/ametelin/tui-runner/internal/config"
	"github.com/ametelin/tui-runner/internal/core"
)

// Safety window (in cells) cleared of obstacles ahead of the player when a
// revive resumes the run.
const reviveClearWindow = 24

// Game holds the full simulation state of one run. All mutation happens
// synchronously inside Step; the platform layer drives it at a fixed tick
// rate and reads State afterwards.
type Game struct {
	cfg     config.GameConfig
	runtime core.RuntimeConfig

	player avatar
	course *Course
	prog   *Progression

	score      int
	tickCount  int
	spawnTimer int
	groundY    int
	legFrame   int

	reviveHeld     bool
	awaitingRevive bool
	gameOver       bool
	paused         bool

	skin Skin
}

// New creates an uninitialized game; call Reset before stepping.
func New(cfg config.GameConfig) *Game {
	return &Game{cfg: cfg, skin: SkinGopher}
}

// SetSkin selects the player sprite. Cosmetic only.
func (g *Game) SetSkin(s Skin) {
	g.skin = s
}

// Reset initializes or restarts the run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.groundY = runtime.ScreenH - g.cfg.Player.GroundOffset

	g.player.reset()
	g.prog = NewProgression(g.cfg.Physics, g.cfg.Progression)

	if g.course == nil {
		g.course = NewCourse(runtime.Seed, runtime.ScreenW, g.groundY, &g.cfg)
	} else {
		g.course.SetScreen(runtime.ScreenW, g.groundY)
		g.course.Reset(runtime.Seed)
	}

	g.score = 0
	g.tickCount = 0
	g.legFrame = 0
	g.spawnTimer = g.prog.SpawnDelay()
	g.reviveHeld = false
	g.awaitingRevive = false
	g.gameOver = false
	g.paused = false
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Crashed with a banked token: the simulation is suspended until the
	// player explicitly revives.
	if g.awaitingRevive {
		if in.Has(core.ActionRevive) {
			g.revive()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.legFrame = (g.legFrame + 1) % 10

	if in.Has(core.ActionJump) {
		g.player.jump(g.cfg.Physics)
	}
	g.player.integrate(g.cfg.Physics)

	// Continuous ramp; the staircase is applied on level-up below.
	g.prog.Tick()

	g.spawnTimer--
	if g.spawnTimer <= 0 {
		if g.course.SpawnWave(g.prog.ReviveEligible()) {
			g.prog.MarkReviveGranted()
		}
		g.spawnTimer = g.prog.SpawnDelay()
	}

	g.course.Advance(g.prog.Speed())

	playerRect := g.playerRect()
	for _, coin := range g.course.CollectCoins(playerRect) {
		if coin.Revive {
			g.reviveHeld = true // No stacking
			continue
		}
		g.score += g.cfg.Coins.Value
	}
	g.prog.Advance(g.score)

	if g.course.HitObstacle(playerRect) {
		if g.reviveHeld {
			g.awaitingRevive = true
		} else {
			g.gameOver = true
		}
	}

	return core.StepResult{State: g.State()}
}

// revive consumes the banked token and resumes the run at the fixed respawn
// position with the hazard window cleared.
func (g *Game) revive() {
	g.reviveHeld = false
	g.awaitingRevive = false
	g.player.reset()
	g.course.ClearAhead(g.cfg.Player.X, reviveClearWindow)
}

// playerRect returns the player's collision box in screen coordinates.
func (g *Game) playerRect() core.Rect {
	screenY := g.groundY - g.cfg.Player.Height - int(-g.player.y)
	return core.NewRect(g.cfg.Player.X, screenY, g.cfg.Player.Width, g.cfg.Player.Height)
}

// State returns the current run state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:          g.score,
		Level:          g.prog.Level(),
		Speed:          g.prog.Speed(),
		ReviveHeld:     g.reviveHeld,
		AwaitingRevive: g.awaitingRevive,
		GameOver:       g.gameOver,
		Paused:         g.paused,
	}
}
