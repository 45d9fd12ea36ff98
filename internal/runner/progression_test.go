package runner

import (
	"testing"

	"github.com/ametelin/tui-runner/internal/config"
)

func testProgression() *Progression {
	cfg := config.Default()
	return NewProgression(cfg.Physics, cfg.Progression)
}

func TestSpeedNonDecreasing(t *testing.T) {
	p := testProgression()

	prev := p.Speed()
	score := 0
	for i := 0; i < 5000; i++ {
		p.Tick()
		if i%7 == 0 {
			score += 10
			p.Advance(score)
		}
		if p.Speed() < prev {
			t.Fatalf("speed decreased at tick %d: %f -> %f", i, prev, p.Speed())
		}
		prev = p.Speed()
	}
}

func TestLevelStaircaseAppliedOnce(t *testing.T) {
	p := testProgression()
	cfg := config.Default()

	base := p.Speed()
	delay := p.SpawnDelay()

	// Jumping from 0 to 250 points crosses levels 2 and 3 in one call.
	if !p.Advance(250) {
		t.Fatal("Advance(250) should report a level-up")
	}
	if p.Level() != 3 {
		t.Errorf("Level() = %d, expected 3", p.Level())
	}

	wantSpeed := base + cfg.Progression.LevelSpeedBonus*2 + cfg.Progression.LevelSpeedBonus*3
	if p.Speed() != wantSpeed {
		t.Errorf("Speed() = %f, expected %f (each level bonus exactly once)", p.Speed(), wantSpeed)
	}

	wantDelay := delay - 2*cfg.Progression.DelayStepTicks
	if p.SpawnDelay() != wantDelay {
		t.Errorf("SpawnDelay() = %d, expected %d", p.SpawnDelay(), wantDelay)
	}

	// Same score again: no second application.
	if p.Advance(250) {
		t.Error("Advance with unchanged score should not level up again")
	}
	if p.Speed() != wantSpeed || p.SpawnDelay() != wantDelay {
		t.Error("repeated Advance must not reapply level-up effects")
	}
}

func TestLevelMonotonicInScore(t *testing.T) {
	p := testProgression()

	prev := p.Level()
	for score := 0; score <= 1000; score += 10 {
		p.Advance(score)
		if p.Level() < prev {
			t.Fatalf("level decreased at score %d: %d -> %d", score, prev, p.Level())
		}
		prev = p.Level()
	}
	if prev != 11 {
		t.Errorf("level at score 1000 = %d, expected 11", prev)
	}
}

func TestSpawnDelayFloor(t *testing.T) {
	cfg := config.Default()
	p := testProgression()

	// Push far past the point where the floor is reached.
	p.Advance(100 * cfg.Progression.ScorePerLevel)

	if p.SpawnDelay() != cfg.Progression.DelayFloorTicks {
		t.Errorf("SpawnDelay() = %d, expected floor %d", p.SpawnDelay(), cfg.Progression.DelayFloorTicks)
	}

	p.Advance(200 * cfg.Progression.ScorePerLevel)
	if p.SpawnDelay() < cfg.Progression.DelayFloorTicks {
		t.Errorf("SpawnDelay() = %d dropped below floor", p.SpawnDelay())
	}
}

func TestReviveEligibilityResetsPerLevel(t *testing.T) {
	p := testProgression()

	if !p.ReviveEligible() {
		t.Fatal("fresh run should be revive-eligible")
	}

	p.MarkReviveGranted()
	if p.ReviveEligible() {
		t.Error("eligibility should be closed after a grant")
	}

	p.Advance(100) // Level 2
	if !p.ReviveEligible() {
		t.Error("eligibility should reset on level-up")
	}
}

func TestLevelScenarioTenCoins(t *testing.T) {
	// Ten ordinary coins at 10 points each: 100 points, level 2, one
	// delay step down, one speed bonus.
	cfg := config.Default()
	p := NewProgression(cfg.Physics, cfg.Progression)

	base := p.Speed()
	score := 0
	for i := 0; i < 10; i++ {
		score += cfg.Coins.Value
		p.Advance(score)
	}

	if score != 100 {
		t.Fatalf("score = %d, expected 100", score)
	}
	if p.Level() != 2 {
		t.Errorf("Level() = %d, expected 2", p.Level())
	}
	if want := base + cfg.Progression.LevelSpeedBonus*2; p.Speed() != want {
		t.Errorf("Speed() = %f, expected %f", p.Speed(), want)
	}
	if want := cfg.Progression.SpawnDelayTicks - cfg.Progression.DelayStepTicks; p.SpawnDelay() != want {
		t.Errorf("SpawnDelay() = %d, expected %d", p.SpawnDelay(), want)
	}
}
