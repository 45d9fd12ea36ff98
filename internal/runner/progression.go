package runner

import "github.com/ametelin/tui-runner/internal/config"

// Progression tracks the difficulty curve: a continuous linear speed ramp
// with a staircase on top. Every level-up applies a one-time speed bonus
// proportional to the new level and shortens the spawn delay by a fixed
// step, floored at the configured minimum.
type Progression struct {
	cfg        config.Progression
	ramp       float64
	level      int
	speed      float64
	spawnDelay int
	reviveUsed bool // A revive coin was already granted on this level
}

// NewProgression creates the progression state for a fresh run.
func NewProgression(phys config.Physics, cfg config.Progression) *Progression {
	delay := cfg.SpawnDelayTicks
	if delay < cfg.DelayFloorTicks {
		delay = cfg.DelayFloorTicks
	}
	return &Progression{
		cfg:        cfg,
		ramp:       phys.SpeedRamp,
		level:      1,
		speed:      phys.BaseSpeed,
		spawnDelay: delay,
	}
}

// Tick applies the per-tick linear speed ramp.
func (p *Progression) Tick() {
	p.speed += p.ramp
}

// Advance recomputes the level from the score and applies level-up effects.
// Returns true if the level increased. Each transition applies its speed
// bonus and spawn-delay reduction exactly once, even when the score jumps
// several levels in a single tick.
func (p *Progression) Advance(score int) bool {
	per := p.cfg.ScorePerLevel
	if per <= 0 {
		return false
	}

	newLevel := score/per + 1
	if newLevel <= p.level {
		return false
	}

	for p.level < newLevel {
		p.level++
		p.speed += p.cfg.LevelSpeedBonus * float64(p.level)
		p.spawnDelay -= p.cfg.DelayStepTicks
		if p.spawnDelay < p.cfg.DelayFloorTicks {
			p.spawnDelay = p.cfg.DelayFloorTicks
		}
	}
	p.reviveUsed = false
	return true
}

// Level returns the current level (starts at 1).
func (p *Progression) Level() int { return p.level }

// Speed returns the current scroll speed in cells per tick.
func (p *Progression) Speed() float64 { return p.speed }

// SpawnDelay returns the current interval between spawn waves, in ticks.
func (p *Progression) SpawnDelay() int { return p.spawnDelay }

// ReviveEligible reports whether a revive coin may still be granted on the
// current level.
func (p *Progression) ReviveEligible() bool { return !p.reviveUsed }

// MarkReviveGranted records that the current level's revive coin was spawned.
func (p *Progression) MarkReviveGranted() { p.reviveUsed = true }
