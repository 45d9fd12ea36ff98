package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// Default returns the default game configuration. Values mirror
// defaults/runner.yaml and are used when the embedded YAML cannot be parsed.
func Default() GameConfig {
	return GameConfig{
		Physics: Physics{
			Gravity:           0.25,
			JumpImpulse:       -2.4,
			DoubleJumpImpulse: -2.0,
			MaxFallSpeed:      3.5,
			BaseSpeed:         0.5,
			SpeedRamp:         0.0005,
		},
		Obstacles: Obstacles{
			CrateWeight:   3,
			TallWeight:    2,
			SpinnerWeight: 2,
			CrateSize:     Size{Width: 2, Height: 2},
			TallSize:      Size{Width: 2, Height: 5},
			SpinnerSize:   Size{Width: 3, Height: 2},
			SpinnerRate:   0.2,
		},
		Coins: Coins{
			Value:        10,
			SpawnChance:  0.6,
			ReviveChance: 0.08,
			Offset:       1,
			TallOffset:   3,
			Jitter:       1,
		},
		Progression: Progression{
			ScorePerLevel:   100,
			LevelSpeedBonus: 0.01,
			SpawnDelayTicks: 90,
			DelayStepTicks:  9,
			DelayFloorTicks: 36,
		},
		Player: Player{
			X:            8,
			Width:        3,
			Height:       3,
			GroundOffset: 2,
		},
	}
}
