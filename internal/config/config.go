// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner.
package config

// GameConfig contains all tunable parameters for a run.
type GameConfig struct {
	Physics     Physics     `yaml:"physics"`
	Obstacles   Obstacles   `yaml:"obstacles"`
	Coins       Coins       `yaml:"coins"`
	Progression Progression `yaml:"progression"`
	Player      Player      `yaml:"player"`
}

// Physics defines movement parameters. Velocities are in cells per tick;
// negative Y is up.
type Physics struct {
	Gravity           float64 `yaml:"gravity"`
	JumpImpulse       float64 `yaml:"jump_impulse"`
	DoubleJumpImpulse float64 `yaml:"double_jump_impulse"`
	MaxFallSpeed      float64 `yaml:"max_fall_speed"`
	BaseSpeed         float64 `yaml:"base_speed"`
	SpeedRamp         float64 `yaml:"speed_ramp"` // Added to speed every tick
}

// Obstacles defines the obstacle variants and their spawn weights.
type Obstacles struct {
	CrateWeight   int     `yaml:"crate_weight"`
	TallWeight    int     `yaml:"tall_weight"`
	SpinnerWeight int     `yaml:"spinner_weight"`
	CrateSize     Size    `yaml:"crate_size"`
	TallSize      Size    `yaml:"tall_size"`
	SpinnerSize   Size    `yaml:"spinner_size"`
	SpinnerRate   float64 `yaml:"spinner_rate"` // Rotation phase advance per tick
}

// Size is a width/height pair in cells.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Coins defines coin value and placement parameters.
type Coins struct {
	Value        int     `yaml:"value"`         // Points per ordinary coin
	SpawnChance  float64 `yaml:"spawn_chance"`  // Chance a spawn wave includes a coin
	ReviveChance float64 `yaml:"revive_chance"` // Chance the coin is a revive coin (once per level)
	Offset       int     `yaml:"offset"`        // Cells above the obstacle top
	TallOffset   int     `yaml:"tall_offset"`   // Offset used above tall variants instead
	Jitter       int     `yaml:"jitter"`        // Max random extra vertical offset
}

// Progression defines the staircase difficulty curve.
type Progression struct {
	ScorePerLevel   int     `yaml:"score_per_level"`
	LevelSpeedBonus float64 `yaml:"level_speed_bonus"` // Multiplied by the new level on level-up
	SpawnDelayTicks int     `yaml:"spawn_delay_ticks"` // Initial interval between spawn waves
	DelayStepTicks  int     `yaml:"delay_step_ticks"`  // Subtracted on each level-up
	DelayFloorTicks int     `yaml:"delay_floor_ticks"` // Spawn delay never drops below this
}

// Player defines the player's fixed position and collision box.
type Player struct {
	X            int `yaml:"x"`
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundOffset int `yaml:"ground_offset"` // Rows between the ground line and the bottom of the screen
}

// Preset is a named difficulty preset.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetFixed  Preset = "fixed" // No ramp, no staircase
)

// ParsePreset maps a CLI flag value to a Preset. Unknown values map to
// the empty preset, which leaves the config untouched.
func ParsePreset(s string) Preset {
	switch s {
	case "easy", "normal", "hard", "fixed":
		return Preset(s)
	default:
		return ""
	}
}

// ApplyPreset adjusts the config for a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Physics.BaseSpeed *= 0.8
		cfg.Progression.SpawnDelayTicks += 20
	case PresetHard:
		cfg.Physics.BaseSpeed *= 1.25
		cfg.Progression.SpawnDelayTicks -= 20
		if cfg.Progression.SpawnDelayTicks < cfg.Progression.DelayFloorTicks {
			cfg.Progression.SpawnDelayTicks = cfg.Progression.DelayFloorTicks
		}
	case PresetFixed:
		cfg.Physics.SpeedRamp = 0
		cfg.Progression.LevelSpeedBonus = 0
		cfg.Progression.DelayStepTicks = 0
	}
}
