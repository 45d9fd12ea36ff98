package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		t.Fatalf("embedded default should parse: %v", err)
	}

	if cfg != Default() {
		t.Errorf("embedded YAML drifted from Default():\n yaml: %+v\n code: %+v", cfg, Default())
	}
}

func TestApplyPresetFixed(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, PresetFixed)

	if cfg.Physics.SpeedRamp != 0 {
		t.Error("fixed preset should disable the speed ramp")
	}
	if cfg.Progression.LevelSpeedBonus != 0 {
		t.Error("fixed preset should disable the level speed bonus")
	}
	if cfg.Progression.DelayStepTicks != 0 {
		t.Error("fixed preset should freeze the spawn delay")
	}
}

func TestApplyPresetSpeeds(t *testing.T) {
	base := Default()

	easy := Default()
	ApplyPreset(&easy, PresetEasy)
	if easy.Physics.BaseSpeed >= base.Physics.BaseSpeed {
		t.Error("easy preset should lower the base speed")
	}
	if easy.Progression.SpawnDelayTicks <= base.Progression.SpawnDelayTicks {
		t.Error("easy preset should lengthen the spawn delay")
	}

	hard := Default()
	ApplyPreset(&hard, PresetHard)
	if hard.Physics.BaseSpeed <= base.Physics.BaseSpeed {
		t.Error("hard preset should raise the base speed")
	}
	if hard.Progression.SpawnDelayTicks < hard.Progression.DelayFloorTicks {
		t.Error("hard preset must respect the delay floor")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want Preset
	}{
		{"easy", PresetEasy},
		{"normal", PresetNormal},
		{"hard", PresetHard},
		{"fixed", PresetFixed},
		{"", ""},
		{"nightmare", ""},
	}

	for _, tc := range tests {
		if got := ParsePreset(tc.in); got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
