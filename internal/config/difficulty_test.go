package config

import (
	"math"
	"testing"
)

func testDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled: true,
		Progression: ProgressionConfig{
			Type:  "score",
			MaxAt: 100,
		},
		Scaling: ScalingConfig{
			SpeedMultiplier: 1.0,
			GapIncrease:     50,
		},
	}
}

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name    string
		initial float64
		score   int
		want    float64
	}{
		{"start", 0, 0, 0},
		{"half", 0, 50, 0.5},
		{"max", 0, 100, 1},
		{"saturates", 0, 1000, 1},
		{"initial offset", 0.5, 50, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testDifficulty()
			cfg.InitialLevel = tt.initial
			dm := NewDifficultyManager(cfg)
			if got := dm.Level(tt.score, 0); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Level(%d) = %v, expected %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := testDifficulty()
	cfg.Progression.Type = "time"
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(100, 25); got != 0.25 {
		t.Errorf("time progression should follow steps, got %v", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := testDifficulty()
	cfg.InitialLevel = 0.3
	cfg.Enabled = false
	dm := NewDifficultyManager(cfg)

	if dm.IsEnabled() {
		t.Error("IsEnabled should be false")
	}
	if got := dm.Level(100, 100); got != 0.3 {
		t.Errorf("disabled Level = %v, expected initial 0.3", got)
	}
}

func TestDifficultySpeedAndGap(t *testing.T) {
	dm := NewDifficultyManager(testDifficulty())

	if got := dm.Speed(200, 0, 0); got != 200 {
		t.Errorf("Speed at level 0 = %v", got)
	}
	if got := dm.Speed(200, 100, 0); got != 400 {
		t.Errorf("Speed at level 1 = %v, expected 400", got)
	}
	if got := dm.Gap(100, 50, 0); got != 125 {
		t.Errorf("Gap at level 0.5 = %v, expected 125", got)
	}
}

func TestInitialLevelClamps(t *testing.T) {
	cfg := testDifficulty()
	cfg.InitialLevel = 3
	dm := NewDifficultyManager(cfg)
	if got := dm.Level(0, 0); got != 1 {
		t.Errorf("Level = %v, expected clamp to 1", got)
	}
}
