package config

import (
	_ "embed"
)

//go:embed defaults/spacejump.yaml
var defaultSpaceJumpYAML []byte

// DefaultSpaceJumpConfig returns the default Space Jump configuration.
// It mirrors defaults/spacejump.yaml and backs the loader when the embedded
// file cannot be parsed.
func DefaultSpaceJumpConfig() SpaceJumpConfig {
	return SpaceJumpConfig{
		World: WorldConfig{Size: 1000},
		Physics: PhysicsConfig{
			StepsPerSecond:         500,
			Gravity:                2000,
			JumpSpeed:              1200,
			TerminalVelocity:       1000,
			HorizontalAcceleration: 2000,
			MaxHorizontalSpeed:     500,
			JumpGrace:              0.1,
		},
		Player: PlayerConfig{Width: 70, Height: 150, StartY: 10},
		Camera: CameraConfig{ScrollSpeed: 200},
		Platforms: PlatformsConfig{
			Width:         100,
			Height:        20,
			FirstY:        200,
			SnapDistance:  10,
			MovingSpeed:   100,
			IceDecayTime:  0.5,
			IceStandRatio: 0.7,
		},
		Hazards: HazardsConfig{
			Rocket:             Size{Width: 40, Height: 60},
			RocketJumpFactor:   1.5,
			RocketCameraFactor: 1.2,
			Comet:              Size{Width: 60, Height: 60},
			CometSpeed:         900,
			AlertTime:          1.0,
		},
		Generator: GeneratorConfig{
			GapMin: 100,
			GapVar: 50,
			Spread: 500,
			Intro: []LevelConfig{
				{Name: "warmup", PlatformCount: 15, Static: Range{0, 1}},
				{Name: "moving", PlatformCount: 20, Moving: Range{0, 0.3}, Static: Range{0.3, 1}},
				{Name: "ice", PlatformCount: 25, Ice: Range{0, 0.15}, Moving: Range{0.15, 0.4}, Static: Range{0.4, 1}, Rocket: Range{0.95, 1}},
			},
			Steady: []LevelConfig{
				ClassicLevel(),
				{Name: "slippery", PlatformCount: 20, Ice: Range{0, 0.5}, Moving: Range{0.5, 0.6}, Static: Range{0.6, 1}, Rocket: Range{0.9, 1}},
				{Name: "conveyor", PlatformCount: 20, Ice: Range{0, 0.05}, Moving: Range{0.05, 0.75}, Static: Range{0.75, 1}, Rocket: Range{0.92, 1}},
				{Name: "overlap", PlatformCount: 25, Ice: Range{0, 0.3}, Moving: Range{0.2, 0.6}, Static: Range{0.5, 1}, Rocket: Range{0.85, 1}},
			},
			Comets: CometConfig{
				Enabled:     true,
				StartHeight: 5000,
				Interval:    3000,
				IntervalVar: 2000,
			},
		},
		Loop:      LoopConfig{MaxFrameGap: 0.5, StartDelay: 1.0, EndDelay: 1.5},
		Animation: AnimationConfig{Speed: 6},
		Scoring:   ScoringConfig{Unit: 10},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				GapIncrease:     50,
			},
		},
	}
}

// ClassicLevel returns the single level table of the classic mode.
func ClassicLevel() LevelConfig {
	return LevelConfig{
		Name:          "mixed",
		PlatformCount: 30,
		Ice:           Range{0, 0.1},
		Moving:        Range{0.1, 0.4},
		Static:        Range{0.4, 1},
		Rocket:        Range{0.9, 1},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "spacejump", "spacejump-classic":
		return defaultSpaceJumpYAML
	default:
		return nil
	}
}
