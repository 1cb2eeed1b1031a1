package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in every config directory.
const ConfigFile = "spacejump.yaml"

// LoadSpaceJump loads Space Jump configuration.
// Search order: customPath -> ~/.spacejump/configs/spacejump.yaml ->
// ./configs/spacejump.yaml -> embedded default -> hardcoded default.
// Only a custom path reports read or parse failures; the other locations
// are skipped when missing or invalid.
func LoadSpaceJump(customPath string) (SpaceJumpConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	for _, path := range SearchPaths() {
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg := DefaultSpaceJumpConfig()
	if err := yaml.Unmarshal(defaultSpaceJumpYAML, &cfg); err != nil {
		return DefaultSpaceJumpConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// SearchPaths returns the on-disk locations LoadSpaceJump tries, in order.
func SearchPaths() []string {
	var paths []string
	if p := userConfigPath(ConfigFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", ConfigFile))
}

// loadFile reads a YAML file on top of the defaults so partial files only
// override what they name.
func loadFile(path string) (SpaceJumpConfig, error) {
	cfg := DefaultSpaceJumpConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a file in ~/.spacejump/configs/.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spacejump", "configs", filename)
}

// ApplySpaceJumpPreset modifies the config based on a difficulty preset.
func ApplySpaceJumpPreset(cfg *SpaceJumpConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Physics.JumpGrace = 0.15
		cfg.Generator.Comets.Interval *= 1.5
	case DifficultyHard:
		cfg.Physics.JumpGrace = 0.05
		cfg.Generator.Comets.StartHeight /= 2
	}
}

// ApplyClassic switches the config to the classic mode: one level table,
// no intro sequence and no comets.
func ApplyClassic(cfg *SpaceJumpConfig) {
	cfg.Generator.Intro = nil
	cfg.Generator.Steady = []LevelConfig{ClassicLevel()}
	cfg.Generator.Comets.Enabled = false
}

// Validate reports the first problem that would make the simulation
// misbehave.
func (c SpaceJumpConfig) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"world.size", c.World.Size},
		{"physics.steps_per_second", c.Physics.StepsPerSecond},
		{"physics.jump_speed", c.Physics.JumpSpeed},
		{"physics.terminal_velocity", c.Physics.TerminalVelocity},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"platforms.width", c.Platforms.Width},
		{"platforms.height", c.Platforms.Height},
		{"platforms.ice_decay_time", c.Platforms.IceDecayTime},
		{"hazards.rocket.width", c.Hazards.Rocket.Width},
		{"hazards.rocket.height", c.Hazards.Rocket.Height},
		{"hazards.comet.width", c.Hazards.Comet.Width},
		{"hazards.comet.height", c.Hazards.Comet.Height},
		{"loop.max_frame_gap", c.Loop.MaxFrameGap},
		{"animation.speed", c.Animation.Speed},
		{"scoring.unit", c.Scoring.Unit},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v", p.name, p.v)
		}
	}

	if c.Player.Width > c.World.Size || c.Platforms.Width > c.World.Size {
		return errors.New("config: player and platforms must fit inside world.size")
	}
	if c.Generator.GapMin < 0 || c.Generator.GapVar < 0 {
		return errors.New("config: generator gaps must not be negative")
	}
	if c.Platforms.IceStandRatio < 0 || c.Platforms.IceStandRatio > 1 {
		return fmt.Errorf("config: platforms.ice_stand_ratio must be in [0, 1], got %v", c.Platforms.IceStandRatio)
	}
	if c.Generator.Comets.Enabled && c.Generator.Comets.Interval <= 0 {
		return errors.New("config: generator.comets.interval must be positive")
	}

	if len(c.Generator.Steady) == 0 {
		return errors.New("config: generator.steady needs at least one level")
	}
	for i, lvl := range c.Generator.Intro {
		if err := lvl.validate(); err != nil {
			return fmt.Errorf("config: generator.intro[%d]: %w", i, err)
		}
	}
	for i, lvl := range c.Generator.Steady {
		if err := lvl.validate(); err != nil {
			return fmt.Errorf("config: generator.steady[%d]: %w", i, err)
		}
	}
	return nil
}

func (l LevelConfig) validate() error {
	if l.PlatformCount < 1 {
		return fmt.Errorf("level %q: platform_count must be at least 1", l.Name)
	}
	ranges := map[string]Range{
		"static": l.Static,
		"moving": l.Moving,
		"ice":    l.Ice,
		"rocket": l.Rocket,
	}
	for name, r := range ranges {
		if r.Min < 0 || r.Max > 1 {
			return fmt.Errorf("level %q: %s range [%v, %v) outside [0, 1]", l.Name, name, r.Min, r.Max)
		}
		if r.Max < r.Min {
			return fmt.Errorf("level %q: %s range is inverted", l.Name, name)
		}
	}
	return nil
}
