// Package config provides YAML-based game configuration loading and
// difficulty management for Space Jump.
package config

// SpaceJumpConfig contains all configuration for Space Jump.
// Speeds are world units per second, accelerations world units per second
// squared and durations seconds; the simulation converts them to per-step
// values.
type SpaceJumpConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Camera     CameraConfig     `yaml:"camera"`
	Platforms  PlatformsConfig  `yaml:"platforms"`
	Hazards    HazardsConfig    `yaml:"hazards"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Loop       LoopConfig       `yaml:"loop"`
	Animation  AnimationConfig  `yaml:"animation"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines world dimensions.
type WorldConfig struct {
	Size float64 `yaml:"size"` // width of the playfield and camera extent
}

// PhysicsConfig defines integration parameters.
type PhysicsConfig struct {
	StepsPerSecond         float64 `yaml:"steps_per_second"`
	Gravity                float64 `yaml:"gravity"`
	JumpSpeed              float64 `yaml:"jump_speed"`
	TerminalVelocity       float64 `yaml:"terminal_velocity"`
	HorizontalAcceleration float64 `yaml:"horizontal_acceleration"`
	MaxHorizontalSpeed     float64 `yaml:"max_horizontal_speed"`
	JumpGrace              float64 `yaml:"jump_grace"` // coyote time in seconds
}

// PlayerConfig defines the player's body and spawn point.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	StartY float64 `yaml:"start_y"`
}

// CameraConfig defines the scrolling camera.
type CameraConfig struct {
	ScrollSpeed float64 `yaml:"scroll_speed"` // base upward scroll speed
}

// PlatformsConfig defines platform geometry and kind behaviour.
type PlatformsConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	FirstY        float64 `yaml:"first_y"`
	SnapDistance  float64 `yaml:"snap_distance"`
	MovingSpeed   float64 `yaml:"moving_speed"`
	IceDecayTime  float64 `yaml:"ice_decay_time"`
	IceStandRatio float64 `yaml:"ice_stand_ratio"`
}

// Size describes a hazard's bounding extents.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HazardsConfig defines rockets, comets and their alerts.
type HazardsConfig struct {
	Rocket             Size    `yaml:"rocket"`
	RocketJumpFactor   float64 `yaml:"rocket_jump_factor"`
	RocketCameraFactor float64 `yaml:"rocket_camera_factor"`
	Comet              Size    `yaml:"comet"`
	CometSpeed         float64 `yaml:"comet_speed"`
	AlertTime          float64 `yaml:"alert_time"`
}

// Range is a half-open sub-interval [Min, Max) of [0, 1).
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Contains reports whether v falls inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

// LevelConfig is a weighted-range table selecting the next platform and
// hazard kinds. A single uniform draw is tested against every range.
type LevelConfig struct {
	Name          string `yaml:"name"`
	PlatformCount int    `yaml:"platform_count"`
	Static        Range  `yaml:"static"`
	Moving        Range  `yaml:"moving"`
	Ice           Range  `yaml:"ice"`
	Rocket        Range  `yaml:"rocket"`
}

// CometConfig defines the height-keyed comet generator.
type CometConfig struct {
	Enabled     bool    `yaml:"enabled"`
	StartHeight float64 `yaml:"start_height"`
	Interval    float64 `yaml:"interval"`
	IntervalVar float64 `yaml:"interval_var"`
}

// GeneratorConfig defines procedural level generation.
type GeneratorConfig struct {
	GapMin float64       `yaml:"gap_min"`
	GapVar float64       `yaml:"gap_var"`
	Spread float64       `yaml:"spread"`
	Intro  []LevelConfig `yaml:"intro"`
	Steady []LevelConfig `yaml:"steady"`
	Comets CometConfig   `yaml:"comets"`
}

// LoopConfig defines the frame-to-step driver.
type LoopConfig struct {
	MaxFrameGap float64 `yaml:"max_frame_gap"` // catch-up cap in seconds
	StartDelay  float64 `yaml:"start_delay"`
	EndDelay    float64 `yaml:"end_delay"`
}

// AnimationConfig defines pose interpolation.
type AnimationConfig struct {
	Speed float64 `yaml:"speed"` // radians per second for every tracked property
}

// ScoringConfig defines how height maps to points.
type ScoringConfig struct {
	Unit float64 `yaml:"unit"` // world units per point
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/steps at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to scroll speed factor at max difficulty
	GapIncrease     float64 `yaml:"gap_increase"`     // extra platform gap at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
