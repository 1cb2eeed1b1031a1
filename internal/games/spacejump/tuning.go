package spacejump

import (
	"math"

	"github.com/vovakirdan/space-jump/internal/config"
)

// tuning holds the config converted to per-step units. Every velocity is in
// world units per step and every acceleration in world units per step
// squared, so the step function never divides by the step rate.
type tuning struct {
	world float64
	sps   float64

	gravity  float64
	jump     float64
	terminal float64
	hAccel   float64
	hMax     float64
	grace    int

	playerW, playerH float64
	playerStartY     float64

	scroll float64 // upward camera speed magnitude

	platW, platH float64
	firstY       float64
	snap         float64
	moving       float64
	iceMax       int
	iceStand     float64 // remaining ice time a platform needs to be standable

	rocketW, rocketH float64
	rocketJump       float64
	rocketCamera     float64
	cometW, cometH   float64
	comet            float64
	alertSteps       int

	animStep  float64
	scoreUnit float64
}

func newTuning(cfg config.SpaceJumpConfig) tuning {
	sps := cfg.Physics.StepsPerSecond
	speed := func(v float64) float64 { return v / sps }
	accel := func(v float64) float64 { return v / (sps * sps) }
	steps := func(seconds float64) int { return int(math.Round(seconds * sps)) }

	t := tuning{
		world: cfg.World.Size,
		sps:   sps,

		gravity:  accel(cfg.Physics.Gravity),
		jump:     speed(cfg.Physics.JumpSpeed),
		terminal: speed(cfg.Physics.TerminalVelocity),
		hAccel:   accel(cfg.Physics.HorizontalAcceleration),
		hMax:     speed(cfg.Physics.MaxHorizontalSpeed),
		grace:    steps(cfg.Physics.JumpGrace),

		playerW:      cfg.Player.Width,
		playerH:      cfg.Player.Height,
		playerStartY: cfg.Player.StartY,

		scroll: speed(cfg.Camera.ScrollSpeed),

		platW:  cfg.Platforms.Width,
		platH:  cfg.Platforms.Height,
		firstY: cfg.Platforms.FirstY,
		snap:   cfg.Platforms.SnapDistance,
		moving: speed(cfg.Platforms.MovingSpeed),
		iceMax: steps(cfg.Platforms.IceDecayTime),

		rocketW:      cfg.Hazards.Rocket.Width,
		rocketH:      cfg.Hazards.Rocket.Height,
		rocketJump:   cfg.Hazards.RocketJumpFactor,
		rocketCamera: cfg.Hazards.RocketCameraFactor,
		cometW:       cfg.Hazards.Comet.Width,
		cometH:       cfg.Hazards.Comet.Height,
		comet:        speed(cfg.Hazards.CometSpeed),
		alertSteps:   steps(cfg.Hazards.AlertTime),

		animStep:  speed(cfg.Animation.Speed),
		scoreUnit: cfg.Scoring.Unit,
	}
	t.iceStand = float64(t.iceMax) * cfg.Platforms.IceStandRatio
	return t
}
