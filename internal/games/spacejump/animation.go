package spacejump

import (
	"math"

	"github.com/vovakirdan/space-jump/internal/core"
)

// AnimState is a player pose sequence.
type AnimState uint8

const (
	AnimRest AnimState = iota
	AnimRun
	AnimJump
	AnimFalling
	AnimRising
)

func (s AnimState) String() string {
	switch s {
	case AnimRest:
		return "rest"
	case AnimRun:
		return "run"
	case AnimJump:
		return "jump"
	case AnimFalling:
		return "falling"
	case AnimRising:
		return "rising"
	default:
		return "unknown"
	}
}

// Pose is the pair of tracked joint angles, in radians.
type Pose struct {
	Legs float64
	Arms float64
}

// restAngle points a limb straight down.
const restAngle = -math.Pi / 2

// keyframe is either a target pose or a jump to another state.
type keyframe struct {
	pose  Pose
	goTo  AnimState
	chain bool
}

func frame(legs, arms float64) keyframe {
	return keyframe{pose: Pose{Legs: restAngle + legs, Arms: restAngle + arms}}
}

func goTo(s AnimState) keyframe {
	return keyframe{goTo: s, chain: true}
}

var animations = [...][]keyframe{
	AnimRest:    {frame(-0.1, -0.1)},
	AnimRun:     {frame(-0.6, 0.6), frame(0.6, -0.6)},
	AnimJump:    {frame(-0.8, 1.2), goTo(AnimFalling)},
	AnimFalling: {frame(-0.2, -2.2), frame(-0.3, -2.5)},
	AnimRising:  {frame(-0.1, -0.1), frame(-0.3, -0.3)},
}

// Animator moves a Pose through the keyframes of the active state.
// The player physics chooses the state; the animator only plays it.
type Animator struct {
	State AnimState
	Frame int
	Pose  Pose
	step  float64 // max change per property per step
}

// NewAnimator starts in Rest with both limbs hanging straight.
func NewAnimator(step float64) Animator {
	return Animator{
		State: AnimRest,
		Pose:  Pose{Legs: restAngle, Arms: restAngle},
		step:  step,
	}
}

// Set switches state without touching the frame index.
func (a *Animator) Set(s AnimState) {
	a.State = s
}

// Restart switches state and rewinds to its first frame.
func (a *Animator) Restart(s AnimState) {
	a.State = s
	a.Frame = 0
}

// Advance moves the pose one step toward the current frame. The frame index
// only advances once every property has snapped to its target.
func (a *Animator) Advance() {
	frames := animations[a.State]
	if a.Frame >= len(frames) {
		a.Frame = 0
	}
	if kf := frames[a.Frame]; kf.chain {
		a.State = kf.goTo
		a.Frame = 0
		frames = animations[a.State]
	}

	target := frames[a.Frame].pose
	legs, legsDone := approach(a.Pose.Legs, target.Legs, a.step)
	arms, armsDone := approach(a.Pose.Arms, target.Arms, a.step)
	a.Pose = Pose{Legs: legs, Arms: arms}

	if legsDone && armsDone {
		a.Frame++
	}
}

// approach moves v toward target by step, snapping when within one step.
func approach(v, target, step float64) (float64, bool) {
	d := target - v
	if math.Abs(d) < step {
		return target, true
	}
	return v + step*core.Sign(d), false
}
