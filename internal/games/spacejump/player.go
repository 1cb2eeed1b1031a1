package spacejump

import (
	"math"

	"github.com/vovakirdan/space-jump/internal/core"
)

// tickPlayer applies one step of control, gravity and integration.
func (w *World) tickPlayer(keys core.Keys) {
	p := &w.Player
	t := &w.t
	grounded := w.onPlatform != nil

	switch {
	case keys.Left:
		p.Speed.X = math.Max(-t.hMax, p.Speed.X-t.hAccel)
		p.Direction = -1
		p.Anim.Set(AnimRun)
	case keys.Right:
		p.Speed.X = math.Min(t.hMax, p.Speed.X+t.hAccel)
		p.Direction = 1
		p.Anim.Set(AnimRun)
	default:
		if math.Abs(p.Speed.X) > t.hAccel {
			p.Speed.X -= core.Sign(p.Speed.X) * t.hAccel
		} else {
			p.Speed.X = 0
		}
		if grounded {
			p.Anim.Set(AnimRest)
		}
	}

	jumped := false
	switch {
	case (grounded || p.JumpGrace > 0) && keys.Up && !p.Dead:
		p.Speed.Y = -t.jump
		p.Anim.Restart(AnimJump)
		p.JumpGrace = 0
		jumped = true
		w.audio.Play(core.CueJump)
	case grounded:
		p.Speed.Y = 0
		p.Pos.Y = w.onPlatform.Top() - p.H
		p.JumpGrace = t.grace
	default:
		p.Speed.Y = math.Min(t.terminal, p.Speed.Y+t.gravity)
		if p.JumpGrace > 0 {
			p.JumpGrace--
		}
	}

	if !grounded {
		switch {
		case p.Speed.Y > 0:
			p.Anim.Set(AnimFalling)
		case p.Anim.State == AnimJump:
			// the jump pose chains into Falling on its own
		case p.Speed.Y < -t.jump:
			p.Anim.Set(AnimRising)
		default:
			p.Anim.Set(AnimRest)
		}
	}

	p.Pos = p.Pos.Add(p.Speed)
	if x := core.ClampF(p.Pos.X, 0, t.world-p.W); x != p.Pos.X {
		p.Pos.X = x
		p.Speed.X = 0
	}

	if grounded || jumped {
		p.High = p.Bottom()
	} else {
		p.High = math.Min(p.High, p.Bottom())
	}
	if p.Speed.Y >= 0 {
		p.Rocket = false
	}

	p.Anim.Advance()
	w.updateScore()
}
