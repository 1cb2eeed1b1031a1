package spacejump

import (
	"math"

	"github.com/vovakirdan/space-jump/internal/core"
)

// PlayerOnPlatform is the only definition of grounded. The player must not
// be ascending, must overlap the platform horizontally, must have been at or
// above the platform top since its last ascent began, and must be within
// snap of the top. Ice below minIce remaining steps cannot be stood on.
func PlayerOnPlatform(p *Player, o *Object, snap, minIce float64) bool {
	if !o.Kind.IsPlatform() {
		return false
	}
	if p.Speed.Y < 0 {
		return false
	}
	if !core.HorizontalOverlap(p.Box(), o.Box()) {
		return false
	}
	if p.High >= o.Top()+1 {
		return false
	}
	if math.Abs(p.Bottom()-o.Top()) >= snap {
		return false
	}
	if o.Kind == KindIce && float64(o.Time) <= minIce {
		return false
	}
	return true
}
