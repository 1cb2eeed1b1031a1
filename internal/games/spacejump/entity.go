package spacejump

import (
	"github.com/vovakirdan/space-jump/internal/core"
	"github.com/vovakirdan/space-jump/internal/pool"
)

// Kind tags every interactive object.
type Kind uint8

const (
	KindStatic Kind = iota
	KindMoving
	KindIce
	KindRocket
	KindComet
	KindAlert
)

var kindNames = [...]string{
	KindStatic: "static",
	KindMoving: "moving",
	KindIce:    "ice",
	KindRocket: "rocket",
	KindComet:  "comet",
	KindAlert:  "alert",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsPlatform reports whether the kind can carry the player.
func (k Kind) IsPlatform() bool {
	return k <= KindIce
}

// Pool layers, in update and draw order.
const (
	LayerAlerts = iota
	LayerPlatforms
	LayerHazards
	layerCount
)

// Object is a platform or hazard. Fields that only apply to some kinds are
// left zero for the others.
type Object struct {
	pool.Slot

	Kind Kind
	Pos  core.Vec2
	W, H float64

	Direction    float64 // Moving: +1 right, -1 left
	Time         int     // Ice: remaining decay steps. Alert: steps until the comet drops
	Disappearing bool    // Ice: decay started
	Fall         float64 // Comet: downward speed per step
}

func (o *Object) Box() core.Box { return core.Box{Pos: o.Pos, W: o.W, H: o.H} }

func (o *Object) Top() float64    { return o.Pos.Y }
func (o *Object) Bottom() float64 { return o.Pos.Y + o.H }
func (o *Object) Left() float64   { return o.Pos.X }
func (o *Object) Right() float64  { return o.Pos.X + o.W }

// behaviour is the per-kind capability table. preTick runs for every object
// before the player moves; tick runs after.
type behaviour struct {
	preTick func(w *World, o *Object)
	tick    func(w *World, o *Object)
}

var behaviours = [...]behaviour{
	KindStatic: {preTick: adhere, tick: despawnTick},
	KindMoving: {preTick: adhere, tick: movingTick},
	KindIce:    {preTick: adhere, tick: iceTick},
	KindRocket: {tick: rocketTick},
	KindComet:  {tick: cometTick},
	KindAlert:  {tick: alertTick},
}

func (o *Object) preTick(w *World) {
	if fn := behaviours[o.Kind].preTick; fn != nil {
		fn(w, o)
	}
}

func (o *Object) tick(w *World) {
	if fn := behaviours[o.Kind].tick; fn != nil {
		fn(w, o)
	}
}

// adhere records the platform the player stands on this step.
func adhere(w *World, o *Object) {
	if PlayerOnPlatform(&w.Player, o, w.t.snap, w.t.iceStand) {
		w.onPlatform = o
	}
}

// despawn removes objects that scrolled a full world below the camera.
func despawn(w *World, o *Object) bool {
	if o.Top() > w.Camera.Bottom()+w.t.world {
		w.Objects.Remove(o)
		return true
	}
	return false
}

func despawnTick(w *World, o *Object) {
	despawn(w, o)
}

func movingTick(w *World, o *Object) {
	if despawn(w, o) {
		return
	}
	dx := w.t.moving * o.Direction
	o.Pos.X += dx
	if w.onPlatform == o {
		w.Player.Pos.X += dx
	}
	if o.Left() <= 0 || o.Right() >= w.t.world {
		o.Direction = -o.Direction
	}
}

func iceTick(w *World, o *Object) {
	if despawn(w, o) {
		return
	}
	if o.Disappearing {
		if o.Time <= 0 {
			w.Objects.Remove(o)
			return
		}
		o.Time--
	}
	if w.onPlatform == o && !o.Disappearing {
		o.Disappearing = true
		w.audio.Play(core.CueIce)
	}
}

func rocketTick(w *World, o *Object) {
	if despawn(w, o) {
		return
	}
	if w.Player.Dead || !core.Overlaps(o.Box(), w.Player.Box()) {
		return
	}
	w.Player.Speed.Y = -w.t.rocketJump * w.t.jump
	w.Player.Rocket = true
	w.Camera.Boost = -w.t.rocketCamera*w.t.jump - w.Camera.Speed
	w.audio.Play(core.CueRocket)
	w.Objects.Remove(o)
}

func cometTick(w *World, o *Object) {
	if despawn(w, o) {
		return
	}
	o.Pos.Y += o.Fall
	if w.Player.Dead || !core.Overlaps(o.Box(), w.Player.Box()) {
		return
	}
	w.Player.Speed.Y = w.t.terminal
	w.Player.Rocket = false
	w.Camera.Boost = 0
	w.audio.Play(core.CueImpact)
	w.Objects.Remove(o)
}

// alertTick keeps the warning pinned to the top of the view and drops the
// comet once the countdown expires.
func alertTick(w *World, o *Object) {
	o.Pos.Y = w.Camera.Top()
	if o.Time > 0 {
		o.Time--
		return
	}
	w.Objects.Add(&Object{
		Kind: KindComet,
		Pos:  core.Vec2{X: o.Pos.X, Y: w.Camera.Top() - w.t.cometH},
		W:    w.t.cometW,
		H:    w.t.cometH,
		Fall: w.t.comet,
	}, LayerHazards)
	w.Gen.Spawned[KindComet]++
	w.Objects.Remove(o)
}

// Player is the avatar.
type Player struct {
	Pos, Speed core.Vec2
	W, H       float64

	Direction float64 // facing, +1 or -1
	JumpGrace int     // steps of coyote time left
	High      float64 // lowest bottom reached since the last ascent began
	Rocket    bool
	Dead      bool

	Anim Animator
}

func (p *Player) Box() core.Box { return core.Box{Pos: p.Pos, W: p.W, H: p.H} }

func (p *Player) Top() float64    { return p.Pos.Y }
func (p *Player) Bottom() float64 { return p.Pos.Y + p.H }
func (p *Player) Left() float64   { return p.Pos.X }
func (p *Player) Right() float64  { return p.Pos.X + p.W }

// Camera is the scrolling view. Speed is negative while scrolling up.
type Camera struct {
	Pos   core.Vec2
	W, H  float64
	Speed float64
	Boost float64 // transient extra scroll, decays toward zero under gravity
}

func (c *Camera) Box() core.Box { return core.Box{Pos: c.Pos, W: c.W, H: c.H} }

func (c *Camera) Top() float64    { return c.Pos.Y }
func (c *Camera) Bottom() float64 { return c.Pos.Y + c.H }
