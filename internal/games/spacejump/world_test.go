package spacejump

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/space-jump/internal/config"
	"github.com/vovakirdan/space-jump/internal/core"
)

func TestNewWorldLayout(t *testing.T) {
	w, _ := newTestWorld(t, nil)

	if w.Player.Pos.X != (1000-70)/2.0 || w.Player.Pos.Y != 10 {
		t.Errorf("player starts at %+v", w.Player.Pos)
	}
	platforms := w.Objects.Layer(LayerPlatforms)
	if len(platforms) != 1 || platforms[0].Kind != KindStatic {
		t.Fatalf("expected one static platform, got %d", len(platforms))
	}
	if platforms[0].Pos.Y != 200 || platforms[0].Pos.X != 450 {
		t.Errorf("first platform at %+v", platforms[0].Pos)
	}
	if w.Camera.Speed >= 0 {
		t.Errorf("camera should scroll up, speed %v", w.Camera.Speed)
	}
}

func TestGroundedPlayerHasZeroVerticalSpeed(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	platform := land(t, w)

	if w.Player.Speed.Y != 0 {
		t.Fatalf("landing step left vy = %v", w.Player.Speed.Y)
	}
	if w.Player.Bottom() != platform.Top() {
		t.Errorf("player bottom %v should sit on platform top %v", w.Player.Bottom(), platform.Top())
	}

	for i := range 500 {
		w.Step(core.Keys{})
		if w.OnPlatform() == nil {
			t.Fatalf("player left the platform on step %d", i)
		}
		if w.Player.Speed.Y != 0 {
			t.Fatalf("step %d: grounded vy = %v", i, w.Player.Speed.Y)
		}
	}
	if w.Player.Anim.State != AnimRest {
		t.Errorf("idle grounded animation = %v", w.Player.Anim.State)
	}
}

func TestHorizontalSpeedDecaysWithoutOvershoot(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	land(t, w)

	for range 200 {
		w.Step(core.Keys{Right: true})
	}
	if w.Player.Speed.X <= 0 {
		t.Fatalf("holding right should build speed, vx = %v", w.Player.Speed.X)
	}
	if w.Player.Speed.X > w.t.hMax {
		t.Fatalf("vx %v exceeds max %v", w.Player.Speed.X, w.t.hMax)
	}

	prev := w.Player.Speed.X
	for i := range 400 {
		w.Step(core.Keys{})
		vx := w.Player.Speed.X
		if vx < 0 {
			t.Fatalf("step %d: speed overshot to %v", i, vx)
		}
		if vx > prev {
			t.Fatalf("step %d: speed grew from %v to %v", i, prev, vx)
		}
		prev = vx
	}
	if prev != 0 {
		t.Errorf("speed should settle at 0, got %v", prev)
	}
}

func TestHorizontalClampAtWorldEdge(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	w.Player.Pos.X = 0.5
	w.Player.Speed.X = -w.t.hMax

	w.Step(core.Keys{Left: true})

	if w.Player.Pos.X != 0 || w.Player.Speed.X != 0 {
		t.Errorf("edge clamp: x = %v vx = %v", w.Player.Pos.X, w.Player.Speed.X)
	}
	if w.Player.Direction != -1 {
		t.Errorf("direction = %v", w.Player.Direction)
	}
}

func TestJumpFromGround(t *testing.T) {
	w, audio := newTestWorld(t, nil)
	land(t, w)

	w.Step(core.Keys{Up: true})

	if w.Player.Speed.Y != -w.t.jump {
		t.Errorf("vy = %v, expected %v", w.Player.Speed.Y, -w.t.jump)
	}
	if w.Player.Anim.State != AnimJump || w.Player.Anim.Frame != 0 {
		t.Errorf("animation = %v frame %d, expected jump frame 0", w.Player.Anim.State, w.Player.Anim.Frame)
	}
	if w.Player.JumpGrace != 0 {
		t.Errorf("jump grace = %d after jumping", w.Player.JumpGrace)
	}
	if audio.count(core.CueJump) != 1 {
		t.Errorf("jump cue played %d times", audio.count(core.CueJump))
	}

	// Holding up in the air does not jump again.
	w.Step(core.Keys{Up: true})
	if w.Player.Speed.Y == -w.t.jump {
		t.Error("second jump in mid-air")
	}
}

// coyoteWorld lands the player, removes the platform and steps the given
// number of airborne steps without input.
func coyoteWorld(t *testing.T, airborne int) *World {
	t.Helper()
	w, _ := newTestWorld(t, nil)
	platform := land(t, w)
	w.Objects.Remove(platform)
	for range airborne {
		w.Step(core.Keys{})
	}
	return w
}

func TestCoyoteTime(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	grace := w.t.grace
	if grace != 50 {
		t.Fatalf("grace = %d steps, expected 50", grace)
	}

	tests := []struct {
		name     string
		airborne int // airborne steps before the step that presses up
		jumps    bool
	}{
		{"first airborne step", 0, true},
		{"middle of grace", grace / 2, true},
		{"last grace step", grace - 1, true},
		{"grace expired", grace, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := coyoteWorld(t, tt.airborne)
			if tt.airborne > 0 && w.OnPlatform() != nil {
				t.Fatal("player should be airborne")
			}

			w.Step(core.Keys{Up: true})
			jumped := w.Player.Speed.Y == -w.t.jump
			if jumped != tt.jumps {
				t.Errorf("jump on airborne step %d: got %v, expected %v", tt.airborne+1, jumped, tt.jumps)
			}
		})
	}
}

func TestAirborneAnimation(t *testing.T) {
	w, _ := newTestWorld(t, nil)

	w.Step(core.Keys{})
	if w.Player.Anim.State != AnimFalling {
		t.Errorf("falling from spawn: animation = %v", w.Player.Anim.State)
	}

	w.Player.Speed.Y = -2 * w.t.jump
	w.Player.Anim.Set(AnimRest)
	w.Step(core.Keys{})
	if w.Player.Anim.State != AnimRising {
		t.Errorf("boosted ascent: animation = %v", w.Player.Anim.State)
	}
}

func TestDeathBelowCamera(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	w.Player.Pos.Y = w.Camera.Bottom() + 1

	w.Step(core.Keys{})
	if !w.Dead() {
		t.Fatal("player below the camera while falling should die")
	}

	// Dead players cannot jump.
	w.Player.JumpGrace = 10
	w.Step(core.Keys{Up: true})
	if w.Player.Speed.Y < 0 {
		t.Error("dead player jumped")
	}
}

func TestDeathFarBelowCamera(t *testing.T) {
	// Rising just below the camera is survivable.
	w, _ := newTestWorld(t, nil)
	w.Player.Pos.Y = w.Camera.Bottom() + 10
	w.Player.Speed.Y = -w.t.jump

	w.Step(core.Keys{})
	if w.Dead() {
		t.Fatal("rising player just below the camera should survive")
	}

	// Half a world below the camera is terminal even while rising.
	w, _ = newTestWorld(t, nil)
	w.Player.Pos.Y = w.Camera.Bottom() + w.t.world/2 + 10
	w.Player.Speed.Y = -w.t.jump

	w.Step(core.Keys{})
	if !w.Dead() {
		t.Error("player half a world below the camera should die")
	}
}

func TestBackgroundOffsetWraps(t *testing.T) {
	const height = 50
	w := NewWorld(testConfig(), rand.New(rand.NewSource(1)), nil, height)

	wrapped := false
	prev := w.BackgroundY
	for i := range 5000 {
		w.Step(core.Keys{})
		if w.BackgroundY <= -height || w.BackgroundY > 0 {
			t.Fatalf("step %d: background offset %v outside (-%d, 0]", i, w.BackgroundY, height)
		}
		if w.BackgroundY < prev {
			wrapped = true
		}
		prev = w.BackgroundY
	}
	if !wrapped {
		t.Error("background offset never wrapped")
	}
}

func TestRocketBoost(t *testing.T) {
	w, audio := newTestWorld(t, nil)
	rocket := &Object{Kind: KindRocket, Pos: w.Player.Pos, W: 40, H: 60}
	w.Objects.Add(rocket, LayerHazards)

	w.Step(core.Keys{})

	if want := -w.t.rocketJump * w.t.jump; w.Player.Speed.Y != want {
		t.Errorf("vy = %v, expected %v", w.Player.Speed.Y, want)
	}
	if !w.Player.Rocket {
		t.Error("rocket flag not set")
	}
	if w.Camera.Boost >= 0 {
		t.Errorf("camera boost = %v, expected negative", w.Camera.Boost)
	}
	if rocket.ID() != 0 {
		t.Error("rocket should be consumed")
	}
	if audio.count(core.CueRocket) != 1 {
		t.Error("rocket cue not played")
	}

	// The boost decays and the flag clears once the player stops rising.
	for i := 0; w.Player.Speed.Y < 0; i++ {
		if i > 5000 {
			t.Fatal("player never stopped rising")
		}
		w.Step(core.Keys{})
	}
	if w.Player.Rocket {
		t.Error("rocket flag should clear when the ascent ends")
	}
	if w.Camera.Boost != 0 {
		t.Errorf("camera boost = %v after decay", w.Camera.Boost)
	}
}

func TestCometKnocksPlayerDown(t *testing.T) {
	w, audio := newTestWorld(t, nil)
	w.Player.Rocket = true
	w.Camera.Boost = -1
	comet := &Object{Kind: KindComet, Pos: w.Player.Pos, W: 60, H: 60, Fall: 0}
	w.Objects.Add(comet, LayerHazards)

	w.Step(core.Keys{})

	if w.Player.Speed.Y != w.t.terminal {
		t.Errorf("vy = %v, expected terminal %v", w.Player.Speed.Y, w.t.terminal)
	}
	if w.Player.Rocket {
		t.Error("rocket flag should clear on impact")
	}
	if comet.ID() != 0 {
		t.Error("comet should be consumed")
	}
	if audio.count(core.CueImpact) != 1 {
		t.Error("impact cue not played")
	}
}

func TestIcePlatformDecays(t *testing.T) {
	w, audio := newTestWorld(t, nil)
	platform := land(t, w)
	platform.Kind = KindIce
	platform.Time = w.t.iceMax

	fellAt := -1
	for i := range 1000 {
		w.Step(core.Keys{})
		if fellAt < 0 && w.OnPlatform() == nil {
			fellAt = i
		}
		if platform.ID() == 0 {
			break
		}
	}

	if audio.count(core.CueIce) != 1 {
		t.Errorf("ice cue played %d times, expected once", audio.count(core.CueIce))
	}
	if fellAt < 0 {
		t.Fatal("player never fell through the ice")
	}
	if platform.ID() != 0 {
		t.Error("fully decayed ice should be removed")
	}
	// Standable while more than 70% of the decay time remains.
	minSteps := int(float64(w.t.iceMax)*0.3) - 2
	if fellAt < minSteps {
		t.Errorf("fell after %d steps, expected at least %d", fellAt, minSteps)
	}
}

func TestMovingPlatformCarriesPlayer(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	platform := land(t, w)
	platform.Kind = KindMoving
	platform.Direction = 1

	px, ox := w.Player.Pos.X, platform.Pos.X
	w.Step(core.Keys{})

	if platform.Pos.X != ox+w.t.moving {
		t.Errorf("platform x = %v, expected %v", platform.Pos.X, ox+w.t.moving)
	}
	if w.Player.Pos.X != px+w.t.moving {
		t.Errorf("player x = %v, expected %v", w.Player.Pos.X, px+w.t.moving)
	}
}

func TestMovingPlatformBounces(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	o := w.newPlatform(KindMoving, core.Vec2{X: w.t.world - w.t.platW, Y: 100})
	w.Objects.Add(o, LayerPlatforms)

	w.Step(core.Keys{})
	if o.Direction != -1 {
		t.Errorf("direction = %v after touching the right edge", o.Direction)
	}
}

func TestDespawnBelowCamera(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	o := w.newPlatform(KindStatic, core.Vec2{X: 0, Y: w.Camera.Bottom() + w.t.world + 1})
	w.Objects.Add(o, LayerPlatforms)

	w.Step(core.Keys{})
	if o.ID() != 0 {
		t.Error("object a world below the camera should despawn")
	}
}

func TestScoreTracksHeight(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	land(t, w)
	if w.Score() != 0 {
		t.Fatalf("score before climbing = %d", w.Score())
	}

	w.Step(core.Keys{Up: true})
	for range 100 {
		w.Step(core.Keys{})
	}
	if w.Score() <= 0 {
		t.Errorf("score after a jump = %d", w.Score())
	}
}

func TestPoolStaysDenseDuringPlay(t *testing.T) {
	w, _ := newTestWorld(t, func(cfg *config.SpaceJumpConfig) {
		cfg.Generator.Comets.Enabled = true
		cfg.Generator.Comets.StartHeight = 100
		cfg.Generator.Comets.Interval = 200
	})
	rng := rand.New(rand.NewSource(5))

	for range 5000 {
		keys := core.Keys{Left: rng.Intn(3) == 0, Right: rng.Intn(3) == 0, Up: rng.Intn(4) == 0}
		w.Step(keys)
	}
	for l := 0; l < w.Objects.Layers(); l++ {
		for i, o := range w.Objects.Layer(l) {
			if o.ID() != i+1 || o.Layer() != l {
				t.Fatalf("layer %d index %d: slot (%d, %d)", l, i, o.ID(), o.Layer())
			}
		}
	}
}

func TestWorldDeterminism(t *testing.T) {
	run := func() Snapshot {
		cfg := testConfig()
		cfg.Generator.Comets.Enabled = true
		w := NewWorld(cfg, rand.New(rand.NewSource(99)), nil, 2000)
		for i := range 3000 {
			w.Step(core.Keys{Right: i%200 < 80, Up: i%150 == 0})
		}
		return w.Snapshot()
	}

	if a, b := run(), run(); !reflect.DeepEqual(a, b) {
		t.Error("same seed and inputs produced different worlds")
	}
}
