package spacejump

// Snapshot is a read-only copy of everything a host needs to draw one frame.
// It shares no memory with the simulation.
type Snapshot struct {
	Camera  BoxView
	Player  PlayerView
	Objects []ObjectView // in draw order: alerts, platforms, hazards

	Score       int
	HighScore   int
	Level       string
	Difficulty  float64
	BackgroundY float64
	Phase       Phase
	StartIn     float64 // seconds left before the first step
	Steps       int
}

// BoxView is a box in world units.
type BoxView struct {
	X, Y, W, H float64
}

// PlayerView is the player's drawable state.
type PlayerView struct {
	BoxView
	VX, VY    float64
	Direction float64
	Anim      AnimState
	Frame     int
	Pose      Pose
	Rocket    bool
	Dead      bool
}

// ObjectView is one platform or hazard. Fade is 1 for everything except
// decaying ice, which drops toward 0.
type ObjectView struct {
	BoxView
	Kind Kind
	Fade float64
}

// Snapshot captures the world state.
func (w *World) Snapshot() Snapshot {
	p := &w.Player
	s := Snapshot{
		Camera: BoxView{X: w.Camera.Pos.X, Y: w.Camera.Pos.Y, W: w.Camera.W, H: w.Camera.H},
		Player: PlayerView{
			BoxView:   BoxView{X: p.Pos.X, Y: p.Pos.Y, W: p.W, H: p.H},
			VX:        p.Speed.X,
			VY:        p.Speed.Y,
			Direction: p.Direction,
			Anim:      p.Anim.State,
			Frame:     p.Anim.Frame,
			Pose:      p.Anim.Pose,
			Rocket:    p.Rocket,
			Dead:      p.Dead,
		},
		Objects:     make([]ObjectView, 0, w.Objects.Len()),
		Score:       w.score,
		Level:       w.Level(),
		Difficulty:  w.Difficulty(),
		BackgroundY: w.BackgroundY,
		Steps:       w.Steps,
	}

	for l := 0; l < w.Objects.Layers(); l++ {
		for _, o := range w.Objects.Layer(l) {
			fade := 1.0
			if o.Kind == KindIce && w.t.iceMax > 0 {
				fade = float64(o.Time) / float64(w.t.iceMax)
			}
			s.Objects = append(s.Objects, ObjectView{
				BoxView: BoxView{X: o.Pos.X, Y: o.Pos.Y, W: o.W, H: o.H},
				Kind:    o.Kind,
				Fade:    fade,
			})
		}
	}
	return s
}
