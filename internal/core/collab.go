package core

// Cue is a fire-and-forget sound request.
type Cue int

const (
	CueJump Cue = iota
	CueIce
	CueRocket
	CueImpact
	CueGameStart
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueIce:
		return "ice"
	case CueRocket:
		return "rocket"
	case CueImpact:
		return "impact"
	case CueGameStart:
		return "game-start"
	case CueGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Audio accepts cue requests. Implementations must not block the caller.
type Audio interface {
	Play(cue Cue)
}

// Ranker receives the terminal score of a session and knows the best one.
// Submit must not block on slow storage or network.
type Ranker interface {
	Submit(score int)
	Best() int
}

// NopAudio discards every cue.
type NopAudio struct{}

// Play implements Audio.
func (NopAudio) Play(Cue) {}

// NopRanker keeps the best score in memory only.
type NopRanker struct {
	best int
}

// Submit implements Ranker.
func (r *NopRanker) Submit(score int) {
	if score > r.best {
		r.best = score
	}
}

// Best implements Ranker.
func (r *NopRanker) Best() int {
	return r.best
}
