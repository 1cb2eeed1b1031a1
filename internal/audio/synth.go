package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/space-jump/internal/core"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// sweep is an oscillator whose frequency slides linearly from one value to
// another over its duration.
type sweep struct {
	from, to float64
	wave     Wave
	phase    float64
	pos      int
	length   int
	rng      *rand.Rand
}

func newSweep(from, to float64, d time.Duration, wave Wave) *sweep {
	return &sweep{
		from:   from,
		to:     to,
		wave:   wave,
		length: SampleRate.N(d),
		rng:    rand.New(rand.NewSource(int64(from*1000 + to))),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.length {
			return i, i > 0
		}

		var v float64
		switch s.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			v = 1
			if s.phase >= 0.5 {
				v = -1
			}
		case WaveNoise:
			v = s.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		freq := s.from + (s.to-s.from)*float64(s.pos)/float64(s.length)
		s.phase += freq / float64(SampleRate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	s       beep.Streamer
	pos     int
	attack  int
	release int
	total   int
}

func newEnvelope(s beep.Streamer, total, attack, release time.Duration) *envelope {
	return &envelope{
		s:       s,
		attack:  SampleRate.N(attack),
		release: SampleRate.N(release),
		total:   SampleRate.N(total),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; left < e.release {
			vol = max(0, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// tone is one enveloped sweep.
func tone(from, to float64, d time.Duration, wave Wave) beep.Streamer {
	return newEnvelope(newSweep(from, to, d, wave), d, 5*time.Millisecond, d/2)
}

// volume scales a stream linearly; zero or less is silent.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Synth builds a fresh streamer for a cue. Nil for unknown cues.
func Synth(cue core.Cue, master float64) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case core.CueJump:
		s = tone(300, 600, 120*time.Millisecond, WaveSquare)
	case core.CueIce:
		s = beep.Mix(
			volume(tone(1800, 1200, 200*time.Millisecond, WaveSine), 0.6),
			volume(tone(0, 0, 120*time.Millisecond, WaveNoise), 0.2),
		)
	case core.CueRocket:
		s = beep.Mix(
			volume(tone(200, 1200, 400*time.Millisecond, WaveSquare), 0.5),
			volume(tone(0, 0, 400*time.Millisecond, WaveNoise), 0.3),
		)
	case core.CueImpact:
		s = beep.Mix(
			volume(tone(160, 60, 300*time.Millisecond, WaveSine), 0.8),
			volume(tone(0, 0, 250*time.Millisecond, WaveNoise), 0.5),
		)
	case core.CueGameStart:
		s = beep.Seq(
			tone(523.25, 523.25, 100*time.Millisecond, WaveSquare),
			tone(659.25, 659.25, 100*time.Millisecond, WaveSquare),
			tone(783.99, 783.99, 160*time.Millisecond, WaveSquare),
		)
	case core.CueGameOver:
		s = beep.Seq(
			tone(392, 392, 150*time.Millisecond, WaveSquare),
			tone(311.13, 311.13, 150*time.Millisecond, WaveSquare),
			tone(261.63, 200, 400*time.Millisecond, WaveSquare),
		)
	default:
		return nil
	}
	return volume(s, 0.3*master)
}
