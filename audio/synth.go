package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a streamer of the given wave shape and length
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s over duration with linear attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, att),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = math.Max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain, zero gain is silent
// math.Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Sound durations
const (
	hitDuration     = 70 * time.Millisecond
	hitAttack       = 2 * time.Millisecond
	hitRelease      = 50 * time.Millisecond
	chimeNote       = 110 * time.Millisecond
	chimeAttack     = 5 * time.Millisecond
	chimeRelease    = 60 * time.Millisecond
	gameOverNote    = 260 * time.Millisecond
	gameOverRelease = 180 * time.Millisecond
)

// CreateHitSound is a short square thump layered with noise
func CreateHitSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := NewEnvelope(NewOscillator(180, hitDuration, WaveSquare, rate), hitDuration, hitAttack, hitRelease, rate)
	crack := NewEnvelope(NewOscillator(0, hitDuration/2, WaveNoise, rate), hitDuration/2, hitAttack, hitRelease/2, rate)

	mixed := beep.Mix(newVolume(body, 0.6), newVolume(crack, 0.4))
	return newVolume(mixed, cfg.HitVolume*cfg.MasterVolume)
}

// CreateLevelUpSound is a rising three-note sine arpeggio
func CreateLevelUpSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{523.25, 659.25, 783.99} // C5 E5 G5
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		tone, err := generators.SineTone(rate, f)
		if err != nil {
			continue
		}
		note := beep.Take(rate.N(chimeNote), tone)
		seq = append(seq, NewEnvelope(note, chimeNote, chimeAttack, chimeRelease, rate))
	}
	return newVolume(beep.Seq(seq...), cfg.LevelUpVolume*cfg.MasterVolume)
}

// CreateGameOverSound is a falling saw pair
func CreateGameOverSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	high := NewEnvelope(NewOscillator(220, gameOverNote, WaveSaw, rate), gameOverNote, chimeAttack, gameOverRelease, rate)
	low := NewEnvelope(NewOscillator(110, gameOverNote*2, WaveSaw, rate), gameOverNote*2, chimeAttack, gameOverRelease*2, rate)
	return newVolume(beep.Seq(high, low), cfg.GameOverVolume*cfg.MasterVolume)
}
