package play

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

var (
	// ErrBadSampleRate indicates a non-positive sample rate.
	ErrBadSampleRate = errors.New("play: sample rate must be positive")
	// ErrBadDuration indicates a non-positive tone duration.
	ErrBadDuration = errors.New("play: tone duration must be positive")
	// ErrBadAmplitude indicates an amplitude outside (0, 1].
	ErrBadAmplitude = errors.New("play: amplitude must lie in (0, 1]")
)

// MiddleC returns the frequency of middle C in Hz, derived from A440:
// 440 * 2^(-9/12) ≈ 261.626.
func MiddleC() float64 {
	return 440 * math.Pow(2, -9.0/12.0)
}

// Options configures a Player.
//
// Fields:
//   - SampleRate   — output sample rate in Hz.
//   - ToneDuration — how long each tone sounds.
//   - Amplitude    — linear volume in (0, 1]; sine tones at full scale clip
//     unpleasantly, so the default stays well below 1.
type Options struct {
	SampleRate   int
	ToneDuration time.Duration
	Amplitude    float64
}

// DefaultOptions returns 44.1kHz output, two-second tones at amplitude 0.2.
func DefaultOptions() Options {
	return Options{
		SampleRate:   44100,
		ToneDuration: 2 * time.Second,
		Amplitude:    0.2,
	}
}

// Validate checks the options against their documented ranges.
func (o Options) Validate() error {
	if o.SampleRate <= 0 {
		return ErrBadSampleRate
	}
	if o.ToneDuration <= 0 {
		return ErrBadDuration
	}
	if o.Amplitude <= 0 || o.Amplitude > 1 {
		return ErrBadAmplitude
	}

	return nil
}

// Player owns an initialized speaker and synthesizes sine tones on demand.
type Player struct {
	sampleRate beep.SampleRate
	duration   time.Duration
	amplitude  float64
}

// NewPlayer validates opts and initializes the speaker with a tenth of a
// second of buffer. Returns the validation error or the speaker's.
func NewPlayer(opts Options) (*Player, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	sr := beep.SampleRate(opts.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("play: speaker init: %w", err)
	}

	return &Player{
		sampleRate: sr,
		duration:   opts.ToneDuration,
		amplitude:  opts.Amplitude,
	}, nil
}

// Sequence plays the given frequencies one after another, blocking until the
// last tone has drained.
func (p *Player) Sequence(freqs ...float64) error {
	streamers := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		tone, err := p.tone(f)
		if err != nil {
			return err
		}
		streamers = append(streamers, tone)
	}

	p.run(beep.Seq(streamers...))

	return nil
}

// Dyad plays two frequencies simultaneously, blocking until both drain.
func (p *Player) Dyad(f1, f2 float64) error {
	t1, err := p.tone(f1)
	if err != nil {
		return err
	}
	t2, err := p.tone(f2)
	if err != nil {
		return err
	}

	p.run(beep.Mix(t1, t2))

	return nil
}

// tone synthesizes one sine tone of the configured duration and amplitude.
func (p *Player) tone(freq float64) (beep.Streamer, error) {
	sine, err := generators.SinTone(p.sampleRate, int(math.Round(freq)))
	if err != nil {
		return nil, fmt.Errorf("play: tone at %.1fHz: %w", freq, err)
	}
	limited := beep.Take(p.sampleRate.N(p.duration), sine)

	// effects.Gain scales by 1+Gain, so amplitude a needs Gain a-1.
	return &effects.Gain{Streamer: limited, Gain: p.amplitude - 1}, nil
}

// run plays s and blocks until the speaker signals completion.
func (p *Player) run(s beep.Streamer) {
	done := make(chan struct{})
	speaker.Play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))
	<-done
}
