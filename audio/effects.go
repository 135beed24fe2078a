package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/firework-quiz/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	return &oscillator{
		freq:     freq,
		phase:    0,
		duration: samples,
		position: 0,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		position:       0,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a single enveloped oscillator note
func tone(freq float64, duration, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, duration, wave, rate)
	return NewEnvelope(osc, duration, attack, release, rate)
}

// CreateCorrectSound generates a two-note rising chime
func CreateCorrectSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := tone(parameter.CorrectNote1Freq, parameter.CorrectNote1Duration, parameter.CorrectAttack, parameter.CorrectNote1Release, WaveSine, rate)

	// Second note carries a quiet octave for brightness
	n2 := beep.Mix(
		newVolume(tone(parameter.CorrectNote2Freq, parameter.CorrectNote2Duration, parameter.CorrectAttack, parameter.CorrectNote2Release, WaveSine, rate), 0.75),
		newVolume(tone(parameter.CorrectNote2Freq*2, parameter.CorrectNote2Duration, parameter.CorrectAttack, parameter.CorrectNote2Release/2, WaveSine, rate), 0.25),
	)

	vol := cfg.EffectVolumes[SoundCorrect] * cfg.MasterVolume
	return newVolume(beep.Seq(n1, n2), vol)
}

// CreateWrongSound generates a short low saw buzz roughened with noise
func CreateWrongSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	buzz := tone(parameter.WrongFreq, parameter.WrongDuration, parameter.WrongAttack, parameter.WrongRelease, WaveSaw, rate)
	grit := tone(0, parameter.WrongDuration, parameter.WrongAttack, parameter.WrongRelease, WaveNoise, rate)
	shaped := beep.Mix(
		newVolume(buzz, 1-parameter.WrongNoiseLevel),
		newVolume(grit, parameter.WrongNoiseLevel),
	)

	vol := cfg.EffectVolumes[SoundWrong] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateFanfareSound generates a rising arpeggio ending on a held note
func CreateFanfareSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	last := len(parameter.FanfareNotes) - 1
	notes := make([]beep.Streamer, 0, len(parameter.FanfareNotes))
	for i, freq := range parameter.FanfareNotes {
		if i == last {
			notes = append(notes, tone(freq, parameter.FanfareFinalDuration, parameter.FanfareAttack, parameter.FanfareFinalRelease, WaveSquare, rate))
			break
		}
		notes = append(notes, tone(freq, parameter.FanfareNoteDuration, parameter.FanfareAttack, parameter.FanfareNoteRelease, WaveSquare, rate))
	}

	vol := cfg.EffectVolumes[SoundFanfare] * cfg.MasterVolume
	return newVolume(beep.Seq(notes...), vol)
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundCorrect:
		return CreateCorrectSound(cfg)
	case SoundWrong:
		return CreateWrongSound(cfg)
	case SoundFanfare:
		return CreateFanfareSound(cfg)
	default:
		return nil
	}
}
