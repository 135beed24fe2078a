package audio

import (
	"errors"

	"github.com/lixenwraith/firework-quiz/parameter"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundCorrect SoundType = iota // Correct answer chime
	SoundWrong                    // Wrong answer buzz
	SoundFanfare                  // Perfect score arpeggio
	soundTypeCount
)

// String returns the sound name used in logs
func (s SoundType) String() string {
	switch s {
	case SoundCorrect:
		return "correct"
	case SoundWrong:
		return "wrong"
	case SoundFanfare:
		return "fanfare"
	default:
		return "unknown"
	}
}

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns enabled playback at the default master volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundCorrect: 0.6,
			SoundWrong:   0.4,
			SoundFanfare: 0.7,
		},
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled")
	ErrInvalidVolume = errors.New("volume out of range")
)

// Validate checks the volume range and sample rate
func (c *AudioConfig) Validate() error {
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return ErrInvalidVolume
	}
	for _, v := range c.EffectVolumes {
		if v < 0 || v > 1 {
			return ErrInvalidVolume
		}
	}
	if c.SampleRate <= 0 {
		c.SampleRate = parameter.AudioSampleRate
	}
	return nil
}
