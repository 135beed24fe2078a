package parameter

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length; larger values trade latency for fewer underruns
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default master gain in [0, 1]
	AudioMasterVolume = 0.5
)

// Correct Answer Chime (two rising sine notes)
const (
	CorrectNote1Freq     = 659.25 // E5
	CorrectNote2Freq     = 987.77 // B5
	CorrectNote1Duration = 90 * time.Millisecond
	CorrectNote2Duration = 260 * time.Millisecond
	CorrectAttack        = 5 * time.Millisecond
	CorrectNote1Release  = 30 * time.Millisecond
	CorrectNote2Release  = 200 * time.Millisecond
)

// Wrong Answer Buzz
const (
	WrongFreq     = 100.0
	WrongDuration = 250 * time.Millisecond
	WrongAttack   = 5 * time.Millisecond
	WrongRelease  = 60 * time.Millisecond

	// WrongNoiseLevel is the share of the buzz given to a noise layer for grit
	WrongNoiseLevel = 0.25
)

// Perfect Score Fanfare (C major arpeggio, held final note)
const (
	FanfareNoteDuration  = 120 * time.Millisecond
	FanfareFinalDuration = 600 * time.Millisecond
	FanfareAttack        = 5 * time.Millisecond
	FanfareNoteRelease   = 40 * time.Millisecond
	FanfareFinalRelease  = 450 * time.Millisecond
)

// FanfareNotes are the arpeggio pitches in Hz; the last one is held
var FanfareNotes = [...]float64{523.25, 659.25, 783.99, 1046.50}
