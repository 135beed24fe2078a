package audio

import (
	"errors"
	"testing"

	"github.com/gopxl/beep"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil, nil)

	var played int
	sm.sink = func(...beep.Streamer) { played++ }

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayCorrect()
	sm.PlayWrong()
	sm.PlayFanfare()
	sm.Cleanup()

	if played != 0 {
		t.Errorf("played %d sounds before initialization", played)
	}
}

// TestSoundManagerDisabled verifies a disabled config never opens the device
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg, nil)

	if err := sm.Initialize(); !errors.Is(err, ErrAudioDisabled) {
		t.Fatalf("Initialize() = %v, want ErrAudioDisabled", err)
	}
	if sm.Initialized() {
		t.Error("disabled manager reports initialized")
	}
}

// TestSoundManagerInvalidVolume verifies out of range volumes are rejected before touching the device
func TestSoundManagerInvalidVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 1.5
	sm := NewSoundManager(cfg, nil)

	if err := sm.Initialize(); !errors.Is(err, ErrInvalidVolume) {
		t.Fatalf("Initialize() = %v, want ErrInvalidVolume", err)
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil, nil)

	// Speaker initialization may fail in CI/test environments without audio devices
	err := sm.Initialize()
	if err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	// Second initialization should be a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.Cleanup()
	if sm.Initialized() {
		t.Error("Cleanup left manager initialized")
	}
}

// TestSoundManagerPlayRouting verifies each cue reaches the sink once initialized
func TestSoundManagerPlayRouting(t *testing.T) {
	sm := NewSoundManager(nil, nil)

	var played []beep.Streamer
	sm.sink = func(s ...beep.Streamer) { played = append(played, s...) }
	sm.initialized = true

	sm.PlayCorrect()
	sm.PlayWrong()
	sm.PlayFanfare()

	if len(played) != 3 {
		t.Fatalf("played %d sounds, want 3", len(played))
	}
	for i, s := range played {
		if s == nil {
			t.Errorf("sound %d is nil", i)
		}
	}
}

// TestAudioConfigValidate covers the volume bounds and sample rate fallback
func TestAudioConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AudioConfig)
		wantErr error
	}{
		{"defaults", func(*AudioConfig) {}, nil},
		{"silent", func(c *AudioConfig) { c.MasterVolume = 0 }, nil},
		{"negative master", func(c *AudioConfig) { c.MasterVolume = -0.1 }, ErrInvalidVolume},
		{"loud effect", func(c *AudioConfig) { c.EffectVolumes[SoundWrong] = 2 }, ErrInvalidVolume},
		{"zero rate", func(c *AudioConfig) { c.SampleRate = 0 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultAudioConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && cfg.SampleRate <= 0 {
				t.Errorf("SampleRate = %d after Validate", cfg.SampleRate)
			}
		})
	}
}

// TestSoundTypeString verifies log names
func TestSoundTypeString(t *testing.T) {
	want := map[SoundType]string{
		SoundCorrect:   "correct",
		SoundWrong:     "wrong",
		SoundFanfare:   "fanfare",
		SoundType(-1):  "unknown",
		soundTypeCount: "unknown",
	}
	for st, name := range want {
		if got := st.String(); got != name {
			t.Errorf("SoundType(%d).String() = %q, want %q", st, got, name)
		}
	}
}
