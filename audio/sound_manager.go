package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/firework-quiz/parameter"
)

// SoundManager plays the quiz cues through the system speaker
// All Play methods are no-ops until Initialize succeeds, so the game runs silently without a device
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	logger      *zap.Logger
	initialized bool

	// sink receives finished streamers; speaker.Play outside tests
	sink func(...beep.Streamer)
}

// NewSoundManager creates a new sound manager; a nil config uses the defaults
func NewSoundManager(cfg *AudioConfig, logger *zap.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SoundManager{
		cfg:    cfg,
		logger: logger,
		sink:   speaker.Play,
	}
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}
	if err := sm.cfg.Validate(); err != nil {
		return err
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	sm.initialized = true
	sm.logger.Info("audio initialized",
		zap.Int("sample_rate", sm.cfg.SampleRate),
		zap.Float64("volume", sm.cfg.MasterVolume))
	return nil
}

// Cleanup stops all sounds and closes the audio device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Initialized reports whether sounds will be heard
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayCorrect plays the rising chime
func (sm *SoundManager) PlayCorrect() { sm.play(SoundCorrect) }

// PlayWrong plays the low buzz
func (sm *SoundManager) PlayWrong() { sm.play(SoundWrong) }

// PlayFanfare plays the perfect score arpeggio
func (sm *SoundManager) PlayFanfare() { sm.play(SoundFanfare) }

func (sm *SoundManager) play(t SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := GetSoundEffect(t, sm.cfg)
	if s == nil {
		return
	}
	sm.sink(s)
	sm.logger.Debug("sound", zap.Stringer("type", t))
}
