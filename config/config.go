package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/lixenwraith/firework-quiz/parameter"
)

// EnvPrefix namespaces environment overrides, e.g. QUIZ_GAME_TICK_RATE
const EnvPrefix = "QUIZ"

var (
	ErrInvalidTickRate = errors.New("tick rate must be positive")
	ErrInvalidDuration = errors.New("feedback duration must be positive")
	ErrInvalidVolume   = errors.New("audio volume must be within [0, 1]")
)

// Config holds application configuration loaded from files and environment variables
type Config struct {
	Env       string    `mapstructure:"env"`     // local, production
	Debug     bool      `mapstructure:"debug"`   // enables the file logger
	LogDir    string    `mapstructure:"log_dir"` // directory for debug logs
	Questions Questions `mapstructure:"questions"`
	Game      Game      `mapstructure:"game"`
	Audio     Audio     `mapstructure:"audio"`
	Display   Display   `mapstructure:"display"`
}

// Questions locates the question bank
type Questions struct {
	Path string `mapstructure:"path"` // CSV or YAML file; the built-in bank is used when unreadable
}

// Game controls loop timing and sampling
type Game struct {
	TickRate         int           `mapstructure:"tick_rate"`
	FeedbackDuration time.Duration `mapstructure:"feedback_duration"`
	Seed             int64         `mapstructure:"seed"` // 0 seeds from the clock
}

// Audio controls the sound cues
type Audio struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// Display holds on-screen text
type Display struct {
	Title   string `mapstructure:"title"`
	Caption string `mapstructure:"caption"`
}

// Load reads configuration from an optional file, .env, and QUIZ_ environment variables
// An empty path searches ./config for config.yaml and tolerates its absence; an explicit path must exist
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("debug", false)
	v.SetDefault("log_dir", "logs")
	v.SetDefault("questions.path", "assets/questions.csv")
	v.SetDefault("game.tick_rate", parameter.TickRate)
	v.SetDefault("game.feedback_duration", parameter.FeedbackDuration)
	v.SetDefault("game.seed", 0)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", parameter.AudioMasterVolume)
	v.SetDefault("display.title", parameter.DefaultTitle)
	v.SetDefault("display.caption", "")
}

// Validate rejects values the game loop cannot run with
func (c *Config) Validate() error {
	if c.Game.TickRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTickRate, c.Game.TickRate)
	}
	if c.Game.FeedbackDuration <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDuration, c.Game.FeedbackDuration)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidVolume, c.Audio.Volume)
	}
	return nil
}

// FeedbackTicks converts the feedback duration to ticks at the configured rate
func (c *Config) FeedbackTicks() int {
	return parameter.DurationToTicks(c.Game.FeedbackDuration, c.Game.TickRate)
}
