package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/firework-quiz/config"
)

// New builds the application logger
// Output never goes to the terminal since the game owns the screen; without debug the logger discards everything
func New(cfg *config.Config) (*zap.Logger, error) {
	if !cfg.Debug {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(cfg.LogDir, FileName(time.Now()))

	var zc zap.Config
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}

	return zc.Build()
}

// FileName returns the per-run log file name
func FileName(t time.Time) string {
	return "firework-quiz-" + t.Format("20060102-150405") + ".log"
}
