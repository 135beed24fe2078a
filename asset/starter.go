package asset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Starter file locations relative to the project directory
const (
	ConfigPath    = "config/config.yaml"
	QuestionsPath = "assets/questions.csv"
)

// WriteStarter writes the default config and sample bank under dir
// Existing files are kept unless force is set; returns the paths actually written
func WriteStarter(dir string, force bool) ([]string, error) {
	files := []struct {
		path    string
		content string
	}{
		{ConfigPath, DefaultConfigYAML},
		{QuestionsPath, SampleQuestionsCSV},
	}

	var written []string
	for _, f := range files {
		path := filepath.Join(dir, f.path)
		if !force {
			if _, err := os.Stat(path); err == nil {
				continue
			} else if !errors.Is(err, fs.ErrNotExist) {
				return written, fmt.Errorf("stat %s: %w", path, err)
			}
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, fmt.Errorf("create %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
