package question

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Source yields question records from some external store
type Source interface {
	Load() ([]Record, error)
}

// Column names of the tabular format, matched case-sensitively after trimming
const (
	ColumnQuestion = "question"
	ColumnOptionA  = "opA"
	ColumnOptionB  = "opB"
	ColumnOptionC  = "opC"
	ColumnOptionD  = "opD"
	ColumnCorrect  = "correct"
)

var csvColumns = []string{ColumnQuestion, ColumnOptionA, ColumnOptionB, ColumnOptionC, ColumnOptionD, ColumnCorrect}

// SourceFor picks a source implementation by file extension
func SourceFor(path string, log *zap.Logger) Source {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return &YAMLSource{Path: path, Log: log}
	default:
		return &CSVSource{Path: path, Log: log}
	}
}

// CSVSource reads a header-row CSV file with columns question, opA..opD, correct
// Rows with a bad label are skipped and logged
type CSVSource struct {
	Path string
	Log  *zap.Logger
}

func (s *CSVSource) Load() ([]Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer f.Close()

	records, err := ReadCSV(f, logOrNop(s.Log).With(zap.String("path", s.Path)))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return records, nil
}

// ReadCSV parses the tabular question format from r
func ReadCSV(r io.Reader, log *zap.Logger) ([]Record, error) {
	log = logOrNop(log)

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		index[name] = i
	}
	for _, col := range csvColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	field := func(row []string, col string) (string, bool) {
		i := index[col]
		if i >= len(row) {
			return "", false
		}
		return row[i], true
	}

	var records []Record
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, err
		}

		var rec Record
		complete := true
		var ok bool
		if rec.Prompt, ok = field(row, ColumnQuestion); !ok {
			complete = false
		}
		for i, col := range csvColumns[1:5] {
			if rec.Options[i], ok = field(row, col); !ok {
				complete = false
			}
		}
		raw, ok := field(row, ColumnCorrect)
		if !complete || !ok {
			log.Warn("skipping short row", zap.Int("line", line), zap.Int("fields", len(row)))
			continue
		}
		label, err := ParseLabel(raw)
		if err != nil {
			log.Warn("skipping row with invalid answer", zap.Int("line", line), zap.Error(err))
			continue
		}
		rec.Correct = label
		records = append(records, rec)
	}

	return records, nil
}

// YAMLSource reads a list of {question, options, correct} documents
type YAMLSource struct {
	Path string
	Log  *zap.Logger
}

type yamlRecord struct {
	Question string   `yaml:"question"`
	Options  []string `yaml:"options"`
	Correct  string   `yaml:"correct"`
}

func (s *YAMLSource) Load() ([]Record, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.Path, err)
	}

	var raw []yamlRecord
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Path, err)
	}

	log := logOrNop(s.Log).With(zap.String("path", s.Path))
	records := make([]Record, 0, len(raw))
	for i, r := range raw {
		if len(r.Options) != int(labelCount) {
			log.Warn("skipping entry with wrong option count", zap.Int("entry", i), zap.Int("options", len(r.Options)))
			continue
		}
		label, err := ParseLabel(r.Correct)
		if err != nil {
			log.Warn("skipping entry with invalid answer", zap.Int("entry", i), zap.Error(err))
			continue
		}
		rec := Record{Prompt: r.Question, Correct: label}
		copy(rec.Options[:], r.Options)
		records = append(records, rec)
	}
	return records, nil
}

func logOrNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
