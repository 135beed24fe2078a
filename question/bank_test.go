package question

import (
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func makeRecords(n int) []Record {
	records := make([]Record, n)
	for i := range records {
		records[i] = Record{
			Prompt:  fmt.Sprintf("q%d", i),
			Options: [4]string{"a", "b", "c", "d"},
			Correct: Labels[i%4],
		}
	}
	return records
}

type staticSource struct {
	records []Record
	err     error
}

func (s staticSource) Load() ([]Record, error) {
	return s.records, s.err
}

func TestSampleSizeAndDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for n := 1; n <= 12; n++ {
		bank := NewBank(makeRecords(n))
		for trial := 0; trial < 20; trial++ {
			got, err := bank.Sample(rng, 5)
			if err != nil {
				t.Fatalf("n=%d: Sample failed: %v", n, err)
			}
			if len(got) != min(5, n) {
				t.Fatalf("n=%d: Expected %d records, got %d", n, min(5, n), len(got))
			}
			seen := make(map[string]bool)
			for _, rec := range got {
				if seen[rec.Prompt] {
					t.Fatalf("n=%d: duplicate record %q", n, rec.Prompt)
				}
				seen[rec.Prompt] = true
			}
		}
	}
}

func TestSampleCoversBank(t *testing.T) {
	// Every record should eventually appear; catches samplers that only take a prefix
	rng := rand.New(rand.NewSource(7))
	bank := NewBank(makeRecords(10))
	seen := make(map[string]bool)
	for trial := 0; trial < 200; trial++ {
		got, _ := bank.Sample(rng, 5)
		for _, rec := range got {
			seen[rec.Prompt] = true
		}
	}
	if len(seen) != 10 {
		t.Errorf("Expected all 10 records sampled over 200 trials, saw %d", len(seen))
	}
}

func TestSampleEmptyBank(t *testing.T) {
	_, err := NewBank(nil).Sample(rand.New(rand.NewSource(1)), 5)
	if !errors.Is(err, ErrEmptyBank) {
		t.Errorf("Expected ErrEmptyBank, got %v", err)
	}
}

func TestLoadFallback(t *testing.T) {
	tests := []struct {
		name string
		src  Source
	}{
		{"Nil source", nil},
		{"Source error", staticSource{err: errors.New("boom")}},
		{"Empty source", staticSource{}},
		{"Missing file", &CSVSource{Path: filepath.Join(t.TempDir(), "missing.csv")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			bank := Load(tt.src, zap.New(core))

			if !bank.IsFallback() {
				t.Error("Expected fallback bank")
			}
			if bank.Len() != len(Fallback()) {
				t.Errorf("Expected %d fallback records, got %d", len(Fallback()), bank.Len())
			}
			if logs.FilterLevelExact(zapcore.WarnLevel).Len() != 1 {
				t.Errorf("Expected exactly one warning, got %d", logs.Len())
			}
		})
	}
}

func TestLoadUsesSource(t *testing.T) {
	bank := Load(staticSource{records: makeRecords(3)}, nil)
	if bank.IsFallback() {
		t.Error("Expected source records, got fallback")
	}
	if bank.Len() != 3 {
		t.Errorf("Expected 3 records, got %d", bank.Len())
	}
	if bank.SessionSize(5) != 3 {
		t.Errorf("Expected session size 3, got %d", bank.SessionSize(5))
	}
}
