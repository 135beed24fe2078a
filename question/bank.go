package question

import (
	"math/rand"

	"go.uber.org/zap"
)

// Bank holds every record loaded for the process lifetime
type Bank struct {
	records  []Record
	fallback bool
}

// NewBank wraps records without validation; used by tests and Load
func NewBank(records []Record) *Bank {
	return &Bank{records: records}
}

// Load reads src and substitutes the fallback bank if src is nil, fails, or is empty
// Source problems are logged as warnings and never surface as errors
func Load(src Source, log *zap.Logger) *Bank {
	log = logOrNop(log)

	if src == nil {
		log.Warn("no question source configured, using fallback bank")
		return &Bank{records: Fallback(), fallback: true}
	}

	records, err := src.Load()
	if err != nil {
		log.Warn("question source unavailable, using fallback bank", zap.Error(err))
		return &Bank{records: Fallback(), fallback: true}
	}
	if len(records) == 0 {
		log.Warn("question source has no rows, using fallback bank")
		return &Bank{records: Fallback(), fallback: true}
	}

	log.Info("question bank loaded", zap.Int("records", len(records)))
	return &Bank{records: records}
}

// Len returns the number of records
func (b *Bank) Len() int {
	return len(b.records)
}

// IsFallback reports whether the built-in bank replaced the configured source
func (b *Bank) IsFallback() bool {
	return b.fallback
}

// Records returns a copy of all records
func (b *Bank) Records() []Record {
	out := make([]Record, len(b.records))
	copy(out, b.records)
	return out
}

// SessionSize returns min(n, Len()), never negative
func (b *Bank) SessionSize(n int) int {
	return max(0, min(n, len(b.records)))
}

// Sample draws min(n, Len()) distinct records uniformly at random, in random order
func (b *Bank) Sample(rng *rand.Rand, n int) ([]Record, error) {
	if len(b.records) == 0 {
		return nil, ErrEmptyBank
	}
	k := b.SessionSize(n)
	perm := rng.Perm(len(b.records))
	out := make([]Record, k)
	for i := 0; i < k; i++ {
		out[i] = b.records[perm[i]]
	}
	return out, nil
}
