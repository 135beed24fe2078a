package question

import "fmt"

// Record is one immutable multiple-choice question
type Record struct {
	Prompt  string
	Options [labelCount]string
	Correct Label
}

// Option returns the text for label l
func (r Record) Option(l Label) string {
	if !l.Valid() {
		return ""
	}
	return r.Options[l]
}

// IsCorrect reports whether l matches the correct label
func (r Record) IsCorrect(l Label) bool {
	return l == r.Correct
}

// Validate checks the correct-label invariant
func (r Record) Validate() error {
	if !r.Correct.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidLabel, r.Correct)
	}
	return nil
}
