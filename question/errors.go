package question

import "errors"

var (
	// ErrInvalidLabel is returned for an option label outside A-D
	ErrInvalidLabel = errors.New("invalid option label")
	// ErrEmptyBank is returned when sampling from a bank with no records
	ErrEmptyBank = errors.New("question bank is empty")
	// ErrMissingColumn is returned when a tabular source lacks a required header
	ErrMissingColumn = errors.New("missing column")
)
