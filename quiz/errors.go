package quiz

import "errors"

var (
	// ErrNoSession is returned when input arrives but no session could be sampled
	ErrNoSession = errors.New("no active quiz session")
	// ErrInvalidTransition is returned for a state change the machine does not allow
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrSessionComplete is returned when answering past the last question
	ErrSessionComplete = errors.New("session has no remaining questions")
)
