package quiz

import "fmt"

// State is the current screen of the game
type State int

const (
	StateStart State = iota
	StateQuestion
	StateFeedback
	StateResult
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateQuestion:
		return "question"
	case StateFeedback:
		return "feedback"
	case StateResult:
		return "result"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// transitions lists the legal targets from each state
var transitions = map[State][]State{
	StateStart:    {StateQuestion},
	StateQuestion: {StateFeedback},
	StateFeedback: {StateQuestion, StateResult},
	StateResult:   {StateStart},
}

// CanTransition reports whether from -> to is a legal edge
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
