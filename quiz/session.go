package quiz

import "github.com/lixenwraith/firework-quiz/question"

// Session is one playthrough: k sampled questions, a cursor and a score
// Invariants: 0 <= index <= k, 0 <= score <= k
type Session struct {
	questions []question.Record
	index     int
	score     int
}

func newSession(questions []question.Record) *Session {
	return &Session{questions: questions}
}

// Len returns k, the number of questions in the session
func (s *Session) Len() int {
	return len(s.questions)
}

// Index returns the 0-based cursor
func (s *Session) Index() int {
	return s.index
}

// Score returns the number of correct answers so far
func (s *Session) Score() int {
	return s.score
}

// Current returns the question under the cursor
func (s *Session) Current() (question.Record, bool) {
	if s.index >= len(s.questions) {
		return question.Record{}, false
	}
	return s.questions[s.index], true
}

// Done reports whether every question has been answered
func (s *Session) Done() bool {
	return s.index >= len(s.questions)
}

// Perfect reports a full score on a non-empty session
func (s *Session) Perfect() bool {
	return len(s.questions) > 0 && s.score == len(s.questions)
}
