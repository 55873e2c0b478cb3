// Package session holds the state of one quiz run: the selected questions,
// the cursor, and the tallies updated as answers come in.
package session

import (
	"github.com/google/uuid"

	"github.com/sdutta/revq/internal/bank"
	"github.com/sdutta/revq/internal/match"
	"github.com/sdutta/revq/internal/perf"
)

// State is the mutable state of an active quiz session. Questions are asked
// strictly one at a time; there is no concurrent evaluation.
type State struct {
	SessionID  string
	Level      string
	Subject    string
	BankKey    string
	FilterInfo string

	Questions []bank.Question
	Index     int

	TotalAnswered int
	TotalCorrect  int
}

// New creates session state for the given selection.
func New(level, subject, filterInfo string, questions []bank.Question) *State {
	return &State{
		SessionID:  uuid.New().String(),
		Level:      level,
		Subject:    subject,
		BankKey:    bank.Key(level, subject),
		FilterInfo: filterInfo,
		Questions:  questions,
	}
}

// Current returns the question under the cursor, or nil when the session is
// finished.
func (s *State) Current() *bank.Question {
	if s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

// Done reports whether every question has been answered.
func (s *State) Done() bool {
	return s.Index >= len(s.Questions)
}

// Advance moves the cursor to the next question.
func (s *State) Advance() {
	if s.Index < len(s.Questions) {
		s.Index++
	}
}

// Outcome describes the result of answering the current question.
type Outcome struct {
	Accepted bool
	Matched  string     // canonical answer that triggered acceptance
	Rule     match.Rule // rule that fired
	Answers  []string   // full canonical list, for incorrect feedback
	Topic    string
}

// HandleAnswer checks the response against the current question, updates the
// session tallies and the cumulative performance record, and returns the
// outcome. The matcher itself never touches the performance store.
func HandleAnswer(s *State, p perf.Performance, m *match.Matcher, response string) Outcome {
	q := s.Current()
	if q == nil {
		return Outcome{}
	}

	res := m.Match(response, q.Answers)

	s.TotalAnswered++
	if res.Accepted {
		s.TotalCorrect++
	}
	p.Record(s.BankKey, q.Topic, res.Accepted)

	return Outcome{
		Accepted: res.Accepted,
		Matched:  res.Matched,
		Rule:     res.Rule,
		Answers:  q.Answers,
		Topic:    q.Topic,
	}
}
