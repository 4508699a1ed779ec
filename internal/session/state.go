// Package session holds the per-learner progress that travels in the
// session cookie.
package session

import (
	"maps"
	"math"

	"github.com/google/uuid"
)

// State is a learner's progress. It is a value: every transition returns a
// new State and leaves the receiver untouched.
type State struct {
	// ID identifies the session in the event log.
	ID string

	// Correct counts graded submissions that were correct.
	Correct int

	// Attempts counts every submission, including unparsable ones.
	Attempts int

	// Answers maps exercise name to the last answer typed for it.
	Answers map[string]string
}

// New returns a fresh session with a random ID.
func New() State {
	return State{
		ID:      uuid.NewString(),
		Answers: map[string]string{},
	}
}

// Reset zeroes the counters and forgets all answers. The ID is kept.
func (s State) Reset() State {
	return State{ID: s.ID, Answers: map[string]string{}}
}

// Submit stores answer as the last answer for exercise and counts an attempt.
func (s State) Submit(exercise, answer string) State {
	next := s.clone()
	next.Answers[exercise] = answer
	next.Attempts++
	return next
}

// MarkCorrect counts one correct submission.
func (s State) MarkCorrect() State {
	next := s.clone()
	next.Correct++
	return next
}

// Answer returns the stored answer for exercise.
func (s State) Answer(exercise string) (string, bool) {
	a, ok := s.Answers[exercise]
	return a, ok
}

// Accuracy returns the percentage of correct attempts rounded half to even,
// or false when nothing has been attempted yet.
func (s State) Accuracy() (int, bool) {
	if s.Attempts <= 0 {
		return 0, false
	}
	return int(math.RoundToEven(100 * float64(s.Correct) / float64(s.Attempts))), true
}

func (s State) clone() State {
	next := s
	next.Answers = maps.Clone(s.Answers)
	if next.Answers == nil {
		next.Answers = map[string]string{}
	}
	return next
}
