package store

import (
	"context"
)

// AnswerEventData captures one graded submission.
type AnswerEventData struct {
	SessionID string
	Exercise  string
	Level     string
	Answer    string
	Category  string
	Correct   bool
}

// ResetEventData captures a score reset and the counters it discarded.
type ResetEventData struct {
	SessionID string
	Attempts  int
	Correct   int
}

// CategoryCount is the number of submissions in one checker category.
type CategoryCount struct {
	Category string
	Count    int
}

// ExerciseStats summarizes submissions for one exercise.
type ExerciseStats struct {
	Exercise string
	Attempts int
	Correct  int
}

// Stats summarizes the whole event log.
type Stats struct {
	Attempts   int
	Correct    int
	Sessions   int
	Resets     int
	Categories []CategoryCount  // most frequent first
	Exercises  []ExerciseStats // by name
}

// Accuracy returns the correct percentage, or 0 with no attempts.
func (s Stats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return 100 * float64(s.Correct) / float64(s.Attempts)
}

// EventRepo provides append and summary access to the event log.
type EventRepo interface {
	// AppendAnswer records a graded submission.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendReset records a score reset.
	AppendReset(ctx context.Context, data ResetEventData) error

	// Stats summarizes everything recorded so far.
	Stats(ctx context.Context) (*Stats, error)

	// Clear deletes all events.
	Clear(ctx context.Context) error
}

// NopRepo discards events. It is used when the store is disabled.
type NopRepo struct{}

func (NopRepo) AppendAnswer(context.Context, AnswerEventData) error { return nil }
func (NopRepo) AppendReset(context.Context, ResetEventData) error   { return nil }
func (NopRepo) Stats(context.Context) (*Stats, error)               { return &Stats{}, nil }
func (NopRepo) Clear(context.Context) error                         { return nil }
