package tutor

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/fractiz/internal/session"
	"github.com/abhisek/fractiz/internal/store"
)

// Record appends the graded answer and the reset carried by out, if any,
// to repo. before is the state Handle was called with; a reset records
// the counters it discarded.
func Record(ctx context.Context, repo store.EventRepo, before session.State, out Outcome) error {
	var errs []error
	if g := out.Graded; g != nil {
		err := repo.AppendAnswer(ctx, store.AnswerEventData{
			SessionID: out.State.ID,
			Exercise:  g.Exercise.Name,
			Level:     string(g.Exercise.Level),
			Answer:    g.Answer,
			Category:  string(g.Category),
			Correct:   g.Correct,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("append answer for %s: %w", g.Exercise.Name, err))
		}
	}
	if out.Reset {
		err := repo.AppendReset(ctx, store.ResetEventData{
			SessionID: before.ID,
			Attempts:  before.Attempts,
			Correct:   before.Correct,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("append reset: %w", err))
		}
	}
	return errors.Join(errs...)
}
