package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

type eventRepo struct {
	db  *sql.DB
	now func() time.Time
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	err := r.append(ctx, answerEventsTable, map[string]any{
		"session_id": data.SessionID,
		"exercise":   data.Exercise,
		"level":      data.Level,
		"answer":     data.Answer,
		"category":   data.Category,
		"correct":    data.Correct,
	})
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendReset(ctx context.Context, data ResetEventData) error {
	err := r.append(ctx, resetEventsTable, map[string]any{
		"session_id": data.SessionID,
		"attempts":   data.Attempts,
		"correct":    data.Correct,
	})
	if err != nil {
		return fmt.Errorf("save reset event: %w", err)
	}
	return nil
}

// append validates and inserts one event row under a fresh sequence
// number. A rejected row leaves the sequence untouched.
func (r *eventRepo) append(ctx context.Context, table string, values map[string]any) error {
	e, err := entityFor(table)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	seq, err := nextSequence(ctx, tx)
	if err != nil {
		return err
	}
	values["sequence"] = seq
	if r.now != nil {
		values["timestamp"] = r.now().UTC()
	}

	cols, vals, err := e.row(values)
	if err != nil {
		return err
	}
	query, args := builder().Insert(table).Columns(cols...).Values(vals...).Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *eventRepo) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{}

	// Totals.
	query, args := builder().
		Select(
			entsql.Count("*"),
			"COALESCE("+entsql.Sum("correct")+", 0)",
			entsql.Count(entsql.Distinct("session_id")),
		).
		From(entsql.Table(answerEventsTable)).
		Query()
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&st.Attempts, &st.Correct, &st.Sessions); err != nil {
		return nil, fmt.Errorf("query totals: %w", err)
	}

	query, args = builder().
		Select(entsql.Count("*")).
		From(entsql.Table(resetEventsTable)).
		Query()
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&st.Resets); err != nil {
		return nil, fmt.Errorf("query resets: %w", err)
	}

	// Per category.
	query, args = builder().
		Select("category", entsql.As(entsql.Count("*"), "n")).
		From(entsql.Table(answerEventsTable)).
		GroupBy("category").
		OrderBy(entsql.Desc("n"), "category").
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan category: %w", err)
		}
		st.Categories = append(st.Categories, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}

	// Per exercise.
	query, args = builder().
		Select("exercise", entsql.Count("*"), "COALESCE("+entsql.Sum("correct")+", 0)").
		From(entsql.Table(answerEventsTable)).
		GroupBy("exercise").
		OrderBy("exercise").
		Query()
	rows, err = r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e ExerciseStats
		if err := rows.Scan(&e.Exercise, &e.Attempts, &e.Correct); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		st.Exercises = append(st.Exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}

	return st, nil
}

func (r *eventRepo) Clear(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{answerEventsTable, resetEventsTable} {
		query, args := builder().Delete(table).Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}
