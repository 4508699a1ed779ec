package store

import (
	"context"
	"database/sql"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

const sequenceRow = 1

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// seedSequence creates the counter row if the table is empty. Events are
// numbered across the answer and reset tables so the two streams merge
// into one ordered log.
func seedSequence(ctx context.Context, q queryer) error {
	e, err := entityFor(sequenceTable)
	if err != nil {
		return err
	}
	cols, vals, err := e.row(nil)
	if err != nil {
		return err
	}
	query, args := builder().Insert(sequenceTable).
		Columns(append([]string{"id"}, cols...)...).
		Values(append([]any{sequenceRow}, vals...)...).
		OnConflict(entsql.DoNothing()).
		Query()
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("seed sequence: %w", err)
	}
	return nil
}

// nextSequence claims a sequence number. The increment and read happen in
// one UPDATE ... RETURNING statement; inside a transaction the claim is
// undone on rollback.
func nextSequence(ctx context.Context, q queryer) (int64, error) {
	query, args := builder().Update(sequenceTable).
		Add("next_val", 1).
		Where(entsql.EQ("id", sequenceRow)).
		Returning("next_val").
		Query()

	var next int64
	if err := q.QueryRowContext(ctx, query, args...).Scan(&next); err != nil {
		return 0, fmt.Errorf("claim sequence: %w", err)
	}
	return next - 1, nil
}
