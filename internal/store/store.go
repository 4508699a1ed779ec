// Package store keeps an append-only sqlite log of graded answers and
// score resets.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// pragmas run once on the single pooled connection.
var pragmas = []struct{ name, value string }{
	{"journal_mode", "WAL"},
	{"busy_timeout", "5000"},
	{"foreign_keys", "ON"},
	{"synchronous", "NORMAL"},
}

// Store owns the database connection.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
}

// Open connects to the sqlite database at dsn and creates missing tables.
// ":memory:" gives a private throwaway database.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// With a single connection the pragmas and in-memory data are shared
	// by every query.
	db.SetMaxOpenConns(1)

	s, err := initialize(context.Background(), db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func initialize(ctx context.Context, db *sql.DB) (*Store, error) {
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA %s = %s", p.name, p.value)); err != nil {
			return nil, fmt.Errorf("pragma %s: %w", p.name, err)
		}
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	tables, err := Tables()
	if err != nil {
		return nil, err
	}
	migrate, err := schema.NewMigrate(drv)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := migrate.Create(ctx, tables...); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if err := seedSequence(ctx, db); err != nil {
		return nil, err
	}
	return &Store{db: db, drv: drv}, nil
}

// DB exposes the connection for ad-hoc queries in tests and tools.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.drv.Close()
}

// EventRepo returns the event log backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db}
}
