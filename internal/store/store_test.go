package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenFileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.db")
	s, err := Open(path)
	require.NoError(t, err)

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	repo := s.EventRepo()
	require.NoError(t, repo.AppendAnswer(context.Background(), AnswerEventData{
		SessionID: "s1", Exercise: "Ex_4_8", Answer: "1/2", Category: "correct", Correct: true,
	}))
	require.NoError(t, s.Close())

	// Reopening keeps the data and does not fail on existing tables.
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	st, err := s.EventRepo().Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, st.Attempts)
}

func TestTables(t *testing.T) {
	tables, err := Tables()
	require.NoError(t, err)
	require.Len(t, tables, 3)

	answers := tables[0]
	assert.Equal(t, "answer_events", answers.Name)
	for _, col := range []string{"id", "sequence", "timestamp", "session_id", "exercise", "level", "answer", "category", "correct"} {
		_, ok := answers.Column(col)
		assert.True(t, ok, "missing column %q", col)
	}
	seq, _ := answers.Column("sequence")
	assert.True(t, seq.Unique)
	level, _ := answers.Column("level")
	assert.True(t, level.Nullable)

	assert.Equal(t, "reset_events", tables[1].Name)

	seqTable := tables[2]
	assert.Equal(t, "event_sequence", seqTable.Name)
	_, ok := seqTable.Column("next_val")
	assert.True(t, ok)
}

func TestSequence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := nextSequence(ctx, s.DB())
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if got != want {
			t.Errorf("next = %d, want %d", got, want)
		}
	}
}

func TestSequence_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	first, err := nextSequence(ctx, s.DB())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	second, err := nextSequence(ctx, s.DB())
	require.NoError(t, err)
	assert.Equal(t, first+1, second)
}

func TestResolvePath(t *testing.T) {
	data := t.TempDir()
	t.Setenv("XDG_DATA_HOME", data)

	got, err := ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(data, "fractiz", "events.db"), got)
	assert.DirExists(t, filepath.Join(data, "fractiz"))

	explicit := filepath.Join(t.TempDir(), "nested", "log.db")
	got, err = ResolvePath(explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, got)
	assert.DirExists(t, filepath.Dir(explicit))
}
