package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizmaster/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is checked in TestFileDatabaseUsesWAL.
		{"busy_timeout", "5000"},
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

func TestFileDatabaseUsesWAL(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "quiz.db"))
	require.NoError(t, err)
	defer s.Close()

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestStore_GetSetDelete(t *testing.T) {
	testKV(t, openTestStore(t))
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, quiz.KeyHighScores, `[{"id":"a","score":3}]`))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	entries, err := quiz.NewRepo(s).History(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 3, entries[0].Score)
}

func TestOpenKV_Backends(t *testing.T) {
	ctx := context.Background()

	kv, err := OpenKV(ctx, Options{Backend: BackendSQLite, Path: filepath.Join(t.TempDir(), "nested", "q.db")})
	require.NoError(t, err)
	assert.IsType(t, &Store{}, kv)
	require.NoError(t, kv.Close())

	kv, err = OpenKV(ctx, Options{Backend: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryKV{}, kv)

	_, err = OpenKV(ctx, Options{Backend: "etcd"})
	assert.ErrorContains(t, err, "unknown store backend")
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("QUIZMASTER_DB", filepath.Join(dir, "explicit", "x.db"))
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "explicit", "x.db"), p)
	assert.DirExists(t, filepath.Join(dir, "explicit"))

	t.Setenv("QUIZMASTER_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "quizmaster", "quizmaster.db"), p)
}

// testKV exercises the quiz.Storage contract shared by every backend.
func testKV(t *testing.T, kv quiz.Storage) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "a", "1"))
	require.NoError(t, kv.Set(ctx, "b", "2"))
	require.NoError(t, kv.Set(ctx, "a", "updated"))

	v, ok, err := kv.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "updated", v)

	require.NoError(t, kv.Delete(ctx, "a", "b", "never-set"))
	_, ok, err = kv.Get(ctx, "b")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Delete(ctx))
}

func TestSchemaColumns(t *testing.T) {
	s := openTestStore(t)

	rows, err := s.DB().Query("PRAGMA table_info(" + kvTable + ")")
	require.NoError(t, err)
	defer rows.Close()

	type column struct {
		typ     string
		notNull bool
		pk      bool
	}
	got := map[string]column{}
	for rows.Next() {
		var (
			cid      int
			name     string
			typ      string
			notNull  int
			defValue any
			pk       int
		)
		require.NoError(t, rows.Scan(&cid, &name, &typ, &notNull, &defValue, &pk))
		got[name] = column{typ: strings.ToUpper(typ), notNull: notNull == 1, pk: pk > 0}
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, map[string]column{
		"name":       {typ: "TEXT", notNull: true, pk: true},
		"value":      {typ: "TEXT", notNull: true},
		"updated_at": {typ: "DATETIME", notNull: true},
	}, got)
}

func TestKVTableSchema(t *testing.T) {
	table := kvTableSchema()

	require.Len(t, table.Columns, 3)
	require.Len(t, table.PrimaryKey, 1)
	assert.Equal(t, kvTable, table.Name)
	assert.Equal(t, "name", table.PrimaryKey[0].Name)
	for _, c := range table.Columns {
		assert.False(t, c.Nullable, "column %s", c.Name)
	}
}

func TestOpen_ExistingTableMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.db")
	for range 2 {
		s, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, s.Close())
	}
}
