package quiz

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRepo_SessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(newMemKV())

	if s, err := repo.LoadSession(ctx); err != nil || s != nil {
		t.Fatalf("empty LoadSession = %v, %v", s, err)
	}

	c, _ := startedController(t, 3, nil)
	orig := c.Session()
	orig.Answers[0] = orig.Choices[0][2]
	if err := repo.SaveSession(ctx, orig); err != nil {
		t.Fatal(err)
	}

	got, err := repo.LoadSession(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != orig.ID || got.Total() != 3 || got.Answers[0] != orig.Answers[0] {
		t.Errorf("loaded %+v", got)
	}
	for i := range orig.Choices {
		for j := range orig.Choices[i] {
			if got.Choices[i][j] != orig.Choices[i][j] {
				t.Fatalf("choice order changed at %d/%d", i, j)
			}
		}
	}
	if !got.StartedAt.Equal(orig.StartedAt) {
		t.Errorf("StartedAt = %v, want %v", got.StartedAt, orig.StartedAt)
	}

	if err := repo.ClearSession(ctx); err != nil {
		t.Fatal(err)
	}
	if s, _ := repo.LoadSession(ctx); s != nil {
		t.Error("expected session cleared")
	}
}

func TestRepo_CorruptResult(t *testing.T) {
	kv := newMemKV()
	kv.data[KeyQuizResults] = "not-json"
	_, err := NewRepo(kv).LoadResult(context.Background())

	var corrupt *ErrPersistenceCorrupt
	if !errors.As(err, &corrupt) || corrupt.Key != KeyQuizResults {
		t.Errorf("err = %v, want corrupt %s", err, KeyQuizResults)
	}
}

func TestRepo_AppendHistory_ReplacesCorrupt(t *testing.T) {
	kv := newMemKV()
	kv.data[KeyHighScores] = `{"oops":true}`
	repo := NewRepo(kv)

	entries, err := repo.AppendHistory(context.Background(), HistoryEntry{ID: "a", Score: 4, Timestamp: time.Unix(1, 0)})
	var corrupt *ErrPersistenceCorrupt
	if !errors.As(err, &corrupt) {
		t.Errorf("err = %v, want corrupt notice", err)
	}
	if len(entries) != 1 || entries[0].ID != "a" {
		t.Fatalf("entries = %+v", entries)
	}
	stored, err := repo.History(context.Background())
	if err != nil || len(stored) != 1 {
		t.Errorf("History = %+v, %v", stored, err)
	}
}

func TestRepo_HistoryTruncatesOversizedBlob(t *testing.T) {
	kv := newMemKV()
	kv.data[KeyHighScores] = `[{"id":"a","score":1},{"id":"b","score":6},{"id":"c","score":3},{"id":"d","score":2},{"id":"e","score":9},{"id":"f","score":5}]`
	entries, err := NewRepo(kv).History(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != HistorySize || entries[0].ID != "e" || entries[4].ID != "d" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestRepo_Clear(t *testing.T) {
	kv := newMemKV()
	for _, k := range []string{KeyCurrentQuiz, KeyQuizResults, KeyHighScores, "unrelated"} {
		kv.data[k] = "x"
	}
	if err := NewRepo(kv).Clear(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(kv.data) != 1 {
		t.Errorf("remaining keys = %v, want only unrelated", kv.data)
	}
}
