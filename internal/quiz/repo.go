package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Storage keys for the persisted blobs.
const (
	KeyCurrentQuiz = "currentQuiz"
	KeyQuizResults = "quizResults"
	KeyHighScores  = "highScores"
)

// Storage is a string key-value store. Implementations live in
// internal/store.
type Storage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// Repo persists sessions, results and the leaderboard as JSON blobs.
type Repo struct {
	kv Storage
}

// NewRepo returns a Repo backed by kv.
func NewRepo(kv Storage) *Repo {
	return &Repo{kv: kv}
}

// SaveSession writes the in-progress session.
func (r *Repo) SaveSession(ctx context.Context, s *Session) error {
	return r.put(ctx, KeyCurrentQuiz, s)
}

// LoadSession returns the persisted in-progress session, or nil if there is
// none. A blob that fails to decode or validate yields *ErrPersistenceCorrupt.
func (r *Repo) LoadSession(ctx context.Context) (*Session, error) {
	var s Session
	ok, err := r.get(ctx, KeyCurrentQuiz, &s)
	if err != nil || !ok {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, &ErrPersistenceCorrupt{Key: KeyCurrentQuiz, Err: err}
	}
	return &s, nil
}

// ClearSession removes the in-progress session.
func (r *Repo) ClearSession(ctx context.Context) error {
	if err := r.kv.Delete(ctx, KeyCurrentQuiz); err != nil {
		return fmt.Errorf("clearing %s: %w", KeyCurrentQuiz, err)
	}
	return nil
}

// SaveResult writes the most recent result.
func (r *Repo) SaveResult(ctx context.Context, res *Result) error {
	return r.put(ctx, KeyQuizResults, res)
}

// LoadResult returns the most recent result, or nil if there is none.
func (r *Repo) LoadResult(ctx context.Context) (*Result, error) {
	var res Result
	ok, err := r.get(ctx, KeyQuizResults, &res)
	if err != nil || !ok {
		return nil, err
	}
	return &res, nil
}

// History returns the stored leaderboard, best first.
func (r *Repo) History(ctx context.Context) ([]HistoryEntry, error) {
	var entries []HistoryEntry
	if _, err := r.get(ctx, KeyHighScores, &entries); err != nil {
		return nil, err
	}
	SortHistory(entries)
	if len(entries) > HistorySize {
		entries = entries[:HistorySize]
	}
	return entries, nil
}

// AppendHistory records entry on the leaderboard and returns the new list.
// A corrupt leaderboard is replaced by one holding only entry; the corrupt
// error is returned alongside the list so the caller can report it.
func (r *Repo) AppendHistory(ctx context.Context, entry HistoryEntry) ([]HistoryEntry, error) {
	existing, loadErr := r.History(ctx)
	if loadErr != nil {
		var corrupt *ErrPersistenceCorrupt
		if !errors.As(loadErr, &corrupt) {
			return nil, loadErr
		}
		existing = nil
	}

	updated := RecordHistory(entry, existing)
	if err := r.put(ctx, KeyHighScores, updated); err != nil {
		return nil, err
	}
	return updated, loadErr
}

// Clear removes every persisted blob.
func (r *Repo) Clear(ctx context.Context) error {
	if err := r.kv.Delete(ctx, KeyCurrentQuiz, KeyQuizResults, KeyHighScores); err != nil {
		return fmt.Errorf("clearing quiz state: %w", err)
	}
	return nil
}

// Discard removes a single key, used after a corrupt blob was detected.
func (r *Repo) Discard(ctx context.Context, key string) error {
	if err := r.kv.Delete(ctx, key); err != nil {
		return fmt.Errorf("discarding %s: %w", key, err)
	}
	return nil
}

func (r *Repo) put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := r.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func (r *Repo) get(ctx context.Context, key string, v any) (bool, error) {
	raw, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, &ErrPersistenceCorrupt{Key: key, Err: err}
	}
	return true, nil
}
