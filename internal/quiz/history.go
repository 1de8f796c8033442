package quiz

import (
	"slices"
	"time"
)

// HistorySize is the number of entries kept on the leaderboard.
const HistorySize = 5

// HistoryEntry is one past session outcome on the leaderboard.
type HistoryEntry struct {
	ID              string     `json:"id"`
	Score           int        `json:"score"`
	TotalQuestions  int        `json:"total_questions"`
	Percentage      int        `json:"percentage"`
	Difficulty      Difficulty `json:"difficulty"`
	DurationSeconds int        `json:"duration_seconds"`
	Timestamp       time.Time  `json:"timestamp"`
}

// RecordHistory inserts entry into existing, sorts by score descending then
// most recent first, and keeps the top HistorySize entries. existing is not
// modified.
func RecordHistory(entry HistoryEntry, existing []HistoryEntry) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(existing)+1)
	out = append(out, existing...)
	out = append(out, entry)
	SortHistory(out)
	if len(out) > HistorySize {
		out = out[:HistorySize]
	}
	return out
}

// SortHistory orders entries by score descending, then timestamp descending.
func SortHistory(entries []HistoryEntry) {
	slices.SortStableFunc(entries, func(a, b HistoryEntry) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return b.Timestamp.Compare(a.Timestamp)
	})
}

// ContainsEntry reports whether an entry with the given ID is in entries.
func ContainsEntry(entries []HistoryEntry, id string) bool {
	return slices.ContainsFunc(entries, func(e HistoryEntry) bool { return e.ID == id })
}
