package quiz

import (
	"math/rand/v2"
	"testing"
	"time"
)

func TestRecordHistory_SortsAndTruncates(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	var history []HistoryEntry
	scores := []int{3, 7, 5, 7, 1, 9, 4}
	for i, s := range scores {
		history = RecordHistory(HistoryEntry{
			ID:        string(rune('a' + i)),
			Score:     s,
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		}, history)
	}

	if len(history) != HistorySize {
		t.Fatalf("len = %d, want %d", len(history), HistorySize)
	}
	wantIDs := []string{"f", "d", "b", "c", "g"}
	for i, id := range wantIDs {
		if history[i].ID != id {
			t.Errorf("history[%d].ID = %q, want %q", i, history[i].ID, id)
		}
	}
}

func TestRecordHistory_TieBreaksOnRecency(t *testing.T) {
	older := HistoryEntry{ID: "old", Score: 5, Timestamp: time.Unix(100, 0)}
	newer := HistoryEntry{ID: "new", Score: 5, Timestamp: time.Unix(200, 0)}

	got := RecordHistory(older, []HistoryEntry{newer})
	if got[0].ID != "new" || got[1].ID != "old" {
		t.Errorf("order = [%s %s], want [new old]", got[0].ID, got[1].ID)
	}
}

func TestRecordHistory_DoesNotModifyInput(t *testing.T) {
	existing := []HistoryEntry{{ID: "a", Score: 1}, {ID: "b", Score: 2}}
	RecordHistory(HistoryEntry{ID: "c", Score: 3}, existing)
	if existing[0].ID != "a" || existing[1].ID != "b" {
		t.Errorf("input reordered: %+v", existing)
	}
}

func TestRecordHistory_Invariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	var history []HistoryEntry
	for i := range 200 {
		history = RecordHistory(HistoryEntry{
			Score:     rng.IntN(11),
			Timestamp: time.Unix(int64(rng.IntN(1000)), 0),
		}, history)
		if len(history) > HistorySize {
			t.Fatalf("iteration %d: len = %d", i, len(history))
		}
		for j := 1; j < len(history); j++ {
			if history[j-1].Score < history[j].Score {
				t.Fatalf("iteration %d: not sorted by score: %+v", i, history)
			}
		}
	}
}

func TestContainsEntry(t *testing.T) {
	entries := []HistoryEntry{{ID: "x"}, {ID: "y"}}
	if !ContainsEntry(entries, "y") {
		t.Error("expected y to be found")
	}
	if ContainsEntry(entries, "z") {
		t.Error("did not expect z to be found")
	}
}
