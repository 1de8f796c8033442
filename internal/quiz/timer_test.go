package quiz

import "testing"

func TestNewTimer_DefaultLimit(t *testing.T) {
	for _, limit := range []int{0, -5} {
		tm := NewTimer(limit)
		if tm.Limit != DefaultTimeLimit || tm.Remaining != DefaultTimeLimit {
			t.Errorf("NewTimer(%d) = %+v, want limit %d", limit, tm, DefaultTimeLimit)
		}
	}
}

func TestTimer_FiresExactlyOnce(t *testing.T) {
	tm := NewTimer(3)
	fired := 0
	for range 10 {
		if tm.Tick() {
			fired++
		}
		if tm.Remaining < 0 {
			t.Fatalf("remaining went negative: %d", tm.Remaining)
		}
	}
	if fired != 1 {
		t.Errorf("fired %d times, want 1", fired)
	}
	if !tm.Expired() {
		t.Error("expected timer to be expired")
	}
}

func TestTimer_Reset(t *testing.T) {
	tm := NewTimer(2)
	tm.Tick()
	tm.Tick()
	tm.Reset()
	if tm.Remaining != 2 || tm.Fired {
		t.Fatalf("after reset got %+v", tm)
	}
	tm.Tick()
	if !tm.Tick() {
		t.Error("expected reset timer to fire again")
	}
}

func TestTimer_Fraction(t *testing.T) {
	tm := NewTimer(10)
	for range 4 {
		tm.Tick()
	}
	if got := tm.Fraction(); got != 0.6 {
		t.Errorf("Fraction() = %v, want 0.6", got)
	}
	if got := (Timer{}).Fraction(); got != 0 {
		t.Errorf("zero timer Fraction() = %v, want 0", got)
	}
}
