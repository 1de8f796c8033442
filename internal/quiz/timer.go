package quiz

// DefaultTimeLimit is the per-question limit in seconds.
const DefaultTimeLimit = 30

// Timer is the countdown for a single question. It is advanced by explicit
// one-second ticks and never goes below zero.
type Timer struct {
	Limit     int  `json:"limit"`
	Remaining int  `json:"remaining"`
	Fired     bool `json:"fired"`
}

// NewTimer returns a full timer with the given limit in seconds.
func NewTimer(limit int) Timer {
	if limit <= 0 {
		limit = DefaultTimeLimit
	}
	return Timer{Limit: limit, Remaining: limit}
}

// Reset refills the timer for the next question.
func (t *Timer) Reset() {
	t.Remaining = t.Limit
	t.Fired = false
}

// Tick consumes one second. It returns true exactly once, on the tick that
// brings the timer to zero.
func (t *Timer) Tick() bool {
	if t.Fired {
		return false
	}
	if t.Remaining > 0 {
		t.Remaining--
	}
	if t.Remaining == 0 {
		t.Fired = true
		return true
	}
	return false
}

// Expired reports whether the timer reached zero.
func (t Timer) Expired() bool {
	return t.Remaining == 0
}

// Fraction returns the remaining share of the limit in [0, 1].
func (t Timer) Fraction() float64 {
	if t.Limit <= 0 {
		return 0
	}
	return float64(t.Remaining) / float64(t.Limit)
}
