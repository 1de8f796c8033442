package quiz

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"
)

// AnswerRecord maps a question index to the selected answer. A missing key
// means the question was not answered.
type AnswerRecord map[int]string

// Get returns the recorded answer for index i.
func (a AnswerRecord) Get(i int) (string, bool) {
	v, ok := a[i]
	return v, ok
}

// Session is one attempt at a quiz, from setup submission to completion.
type Session struct {
	ID         string       `json:"id"`
	Difficulty Difficulty   `json:"difficulty"`
	Questions  []Question   `json:"questions"`
	Choices    [][]string   `json:"choices"`
	Current    int          `json:"current_index"`
	Answers    AnswerRecord `json:"answers"`
	TimedOut   map[int]bool `json:"timed_out,omitempty"`
	Timer      Timer        `json:"timer"`
	Offline    bool         `json:"offline,omitempty"`
	StartedAt  time.Time    `json:"started_at"`
	EndedAt    time.Time    `json:"ended_at,omitzero"`
}

// NewSession builds a session with shuffled options for every question.
func NewSession(id string, difficulty Difficulty, questions []Question, timeLimit int, rng *rand.Rand, now time.Time) *Session {
	choices := make([][]string, len(questions))
	for i, q := range questions {
		opts := q.Options()
		rng.Shuffle(len(opts), func(a, b int) { opts[a], opts[b] = opts[b], opts[a] })
		choices[i] = opts
	}
	return &Session{
		ID:         id,
		Difficulty: difficulty,
		Questions:  questions,
		Choices:    choices,
		Answers:    make(AnswerRecord),
		TimedOut:   make(map[int]bool),
		Timer:      NewTimer(timeLimit),
		StartedAt:  now,
	}
}

// Total returns the number of questions in the session.
func (s *Session) Total() int {
	return len(s.Questions)
}

// CurrentQuestion returns the question at the current index.
func (s *Session) CurrentQuestion() Question {
	return s.Questions[s.Current]
}

// CurrentChoices returns the shuffled options for the current question.
func (s *Session) CurrentChoices() []string {
	return s.Choices[s.Current]
}

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool {
	return s.Current == len(s.Questions)-1
}

// Selected returns the answer recorded for the current question.
func (s *Session) Selected() (string, bool) {
	return s.Answers.Get(s.Current)
}

// Elapsed returns the session duration, measured up to now for a running
// session.
func (s *Session) Elapsed(now time.Time) time.Duration {
	end := s.EndedAt
	if end.IsZero() {
		end = now
	}
	d := end.Sub(s.StartedAt)
	if d < 0 {
		return 0
	}
	return d
}

// validate checks the structural invariants of a session restored from
// storage.
func (s *Session) validate() error {
	if len(s.Questions) == 0 {
		return fmt.Errorf("session has no questions")
	}
	if len(s.Choices) != len(s.Questions) {
		return fmt.Errorf("session has %d option sets for %d questions", len(s.Choices), len(s.Questions))
	}
	if s.Current < 0 || s.Current >= len(s.Questions) {
		return fmt.Errorf("current index %d out of range [0, %d)", s.Current, len(s.Questions))
	}
	if s.Timer.Limit <= 0 || s.Timer.Remaining < 0 || s.Timer.Remaining > s.Timer.Limit {
		return fmt.Errorf("timer %d/%d out of range", s.Timer.Remaining, s.Timer.Limit)
	}
	if s.Timer.Fired && s.Timer.Remaining > 0 {
		return fmt.Errorf("timer fired with %d seconds left", s.Timer.Remaining)
	}
	for i, q := range s.Questions {
		if !sameOptions(s.Choices[i], q.Options()) {
			return fmt.Errorf("option set %d does not match question %d", i, i)
		}
	}
	if !s.Difficulty.Valid() {
		return fmt.Errorf("unknown difficulty %q", s.Difficulty)
	}
	for i := range s.Answers {
		if i < 0 || i >= len(s.Questions) {
			return fmt.Errorf("answer for question %d out of range", i)
		}
	}
	if s.Answers == nil {
		s.Answers = make(AnswerRecord)
	}
	if s.TimedOut == nil {
		s.TimedOut = make(map[int]bool)
	}
	return nil
}

// sameOptions reports whether choices is a reordering of opts.
func sameOptions(choices, opts []string) bool {
	if len(choices) != len(opts) {
		return false
	}
	a, b := slices.Clone(choices), slices.Clone(opts)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}
