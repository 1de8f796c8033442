package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// memKV is an in-memory Storage for tests.
type memKV struct {
	mu      sync.Mutex
	data    map[string]string
	failSet error
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string]string)}
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet != nil {
		return m.failSet
	}
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

// stubProvider returns a fixed result and counts calls.
type stubProvider struct {
	name      string
	questions []Question
	err       error
	calls     int
	lastDiff  Difficulty
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Questions(_ context.Context, d Difficulty) ([]Question, error) {
	p.calls++
	p.lastDiff = d
	if p.err != nil {
		return nil, p.err
	}
	return p.questions, nil
}

func makeQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			Text:          fmt.Sprintf("Question %d?", i+1),
			CorrectAnswer: fmt.Sprintf("right-%d", i),
			Distractors:   []string{fmt.Sprintf("wrong-a-%d", i), fmt.Sprintf("wrong-b-%d", i), fmt.Sprintf("wrong-c-%d", i)},
			Difficulty:    DifficultyMedium,
			Category:      "General",
		}
	}
	return qs
}

var errNetwork = errors.New("dial tcp: connection refused")

type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time          { return c.t }
func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestController(p Provider, repo *Repo) (*Controller, *testClock) {
	clock := &testClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	seq := 0
	c := NewController(Options{
		Provider: p,
		Fallback: &stubProvider{name: "fallback", questions: makeQuestions(5)},
		Repo:     repo,
		Now:      clock.Now,
		Rand:     rand.New(rand.NewPCG(1, 2)),
		NewID: func() string {
			seq++
			return fmt.Sprintf("session-%d", seq)
		},
	})
	return c, clock
}
