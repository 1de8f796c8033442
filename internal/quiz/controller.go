package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
)

// DefaultQuestionCount is the number of questions requested per session.
const DefaultQuestionCount = 10

const persistTimeout = 3 * time.Second

// Options configures a Controller.
type Options struct {
	// Provider is the primary question source. Required.
	Provider Provider

	// Fallback serves the offline question set. Optional.
	Fallback Provider

	// Repo persists sessions and the leaderboard. Optional; without it the
	// leaderboard only lives for the life of the controller.
	Repo *Repo

	Logger    *slog.Logger
	TimeLimit int

	// Difficulty preselected in setup. Defaults to medium.
	Difficulty Difficulty

	// Now, Rand and NewID are injectable for tests.
	Now   func() time.Time
	Rand  *rand.Rand
	NewID func() string
}

// Controller drives a quiz through setup, loading, answering and results.
// It is not safe for concurrent use; the TUI calls it from its update loop.
type Controller struct {
	primary   Provider
	fallback  Provider
	repo      *Repo
	logger    *slog.Logger
	timeLimit int
	now       func() time.Time
	rng       *rand.Rand
	newID     func() string

	phase      Phase
	difficulty Difficulty
	offline    bool
	session    *Session
	result     *Result
	history    []HistoryEntry
	lastErr    error
	notice     error
}

// NewController returns a controller in the setup phase.
func NewController(opts Options) *Controller {
	c := &Controller{
		primary:    opts.Provider,
		fallback:   opts.Fallback,
		repo:       opts.Repo,
		logger:     opts.Logger,
		timeLimit:  opts.TimeLimit,
		now:        opts.Now,
		rng:        opts.Rand,
		newID:      opts.NewID,
		phase:      PhaseSetup,
		difficulty: DifficultyMedium,
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	if opts.Difficulty.Valid() {
		c.difficulty = opts.Difficulty
	}
	if c.timeLimit <= 0 {
		c.timeLimit = DefaultTimeLimit
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if c.newID == nil {
		c.newID = uuid.NewString
	}
	return c
}

func (c *Controller) Phase() Phase            { return c.phase }
func (c *Controller) Difficulty() Difficulty  { return c.difficulty }
func (c *Controller) Session() *Session       { return c.session }
func (c *Controller) Result() *Result         { return c.result }
func (c *Controller) History() []HistoryEntry { return slices.Clone(c.history) }
func (c *Controller) TimeLimit() int          { return c.timeLimit }
func (c *Controller) HasFallback() bool       { return c.fallback != nil }
func (c *Controller) Offline() bool           { return c.offline }

// LastError returns the failure of the most recent start attempt, or nil.
func (c *Controller) LastError() error { return c.lastErr }

// Notice returns a non-fatal problem found while restoring persisted state,
// such as a discarded corrupt session.
func (c *Controller) Notice() error { return c.notice }

// ProviderFor returns the provider used for a start attempt. The TUI uses it
// to fetch questions off the update loop between Begin and Loaded.
func (c *Controller) ProviderFor(offline bool) Provider {
	if offline && c.fallback != nil {
		return c.fallback
	}
	return c.primary
}

// Begin moves from setup to loading for difficulty. offline selects the
// fallback provider.
func (c *Controller) Begin(d Difficulty, offline bool) error {
	if c.phase != PhaseSetup {
		return &ErrWrongPhase{Op: "start", Phase: c.phase}
	}
	if !d.Valid() {
		return fmt.Errorf("starting quiz: invalid difficulty %q", d)
	}
	if offline && c.fallback == nil {
		return errors.New("starting quiz: no offline question set configured")
	}
	c.phase = PhaseLoading
	c.difficulty = d
	c.offline = offline
	c.lastErr = nil
	c.notice = nil
	c.result = nil
	return nil
}

// Loaded completes a start attempt begun with Begin. On failure the
// controller returns to setup with the difficulty remembered and err is
// returned for display.
func (c *Controller) Loaded(questions []Question, err error) error {
	if c.phase != PhaseLoading {
		return &ErrWrongPhase{Op: "load questions", Phase: c.phase}
	}
	if err == nil && len(questions) == 0 {
		err = &ErrNoQuestionsForDifficulty{Provider: c.ProviderFor(c.offline).Name(), Difficulty: c.difficulty}
	}
	if err != nil {
		c.phase = PhaseSetup
		c.lastErr = err
		c.logger.Warn("quiz start failed",
			"difficulty", c.difficulty,
			"offline", c.offline,
			"error", err)
		return err
	}

	s := NewSession(c.newID(), c.difficulty, questions, c.timeLimit, c.rng, c.now())
	s.Offline = c.offline
	c.session = s
	c.phase = PhaseInProgress
	c.logger.Info("quiz started",
		"session_id", s.ID,
		"difficulty", s.Difficulty,
		"questions", s.Total(),
		"offline", s.Offline)
	c.persistSession()
	return nil
}

// Cancel abandons a pending start attempt. A Loaded call that arrives
// afterwards returns *ErrWrongPhase.
func (c *Controller) Cancel() {
	if c.phase == PhaseLoading {
		c.phase = PhaseSetup
	}
}

// StartSession fetches questions from the primary provider and starts a
// session. Provider failures are returned and leave the controller in setup.
func (c *Controller) StartSession(ctx context.Context, d Difficulty) error {
	return c.start(ctx, d, false)
}

// Retry repeats the last failed start with the same difficulty.
func (c *Controller) Retry(ctx context.Context) error {
	if c.phase != PhaseSetup {
		return &ErrWrongPhase{Op: "retry", Phase: c.phase}
	}
	if c.lastErr == nil {
		return ErrNothingToRetry
	}
	return c.start(ctx, c.difficulty, false)
}

// UseFallback starts a session from the offline question set with the
// remembered difficulty.
func (c *Controller) UseFallback(ctx context.Context) error {
	return c.start(ctx, c.difficulty, true)
}

func (c *Controller) start(ctx context.Context, d Difficulty, offline bool) error {
	if err := c.Begin(d, offline); err != nil {
		return err
	}
	qs, err := FetchQuestions(ctx, c.ProviderFor(offline), d)
	return c.Loaded(qs, err)
}

// SelectAnswer records choice for the current question. It never advances.
func (c *Controller) SelectAnswer(choice string) error {
	if c.phase != PhaseInProgress {
		return &ErrWrongPhase{Op: "select answer", Phase: c.phase}
	}
	if c.session.Timer.Expired() {
		return ErrTimeExpired
	}
	if !slices.Contains(c.session.CurrentChoices(), choice) {
		return ErrUnknownChoice
	}
	c.session.Answers[c.session.Current] = choice
	c.persistSession()
	return nil
}

// SelectIndex records the option at position i of the current question.
func (c *Controller) SelectIndex(i int) error {
	if c.phase != PhaseInProgress {
		return &ErrWrongPhase{Op: "select answer", Phase: c.phase}
	}
	choices := c.session.CurrentChoices()
	if i < 0 || i >= len(choices) {
		return ErrUnknownChoice
	}
	return c.SelectAnswer(choices[i])
}

// Advance moves to the next question with a fresh timer, or completes the
// session after the last question.
func (c *Controller) Advance() error {
	if c.phase != PhaseInProgress {
		return &ErrWrongPhase{Op: "advance", Phase: c.phase}
	}
	s := c.session
	if s.Current+1 < s.Total() {
		s.Current++
		s.Timer.Reset()
		c.persistSession()
		return nil
	}
	c.complete()
	return nil
}

// OnTimerExpire records the current question as timed out and advances.
// A question left unanswered stays absent from the answer record.
func (c *Controller) OnTimerExpire() error {
	if c.phase != PhaseInProgress {
		return &ErrWrongPhase{Op: "expire timer", Phase: c.phase}
	}
	s := c.session
	if _, answered := s.Selected(); !answered {
		s.TimedOut[s.Current] = true
		c.logger.Debug("question timed out", "session_id", s.ID, "index", s.Current)
	}
	return c.Advance()
}

// Tick consumes one second of the current question's timer. Ticks outside
// the in-progress phase are ignored. expired is true when this tick ran the
// timer out and the controller advanced.
func (c *Controller) Tick() (expired bool, err error) {
	if c.phase != PhaseInProgress {
		return false, nil
	}
	if !c.session.Timer.Tick() {
		c.persistSession()
		return false, nil
	}
	return true, c.OnTimerExpire()
}

// Submit completes the session immediately. Unanswered questions count as
// not correct.
func (c *Controller) Submit() error {
	if c.phase != PhaseInProgress {
		return &ErrWrongPhase{Op: "submit", Phase: c.phase}
	}
	c.complete()
	return nil
}

func (c *Controller) complete() {
	s := c.session
	s.EndedAt = c.now()
	res := BuildResult(s)
	entry := res.HistoryEntry()

	c.history = RecordHistory(entry, c.history)
	res.HighScore = ContainsEntry(c.history, entry.ID)
	if c.repo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		history, err := c.repo.AppendHistory(ctx, entry)
		switch {
		case history != nil:
			c.history = history
			if err != nil {
				c.logger.Warn("discarded corrupt high scores", "error", err)
			}
		case err != nil:
			c.logger.Error("saving high scores failed", "error", err)
		}
		res.HighScore = ContainsEntry(c.history, entry.ID)
		if err := c.repo.SaveResult(ctx, res); err != nil {
			c.logger.Error("saving result failed", "error", err)
		}
		if err := c.repo.ClearSession(ctx); err != nil {
			c.logger.Error("clearing session failed", "error", err)
		}
	}

	c.result = res
	c.phase = PhaseCompleted
	c.logger.Info("quiz completed",
		"session_id", s.ID,
		"score", res.Score,
		"total", res.TotalQuestions,
		"duration_s", res.DurationSeconds,
		"high_score", res.HighScore)
}

// Reset returns to setup from any phase. The leaderboard is kept.
func (c *Controller) Reset() {
	if c.session != nil && c.phase == PhaseInProgress {
		c.logger.Info("quiz abandoned", "session_id", c.session.ID, "index", c.session.Current)
	}
	c.phase = PhaseSetup
	c.session = nil
	c.result = nil
	c.lastErr = nil
	c.offline = false
	if c.repo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := c.repo.ClearSession(ctx); err != nil {
			c.logger.Error("clearing session failed", "error", err)
		}
	}
}

// ResetAll returns to setup and erases every persisted blob, including the
// leaderboard.
func (c *Controller) ResetAll(ctx context.Context) error {
	c.Reset()
	c.history = nil
	c.notice = nil
	if c.repo == nil {
		return nil
	}
	return c.repo.Clear(ctx)
}

// Restore reloads the leaderboard and any in-progress session. It reports
// whether a session was resumed. Corrupt blobs are discarded, recorded as the
// controller's notice, and leave it in setup; only storage failures are
// returned.
func (c *Controller) Restore(ctx context.Context) (resumed bool, err error) {
	if c.repo == nil {
		return false, nil
	}
	if c.phase != PhaseSetup {
		return false, &ErrWrongPhase{Op: "restore", Phase: c.phase}
	}

	history, err := c.repo.History(ctx)
	if err != nil {
		if !c.discardCorrupt(ctx, err) {
			return false, err
		}
		history = nil
	}
	c.history = history

	s, err := c.repo.LoadSession(ctx)
	if err != nil {
		if !c.discardCorrupt(ctx, err) {
			return false, err
		}
		return false, nil
	}
	if s == nil {
		return false, nil
	}

	c.session = s
	c.difficulty = s.Difficulty
	c.offline = s.Offline
	c.phase = PhaseInProgress
	c.logger.Info("quiz resumed", "session_id", s.ID, "index", s.Current, "remaining_s", s.Timer.Remaining)

	if s.Timer.Expired() {
		if err := c.OnTimerExpire(); err != nil {
			return true, err
		}
	}
	return true, nil
}

func (c *Controller) discardCorrupt(ctx context.Context, err error) bool {
	var corrupt *ErrPersistenceCorrupt
	if !errors.As(err, &corrupt) {
		return false
	}
	c.logger.Warn("discarding corrupt stored data", "key", corrupt.Key, "error", corrupt.Err)
	c.notice = err
	if derr := c.repo.Discard(ctx, corrupt.Key); derr != nil {
		c.logger.Error("discarding corrupt data failed", "key", corrupt.Key, "error", derr)
	}
	return true
}

func (c *Controller) persistSession() {
	if c.repo == nil || c.session == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := c.repo.SaveSession(ctx, c.session); err != nil {
		c.logger.Error("saving session failed", "session_id", c.session.ID, "error", err)
	}
}
