package questions

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/abhisek/quizmaster/internal/llm"
	"github.com/abhisek/quizmaster/internal/quiz"
)

// Provider names accepted by New.
const (
	SourceOpenTDB  = "opentdb"
	SourceFallback = "fallback"
	SourceLLM      = "llm"
)

// Options configures New.
type Options struct {
	Source   string
	BaseURL  string
	Timeout  time.Duration
	Amount   int
	Category int

	// Topic narrows LLM-generated questions, e.g. "astronomy".
	Topic string

	// LLM is used by the llm source. When nil it is built from the
	// environment with llm.Resolve.
	LLM llm.Provider

	Logger *slog.Logger
}

// New builds the primary question provider named by opts.Source, wrapped
// with logging.
func New(ctx context.Context, opts Options) (quiz.Provider, error) {
	var p quiz.Provider
	switch opts.Source {
	case "", SourceOpenTDB:
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		p = NewOpenTDB(
			WithBaseURL(opts.BaseURL),
			WithHTTPClient(&http.Client{Timeout: timeout}),
			WithAmount(opts.Amount),
			WithCategory(opts.Category),
		)
	case SourceFallback:
		p = NewFallback(opts.Amount)
	case SourceLLM:
		lp := opts.LLM
		if lp == nil {
			cfg, err := llm.Resolve()
			if err != nil {
				return nil, fmt.Errorf("llm question source: %w", err)
			}
			if lp, err = llm.NewProvider(ctx, cfg, opts.Logger); err != nil {
				return nil, err
			}
		}
		p = NewLLMSource(lp, opts.Amount, opts.Topic)
	default:
		return nil, fmt.Errorf("unknown question source %q (supported: opentdb, fallback, llm)", opts.Source)
	}
	return WithLogging(p, opts.Logger), nil
}

// NewOffline returns the built-in offline set wrapped with logging.
func NewOffline(amount int, logger *slog.Logger) quiz.Provider {
	return WithLogging(NewFallback(amount), logger)
}
