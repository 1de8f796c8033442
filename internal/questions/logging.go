package questions

import (
	"context"
	"log/slog"
	"time"

	"github.com/abhisek/quizmaster/internal/quiz"
)

// LoggingProvider records every fetch with its latency and outcome.
type LoggingProvider struct {
	inner  quiz.Provider
	logger *slog.Logger
}

// WithLogging wraps p so each Questions call is logged.
func WithLogging(p quiz.Provider, logger *slog.Logger) quiz.Provider {
	if logger == nil {
		return p
	}
	return &LoggingProvider{inner: p, logger: logger}
}

func (l *LoggingProvider) Name() string { return l.inner.Name() }

func (l *LoggingProvider) Questions(ctx context.Context, difficulty quiz.Difficulty) ([]quiz.Question, error) {
	start := time.Now()
	qs, err := l.inner.Questions(ctx, difficulty)
	attrs := []any{
		"provider", l.inner.Name(),
		"difficulty", difficulty,
		"latency_ms", time.Since(start).Milliseconds(),
	}
	if err != nil {
		l.logger.Warn("question fetch failed", append(attrs, "error", err)...)
		return nil, err
	}
	l.logger.Info("questions fetched", append(attrs, "count", len(qs))...)
	return qs, nil
}
