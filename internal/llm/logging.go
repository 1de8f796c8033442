package llm

import (
	"context"
	"log/slog"
	"time"
)

// LoggingProvider records latency, token usage and estimated cost of every
// request.
type LoggingProvider struct {
	inner  Provider
	vendor string
	logger *slog.Logger
}

// WithLogging wraps p so each Generate call is logged to logger.
func WithLogging(p Provider, vendor string, logger *slog.Logger) Provider {
	if logger == nil {
		return p
	}
	return &LoggingProvider{inner: p, vendor: vendor, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	attrs := []any{
		"vendor", l.vendor,
		"model", l.inner.ModelID(),
		"purpose", req.Purpose,
		"latency_ms", time.Since(start).Milliseconds(),
	}
	if err != nil {
		l.logger.Warn("llm request failed", append(attrs, "error", err)...)
		return nil, err
	}

	attrs = append(attrs,
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
		"truncated", resp.Truncated)
	if cost := LookupCost(l.inner.ModelID()); cost != nil {
		attrs = append(attrs, "cost_usd", cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens))
	}
	l.logger.Info("llm request", attrs...)
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
