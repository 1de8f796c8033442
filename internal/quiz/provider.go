package quiz

import (
	"context"
	"errors"
)

// Provider supplies trivia questions for a difficulty.
type Provider interface {
	// Questions returns an ordered list of questions for the difficulty.
	// Implementations return *ErrProviderUnavailable on connectivity
	// failures and *ErrNoQuestionsForDifficulty when the answer is empty.
	Questions(ctx context.Context, difficulty Difficulty) ([]Question, error)

	// Name identifies the provider in logs and error messages.
	Name() string
}

// FetchQuestions calls p and normalizes its failures into the two
// recoverable error kinds.
func FetchQuestions(ctx context.Context, p Provider, difficulty Difficulty) ([]Question, error) {
	qs, err := p.Questions(ctx, difficulty)
	if err != nil {
		if IsRecoverable(err) {
			return nil, err
		}
		return nil, &ErrProviderUnavailable{Provider: p.Name(), Err: err}
	}

	usable := qs[:0:0]
	for _, q := range qs {
		if q.Text == "" || q.CorrectAnswer == "" {
			continue
		}
		usable = append(usable, q)
	}
	if len(usable) == 0 {
		return nil, &ErrNoQuestionsForDifficulty{Provider: p.Name(), Difficulty: difficulty}
	}
	return usable, nil
}

// IsCanceled reports whether err came from a canceled or timed out context.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
