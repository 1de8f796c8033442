package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownChoice is returned when a selected answer is not one of the
	// current question's options.
	ErrUnknownChoice = errors.New("choice is not an option for the current question")

	// ErrTimeExpired is returned when an answer is selected after the
	// question timer reached zero.
	ErrTimeExpired = errors.New("time is up for the current question")

	// ErrNothingToRetry is returned by Retry when no previous start failed.
	ErrNothingToRetry = errors.New("no failed quiz start to retry")
)

// ErrProviderUnavailable indicates the question provider could not be reached
// or returned an unusable response. The caller may retry or use the fallback.
type ErrProviderUnavailable struct {
	Provider string
	Err      error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("question provider %s unavailable: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("question provider %s unavailable", e.Provider)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrNoQuestionsForDifficulty indicates the provider answered but had no
// questions for the requested difficulty.
type ErrNoQuestionsForDifficulty struct {
	Provider   string
	Difficulty Difficulty
}

func (e *ErrNoQuestionsForDifficulty) Error() string {
	return fmt.Sprintf("no %s questions available from %s", e.Difficulty, e.Provider)
}

// ErrPersistenceCorrupt indicates a stored blob could not be decoded.
// The blob is discarded and the controller returns to setup.
type ErrPersistenceCorrupt struct {
	Key string
	Err error
}

func (e *ErrPersistenceCorrupt) Error() string {
	return fmt.Sprintf("stored %s is corrupt: %v", e.Key, e.Err)
}

func (e *ErrPersistenceCorrupt) Unwrap() error { return e.Err }

// ErrWrongPhase is returned when an operation is not valid in the
// controller's current phase.
type ErrWrongPhase struct {
	Op    string
	Phase Phase
}

func (e *ErrWrongPhase) Error() string {
	return fmt.Sprintf("%s is not allowed while %s", e.Op, e.Phase)
}

// IsRecoverable reports whether err is a start failure the user can recover
// from by retrying or switching to offline questions.
func IsRecoverable(err error) bool {
	var unavail *ErrProviderUnavailable
	var empty *ErrNoQuestionsForDifficulty
	return errors.As(err, &unavail) || errors.As(err, &empty)
}
