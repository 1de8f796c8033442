package setup

import "github.com/abhisek/quizmaster/internal/quiz"

// questionsLoadedMsg carries the outcome of a fetch started by attempt.
type questionsLoadedMsg struct {
	attempt   int
	questions []quiz.Question
	err       error
}
