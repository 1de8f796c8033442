package questions

import (
	"context"

	"github.com/abhisek/quizmaster/internal/quiz"
)

// minFallbackQuestions is the smallest filtered set worth playing. Below it
// the whole offline set is used regardless of difficulty.
const minFallbackQuestions = 5

var offlineQuestions = []quiz.Question{
	{Category: "General Knowledge", Difficulty: quiz.DifficultyEasy, Text: "What is the capital of France?", CorrectAnswer: "Paris", Distractors: []string{"London", "Berlin", "Madrid"}},
	{Category: "Science", Difficulty: quiz.DifficultyMedium, Text: "What is the chemical symbol for gold?", CorrectAnswer: "Au", Distractors: []string{"Go", "Gd", "Ag"}},
	{Category: "History", Difficulty: quiz.DifficultyHard, Text: "In which year did World War II end?", CorrectAnswer: "1945", Distractors: []string{"1944", "1946", "1943"}},
	{Category: "Geography", Difficulty: quiz.DifficultyEasy, Text: "Which continent is the largest by area?", CorrectAnswer: "Asia", Distractors: []string{"Africa", "North America", "Europe"}},
	{Category: "Sports", Difficulty: quiz.DifficultyMedium, Text: "How many players are on a basketball team on the court at one time?", CorrectAnswer: "5", Distractors: []string{"6", "7", "4"}},
	{Category: "Literature", Difficulty: quiz.DifficultyHard, Text: "Who wrote the novel '1984'?", CorrectAnswer: "George Orwell", Distractors: []string{"Aldous Huxley", "Ray Bradbury", "H.G. Wells"}},
	{Category: "Science", Difficulty: quiz.DifficultyEasy, Text: "What planet is known as the Red Planet?", CorrectAnswer: "Mars", Distractors: []string{"Venus", "Jupiter", "Saturn"}},
	{Category: "Entertainment", Difficulty: quiz.DifficultyMedium, Text: "Which movie won the Academy Award for Best Picture in 2020?", CorrectAnswer: "Parasite", Distractors: []string{"1917", "Joker", "Once Upon a Time in Hollywood"}},
	{Category: "Mathematics", Difficulty: quiz.DifficultyHard, Text: "What is the derivative of x²?", CorrectAnswer: "2x", Distractors: []string{"x²", "x", "2x²"}},
	{Category: "General Knowledge", Difficulty: quiz.DifficultyEasy, Text: "How many days are there in a leap year?", CorrectAnswer: "366", Distractors: []string{"365", "364", "367"}},
}

// Fallback serves a fixed offline question set.
type Fallback struct {
	questions []quiz.Question
	limit     int
}

// NewFallback returns the built-in offline provider, capped at limit
// questions (0 for no cap).
func NewFallback(limit int) *Fallback {
	return &Fallback{questions: offlineQuestions, limit: limit}
}

// NewStatic serves an arbitrary fixed set with the same filtering rules.
func NewStatic(qs []quiz.Question) *Fallback {
	return &Fallback{questions: qs}
}

func (f *Fallback) Name() string { return "offline" }

// Questions returns the questions tagged with difficulty, or the whole set
// when fewer than five match.
func (f *Fallback) Questions(_ context.Context, difficulty quiz.Difficulty) ([]quiz.Question, error) {
	var matched []quiz.Question
	for _, q := range f.questions {
		if q.Difficulty == difficulty {
			matched = append(matched, q)
		}
	}
	if len(matched) < minFallbackQuestions {
		matched = append([]quiz.Question(nil), f.questions...)
	}
	if f.limit > 0 && len(matched) > f.limit {
		matched = matched[:f.limit]
	}
	if len(matched) == 0 {
		return nil, &quiz.ErrNoQuestionsForDifficulty{Provider: f.Name(), Difficulty: difficulty}
	}
	return matched, nil
}
