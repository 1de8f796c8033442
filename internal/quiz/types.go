package quiz

import (
	"fmt"
	"strings"
)

// Difficulty is the difficulty tag requested from a question provider.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the selectable difficulties in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty parses a case-insensitive difficulty tag.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("invalid difficulty %q: must be easy, medium or hard", s)
	}
	return d, nil
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// DisplayName returns the capitalized label, e.g. "Medium".
func (d Difficulty) DisplayName() string {
	if d == "" {
		return "Mixed"
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// Question is a single trivia question as returned by a provider.
// Questions are never mutated after they are fetched.
type Question struct {
	Text          string     `json:"question"`
	CorrectAnswer string     `json:"correct_answer"`
	Distractors   []string   `json:"incorrect_answers"`
	Difficulty    Difficulty `json:"difficulty"`
	Category      string     `json:"category"`
}

// Options returns the correct answer followed by the distractors.
// Sessions shuffle this slice before display.
func (q Question) Options() []string {
	opts := make([]string, 0, len(q.Distractors)+1)
	opts = append(opts, q.CorrectAnswer)
	opts = append(opts, q.Distractors...)
	return opts
}

// IsCorrect reports whether choice matches the correct answer exactly.
func (q Question) IsCorrect(choice string) bool {
	return choice == q.CorrectAnswer
}

// Phase is the state of the quiz controller.
type Phase int

const (
	PhaseSetup      Phase = iota // choosing a difficulty
	PhaseLoading                 // waiting for the provider
	PhaseInProgress              // answering questions
	PhaseCompleted               // results available
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseLoading:
		return "loading"
	case PhaseInProgress:
		return "in-progress"
	case PhaseCompleted:
		return "completed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}
