package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/quizmaster/internal/llm"
	"github.com/abhisek/quizmaster/internal/quiz"
)

const systemPrompt = `You write multiple-choice trivia questions for a timed quiz game.
Each question has exactly one correct answer and three wrong answers.
Wrong answers must be plausible, distinct from each other and from the correct answer.
Questions must be factual, unambiguous and answerable in under thirty seconds.
Use plain text without HTML or markdown.`

var difficultyGuidance = map[quiz.Difficulty]string{
	quiz.DifficultyEasy:   "common knowledge most adults know",
	quiz.DifficultyMedium: "requires some general education or interest in the topic",
	quiz.DifficultyHard:   "specialist knowledge that challenges trivia enthusiasts",
}

// LLMSource generates question sets with a language model.
type LLMSource struct {
	provider llm.Provider
	amount   int
	topic    string
}

// NewLLMSource returns a provider asking p for amount questions. topic may
// be empty for general knowledge.
func NewLLMSource(p llm.Provider, amount int, topic string) *LLMSource {
	if amount <= 0 {
		amount = quiz.DefaultQuestionCount
	}
	return &LLMSource{provider: p, amount: amount, topic: topic}
}

func (s *LLMSource) Name() string { return "llm:" + s.provider.ModelID() }

type questionSetOutput struct {
	Questions []struct {
		Question         string   `json:"question"`
		CorrectAnswer    string   `json:"correct_answer"`
		IncorrectAnswers []string `json:"incorrect_answers"`
		Category         string   `json:"category"`
	} `json:"questions"`
}

func (s *LLMSource) Questions(ctx context.Context, difficulty quiz.Difficulty) ([]quiz.Question, error) {
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      s.prompt(difficulty),
		Schema:      questionSetSchema,
		MaxTokens:   300 * s.amount,
		Temperature: 0.9,
		Purpose:     "question-set",
	})
	if err != nil {
		return nil, &quiz.ErrProviderUnavailable{Provider: s.Name(), Err: err}
	}

	var out questionSetOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &quiz.ErrProviderUnavailable{Provider: s.Name(), Err: fmt.Errorf("parse question set: %w", err)}
	}

	qs := make([]quiz.Question, 0, len(out.Questions))
	seen := make(map[string]bool)
	for _, raw := range out.Questions {
		q := quiz.Question{
			Text:          strings.TrimSpace(raw.Question),
			CorrectAnswer: strings.TrimSpace(raw.CorrectAnswer),
			Difficulty:    difficulty,
			Category:      strings.TrimSpace(raw.Category),
		}
		for _, d := range raw.IncorrectAnswers {
			q.Distractors = append(q.Distractors, strings.TrimSpace(d))
		}
		key := strings.ToLower(q.Text)
		if seen[key] || !wellFormed(q) {
			continue
		}
		seen[key] = true
		qs = append(qs, q)
		if len(qs) == s.amount {
			break
		}
	}
	if len(qs) == 0 {
		return nil, &quiz.ErrNoQuestionsForDifficulty{Provider: s.Name(), Difficulty: difficulty}
	}
	return qs, nil
}

func (s *LLMSource) prompt(difficulty quiz.Difficulty) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write %d %s trivia questions", s.amount, difficulty)
	if guide, ok := difficultyGuidance[difficulty]; ok {
		fmt.Fprintf(&b, " (%s)", guide)
	}
	if s.topic != "" {
		fmt.Fprintf(&b, " about %s", s.topic)
	} else {
		b.WriteString(" spread across different categories")
	}
	b.WriteString(". Do not repeat a question.")
	return b.String()
}

// wellFormed rejects questions whose options are blank or repeat.
func wellFormed(q quiz.Question) bool {
	if q.Text == "" || q.CorrectAnswer == "" || len(q.Distractors) == 0 {
		return false
	}
	opts := map[string]bool{strings.ToLower(q.CorrectAnswer): true}
	for _, d := range q.Distractors {
		k := strings.ToLower(d)
		if d == "" || opts[k] {
			return false
		}
		opts[k] = true
	}
	return true
}
