package questions

import "github.com/abhisek/quizmaster/internal/llm"

// questionSetSchema is the JSON shape requested from the LLM.
var questionSetSchema = &llm.Schema{
	Name:        "trivia-question-set",
	Description: "A set of multiple-choice trivia questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"minLength":   1,
							"description": "The question shown to the player, plain text",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"minLength":   1,
							"description": "The single correct option",
						},
						"incorrect_answers": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    3,
							"maxItems":    3,
							"description": "Exactly three plausible but wrong options",
						},
						"category": map[string]any{
							"type":        "string",
							"description": "Short topic label, e.g. Science or History",
						},
					},
					"required":             []any{"question", "correct_answer", "incorrect_answers", "category"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
