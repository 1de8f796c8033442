package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func triviaSchema() *Schema {
	return &Schema{
		Name:        "test-trivia",
		Description: "A trivia question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question":   map[string]any{"type": "string", "minLength": 1},
				"answer":     map[string]any{"type": "string"},
				"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
				"wrong": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 3,
					"maxItems": 3,
				},
			},
			"required": []any{"question", "answer", "wrong"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"question":"Largest planet?","answer":"Jupiter","wrong":["Mars","Venus","Earth"],"difficulty":"easy"}`, false},
		{"optional omitted", `{"question":"Q?","answer":"A","wrong":["b","c","d"]}`, false},
		{"missing required", `{"question":"Q?","wrong":["b","c","d"]}`, true},
		{"wrong type", `{"question":"Q?","answer":4,"wrong":["b","c","d"]}`, true},
		{"bad enum", `{"question":"Q?","answer":"A","wrong":["b","c","d"],"difficulty":"expert"}`, true},
		{"too few items", `{"question":"Q?","answer":"A","wrong":["b"]}`, true},
		{"empty question", `{"question":"","answer":"A","wrong":["b","c","d"]}`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(triviaSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invErr *ErrInvalidResponse
				if !errors.As(err, &invErr) {
					t.Fatalf("expected ErrInvalidResponse, got: %T", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}
