package llm

import (
	"context"
	"encoding/json"
)

// Provider generates structured JSON from a prompt.
type Provider interface {
	// Generate sends req to the model. When req.Schema is set the content
	// is validated against it before being returned.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request is a single-turn generation request.
type Request struct {
	System string
	Prompt string

	// Schema, when set, asks the provider for JSON matching the schema
	// using its native structured output mechanism.
	Schema *Schema

	MaxTokens   int
	Temperature float64

	// Purpose labels the request in logs, e.g. "question-set".
	Purpose string
}

// Schema is a named JSON Schema.
type Schema struct {
	// Name is used as the schema name for OpenAI and as the cache key for
	// compiled schemas. Kebab-case.
	Name        string
	Description string
	Definition  map[string]any
}

// Response holds the model's output.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string

	// Truncated is set when generation stopped at MaxTokens.
	Truncated bool
}

// Usage is the token consumption of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total returns input plus output tokens.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}

// resolveModel maps a friendly model name to a provider model ID. Unknown
// names are passed through so full IDs work.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
