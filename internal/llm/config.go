package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds LLM provider configuration.
type Config struct {
	// Provider is "anthropic", "openai", "gemini", "openrouter" or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig

	// Timeout bounds a single generation request.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-001"},
		Timeout:    45 * time.Second,
	}
}

// envOverride sets *dst to the value of name when it is non-empty.
func envOverride(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

// ConfigFromEnv builds a Config from QUIZMASTER_* environment variables on
// top of the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	envOverride(&cfg.Provider, "QUIZMASTER_LLM_PROVIDER")

	envOverride(&cfg.Anthropic.APIKey, "QUIZMASTER_ANTHROPIC_API_KEY")
	envOverride(&cfg.Anthropic.Model, "QUIZMASTER_ANTHROPIC_MODEL")

	envOverride(&cfg.OpenAI.APIKey, "QUIZMASTER_OPENAI_API_KEY")
	envOverride(&cfg.OpenAI.Model, "QUIZMASTER_OPENAI_MODEL")
	envOverride(&cfg.OpenAI.BaseURL, "QUIZMASTER_OPENAI_BASE_URL")

	envOverride(&cfg.Gemini.APIKey, "QUIZMASTER_GEMINI_API_KEY")
	envOverride(&cfg.Gemini.Model, "QUIZMASTER_GEMINI_MODEL")

	envOverride(&cfg.OpenRouter.APIKey, "QUIZMASTER_OPENROUTER_API_KEY")
	envOverride(&cfg.OpenRouter.Model, "QUIZMASTER_OPENROUTER_MODEL")

	if v := os.Getenv("QUIZMASTER_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	return cfg
}

// DiscoverConfig probes the vendors' standard API key variables in order
// (Anthropic, OpenAI, Gemini, OpenRouter) and configures the first one
// found. It returns false if none are set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	probes := []struct {
		env      string
		provider string
		key      *string
	}{
		{"ANTHROPIC_API_KEY", "anthropic", &cfg.Anthropic.APIKey},
		{"OPENAI_API_KEY", "openai", &cfg.OpenAI.APIKey},
		{"GEMINI_API_KEY", "gemini", &cfg.Gemini.APIKey},
		{"OPENROUTER_API_KEY", "openrouter", &cfg.OpenRouter.APIKey},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg.Provider = p.provider
			*p.key = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Resolve returns the env-configured provider when its key is set, and
// otherwise falls back to DiscoverConfig.
func Resolve() (Config, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		return cfg, nil
	}
	if found, ok := DiscoverConfig(); ok {
		found.Timeout = cfg.Timeout
		return found, nil
	}
	return cfg, cfg.Validate()
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	var key, env string
	switch c.Provider {
	case "anthropic":
		key, env = c.Anthropic.APIKey, "QUIZMASTER_ANTHROPIC_API_KEY"
	case "openai":
		key, env = c.OpenAI.APIKey, "QUIZMASTER_OPENAI_API_KEY"
	case "gemini":
		key, env = c.Gemini.APIKey, "QUIZMASTER_GEMINI_API_KEY"
	case "openrouter":
		key, env = c.OpenRouter.APIKey, "QUIZMASTER_OPENROUTER_API_KEY"
	case "mock":
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", env, c.Provider)
	}
	return nil
}
