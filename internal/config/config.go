package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/quizmaster/internal/quiz"
)

// Config is the application configuration, read from YAML and then
// overridden by QUIZMASTER_* environment variables.
type Config struct {
	Quiz     QuizConfig     `yaml:"quiz"`
	Provider ProviderConfig `yaml:"provider"`
	Store    StoreConfig    `yaml:"store"`
	Log      LogConfig      `yaml:"log"`
}

type QuizConfig struct {
	Difficulty string `yaml:"difficulty"`
	Questions  int    `yaml:"questions"`
	TimeLimit  int    `yaml:"time_limit"` // seconds per question
}

type ProviderConfig struct {
	// Name selects the question source: "opentdb", "fallback" or "llm".
	Name     string `yaml:"name"`
	BaseURL  string `yaml:"base_url"`
	Timeout  string `yaml:"timeout"`
	Category int    `yaml:"category"` // OpenTDB category ID, 0 for any
	Topic    string `yaml:"topic"`    // narrows LLM-generated questions
	// Offline enables the built-in question set as a fallback after a
	// failed fetch.
	Offline bool `yaml:"offline"`
}

type StoreConfig struct {
	// Backend is "sqlite", "redis" or "memory".
	Backend string      `yaml:"backend"`
	Path    string      `yaml:"path"`
	Redis   RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
	TTL      string `yaml:"ttl"`
}

type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Quiz: QuizConfig{
			Difficulty: string(quiz.DifficultyMedium),
			Questions:  quiz.DefaultQuestionCount,
			TimeLimit:  quiz.DefaultTimeLimit,
		},
		Provider: ProviderConfig{
			Name:    "opentdb",
			Timeout: "10s",
			Offline: true,
		},
		Store: StoreConfig{
			Backend: "sqlite",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "quizmaster:",
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads YAML config from path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads the configuration in priority order:
// 1. explicit path (must exist)
// 2. QUIZMASTER_CONFIG environment variable (must exist)
// 3. $XDG_CONFIG_HOME/quizmaster/config.yaml (optional)
// Environment overrides are applied and the result is validated.
func Resolve(explicit string) (Config, error) {
	path, required := explicit, true
	if path == "" {
		path = os.Getenv("QUIZMASTER_CONFIG")
	}
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path, required = p, false
	}

	cfg, err := Load(path)
	if err != nil {
		if required || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		cfg = Default()
	}

	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/quizmaster/config.yaml, falling back
// to ~/.config.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "quizmaster", "config.yaml"), nil
}

// ApplyEnv overrides fields from QUIZMASTER_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("QUIZMASTER_DIFFICULTY"); v != "" {
		c.Quiz.Difficulty = v
	}
	if err := envInt("QUIZMASTER_QUESTIONS", &c.Quiz.Questions); err != nil {
		return err
	}
	if err := envInt("QUIZMASTER_TIME_LIMIT", &c.Quiz.TimeLimit); err != nil {
		return err
	}

	if v := os.Getenv("QUIZMASTER_PROVIDER"); v != "" {
		c.Provider.Name = v
	}
	if v := os.Getenv("QUIZMASTER_OPENTDB_URL"); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv("QUIZMASTER_TOPIC"); v != "" {
		c.Provider.Topic = v
	}

	if v := os.Getenv("QUIZMASTER_STORE"); v != "" {
		c.Store.Backend = v
	}
	if v := os.Getenv("QUIZMASTER_DB"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("QUIZMASTER_REDIS_ADDR"); v != "" {
		c.Store.Redis.Addr = v
	}
	if v := os.Getenv("QUIZMASTER_REDIS_PASSWORD"); v != "" {
		c.Store.Redis.Password = v
	}
	if err := envInt("QUIZMASTER_REDIS_DB", &c.Store.Redis.DB); err != nil {
		return err
	}

	if v := os.Getenv("QUIZMASTER_LOG"); v != "" {
		c.Log.Path = v
	}
	if v := os.Getenv("QUIZMASTER_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate checks the configuration for values the application cannot use.
func (c Config) Validate() error {
	if _, err := quiz.ParseDifficulty(c.Quiz.Difficulty); err != nil {
		return fmt.Errorf("quiz.difficulty: %w", err)
	}
	if c.Quiz.Questions < 1 || c.Quiz.Questions > 50 {
		return fmt.Errorf("quiz.questions must be between 1 and 50, got %d", c.Quiz.Questions)
	}
	if c.Quiz.TimeLimit < 5 || c.Quiz.TimeLimit > 300 {
		return fmt.Errorf("quiz.time_limit must be between 5 and 300 seconds, got %d", c.Quiz.TimeLimit)
	}
	switch c.Provider.Name {
	case "opentdb", "fallback", "llm":
	default:
		return fmt.Errorf("unknown question provider %q (supported: opentdb, fallback, llm)", c.Provider.Name)
	}
	switch c.Store.Backend {
	case "sqlite", "redis", "memory":
	default:
		return fmt.Errorf("unknown store backend %q (supported: sqlite, redis, memory)", c.Store.Backend)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}

// Difficulty returns the configured default difficulty.
func (c Config) Difficulty() quiz.Difficulty {
	d, err := quiz.ParseDifficulty(c.Quiz.Difficulty)
	if err != nil {
		return quiz.DifficultyMedium
	}
	return d
}

// ProviderTimeout returns the question fetch timeout.
func (c Config) ProviderTimeout() time.Duration {
	return Duration(c.Provider.Timeout, 10*time.Second)
}

// RedisTTL returns the expiry for Redis keys, zero for none.
func (c Config) RedisTTL() time.Duration {
	return Duration(c.Store.Redis.TTL, 0)
}

// Duration parses a duration string or returns the fallback if empty or
// invalid.
func Duration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

func envInt(name string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %q is not a number", name, v)
	}
	*dst = n
	return nil
}
