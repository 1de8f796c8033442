package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizmaster/internal/quiz"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
quiz:
  difficulty: hard
  time_limit: 20
store:
  backend: redis
  redis:
    addr: redis.internal:6380
    ttl: 24h
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, quiz.DifficultyHard, cfg.Difficulty())
	assert.Equal(t, 20, cfg.Quiz.TimeLimit)
	assert.Equal(t, quiz.DefaultQuestionCount, cfg.Quiz.Questions)
	assert.Equal(t, "redis.internal:6380", cfg.Store.Redis.Addr)
	assert.Equal(t, "quizmaster:", cfg.Store.Redis.Prefix)
	assert.Equal(t, 24*time.Hour, cfg.RedisTTL())
	assert.Equal(t, "opentdb", cfg.Provider.Name)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "quiz: [unterminated"))
	assert.Error(t, err)
}

func TestResolve_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("QUIZMASTER_CONFIG", "")

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestResolve_MissingExplicitFileFails(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestResolve_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "quiz:\n  difficulty: easy\n")
	t.Setenv("QUIZMASTER_CONFIG", path)
	t.Setenv("QUIZMASTER_DIFFICULTY", "hard")
	t.Setenv("QUIZMASTER_QUESTIONS", "5")
	t.Setenv("QUIZMASTER_STORE", "memory")
	t.Setenv("QUIZMASTER_LOG_LEVEL", "debug")
	t.Setenv("QUIZMASTER_TOPIC", "astronomy")

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "astronomy", cfg.Provider.Topic)
	assert.Equal(t, quiz.DifficultyHard, cfg.Difficulty())
	assert.Equal(t, 5, cfg.Quiz.Questions)
	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestResolve_BadEnvNumber(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("QUIZMASTER_CONFIG", "")
	t.Setenv("QUIZMASTER_TIME_LIMIT", "thirty")

	_, err := Resolve("")
	assert.ErrorContains(t, err, "QUIZMASTER_TIME_LIMIT")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad difficulty", func(c *Config) { c.Quiz.Difficulty = "legendary" }},
		{"zero questions", func(c *Config) { c.Quiz.Questions = 0 }},
		{"too many questions", func(c *Config) { c.Quiz.Questions = 51 }},
		{"short time limit", func(c *Config) { c.Quiz.TimeLimit = 1 }},
		{"unknown provider", func(c *Config) { c.Provider.Name = "jeopardy" }},
		{"unknown backend", func(c *Config) { c.Store.Backend = "mongo" }},
		{"unknown log level", func(c *Config) { c.Log.Level = "trace" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, Duration("", 5*time.Second))
	assert.Equal(t, 5*time.Second, Duration("soon", 5*time.Second))
	assert.Equal(t, 90*time.Second, Duration("1m30s", 5*time.Second))
}
