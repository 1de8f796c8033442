package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmaster/internal/config"
	"github.com/abhisek/quizmaster/internal/logging"
	"github.com/abhisek/quizmaster/internal/questions"
	"github.com/abhisek/quizmaster/internal/quiz"
	"github.com/abhisek/quizmaster/internal/store"
)

// deps are the long-lived dependencies shared by the commands.
type deps struct {
	cfg     config.Config
	logger  *slog.Logger
	kv      store.KV
	closers []io.Closer
}

// loadConfig resolves the config file and environment, then applies the
// flags that were set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Resolve(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Store.Path, _ = flags.GetString("db")
	}
	if flags.Changed("store") {
		cfg.Store.Backend, _ = flags.GetString("store")
	}
	if flags.Changed("log") {
		cfg.Log.Path, _ = flags.GetString("log")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("provider") {
		cfg.Provider.Name, _ = flags.GetString("provider")
	}
	if flags.Changed("time-limit") {
		cfg.Quiz.TimeLimit, _ = flags.GetInt("time-limit")
	}
	if flags.Changed("questions") {
		cfg.Quiz.Questions, _ = flags.GetInt("questions")
	}
	if f := flags.Lookup("difficulty"); f != nil && f.Changed {
		cfg.Quiz.Difficulty = f.Value.String()
	}
	return cfg, cfg.Validate()
}

// openDeps loads the configuration, opens the log file and, when withStore
// is set, the key-value store.
func openDeps(cmd *cobra.Command, withStore bool) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	d := &deps{cfg: cfg}

	logPath := cfg.Log.Path
	if logPath == "" {
		if logPath, err = logging.DefaultPath(); err != nil {
			return nil, err
		}
	}
	logger, closer, err := logging.Open(logPath, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	d.logger = logger
	d.closers = append(d.closers, closer)

	if withStore {
		kv, err := store.OpenKV(cmd.Context(), store.Options{
			Backend: cfg.Store.Backend,
			Path:    cfg.Store.Path,
			Redis: store.RedisOptions{
				Addr:     cfg.Store.Redis.Addr,
				Password: cfg.Store.Redis.Password,
				DB:       cfg.Store.Redis.DB,
				Prefix:   cfg.Store.Redis.Prefix,
				TTL:      cfg.RedisTTL(),
			},
		})
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("open store: %w", err)
		}
		d.kv = kv
		d.closers = append(d.closers, kv)
	}
	return d, nil
}

// Close releases everything opened by openDeps, most recent first.
func (d *deps) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		errs = append(errs, d.closers[i].Close())
	}
	return errors.Join(errs...)
}

// repo returns the quiz repository over the opened store.
func (d *deps) repo() *quiz.Repo {
	if d.kv == nil {
		return nil
	}
	return quiz.NewRepo(d.kv)
}

// provider builds the configured primary question source.
func (d *deps) provider(ctx context.Context) (quiz.Provider, error) {
	return questions.New(ctx, questions.Options{
		Source:   d.cfg.Provider.Name,
		BaseURL:  d.cfg.Provider.BaseURL,
		Timeout:  d.cfg.ProviderTimeout(),
		Amount:   d.cfg.Quiz.Questions,
		Category: d.cfg.Provider.Category,
		Topic:    d.cfg.Provider.Topic,
		Logger:   d.logger,
	})
}

// fallback returns the offline set, or nil when it is disabled or already
// the primary source.
func (d *deps) fallback() quiz.Provider {
	if !d.cfg.Provider.Offline || d.cfg.Provider.Name == questions.SourceFallback {
		return nil
	}
	return questions.NewOffline(d.cfg.Quiz.Questions, d.logger)
}

// controller wires a quiz controller from the configuration.
func (d *deps) controller(ctx context.Context) (*quiz.Controller, error) {
	primary, err := d.provider(ctx)
	if err != nil {
		return nil, err
	}
	return quiz.NewController(quiz.Options{
		Provider:   primary,
		Fallback:   d.fallback(),
		Repo:       d.repo(),
		Logger:     d.logger,
		TimeLimit:  d.cfg.Quiz.TimeLimit,
		Difficulty: d.cfg.Difficulty(),
	}), nil
}
