package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmaster/internal/app"
	"github.com/abhisek/quizmaster/internal/quiz"
	"github.com/abhisek/quizmaster/internal/screens/setup"
)

// runApp opens the store, builds the controller, and launches the TUI.
// A non-empty start skips difficulty selection.
func runApp(cmd *cobra.Command, start quiz.Difficulty, offline bool) error {
	ctx := cmd.Context()
	d, err := openDeps(cmd, true)
	if err != nil {
		return err
	}
	defer d.Close()

	ctrl, err := d.controller(ctx)
	if err != nil {
		return fmt.Errorf("question provider: %w", err)
	}
	if offline && !ctrl.HasFallback() {
		return fmt.Errorf("offline questions are disabled in the configuration")
	}

	d.logger.Info("quizmaster starting",
		"version", version,
		"provider", d.cfg.Provider.Name,
		"store", d.cfg.Store.Backend)

	return app.Run(ctx, app.Options{
		Controller: ctrl,
		Logger:     d.logger,
		Start:      start,
		Offline:    offline,
		Setup: setup.Options{
			Questions:    d.cfg.Quiz.Questions,
			FetchTimeout: d.cfg.ProviderTimeout() + fetchGrace,
			Logger:       d.logger,
		},
	})
}
