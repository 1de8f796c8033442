package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmaster/internal/quiz"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the high scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, true)
		if err != nil {
			return err
		}
		defer d.Close()

		return printHistory(cmd.Context(), cmd.OutOrStdout(), d.repo(), d.logger)
	},
}

// printHistory writes the high score table and the last result to w.
// Corrupt stored data is discarded and reported instead of failing.
func printHistory(ctx context.Context, w io.Writer, repo *quiz.Repo, logger *slog.Logger) error {
	entries, err := repo.History(ctx)
	if err != nil {
		if !discardCorrupt(ctx, repo, logger, err) {
			return fmt.Errorf("load high scores: %w", err)
		}
		fmt.Fprintln(w, "Stored high scores were unreadable and have been cleared.")
		entries = nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No high scores yet. Run quizmaster to play.")
	} else {
		fmt.Fprintf(w, "%-3s  %-7s  %-5s  %-8s  %-6s  %s\n", "#", "Score", "Pct", "Level", "Time", "Played")
		fmt.Fprintln(w, strings.Repeat("─", 52))
		for i, e := range entries {
			fmt.Fprintf(w, "%-3d  %-7s  %-5s  %-8s  %-6s  %s\n",
				i+1,
				fmt.Sprintf("%d/%d", e.Score, e.TotalQuestions),
				fmt.Sprintf("%d%%", e.Percentage),
				e.Difficulty.DisplayName(),
				fmt.Sprintf("%d:%02d", e.DurationSeconds/60, e.DurationSeconds%60),
				e.Timestamp.Local().Format("2006-01-02 15:04"),
			)
		}
	}

	res, err := repo.LoadResult(ctx)
	switch {
	case err != nil:
		if !discardCorrupt(ctx, repo, logger, err) {
			return fmt.Errorf("load last result: %w", err)
		}
	case res != nil:
		fmt.Fprintf(w, "\nLast quiz: %d/%d (%d%%) on %s, %s\n",
			res.Score, res.TotalQuestions, res.Percentage,
			res.Difficulty.DisplayName(), res.Message())
	}
	return nil
}

// discardCorrupt removes the blob behind a corrupt-data error. It reports
// false for any other error.
func discardCorrupt(ctx context.Context, repo *quiz.Repo, logger *slog.Logger, err error) bool {
	var corrupt *quiz.ErrPersistenceCorrupt
	if !errors.As(err, &corrupt) {
		return false
	}
	logger.Warn("discarding corrupt stored data", "key", corrupt.Key, "error", corrupt.Err)
	if derr := repo.Discard(ctx, corrupt.Key); derr != nil {
		logger.Error("discarding corrupt data failed", "key", corrupt.Key, "error", derr)
	}
	return true
}
