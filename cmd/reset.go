package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmaster/internal/quiz"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase saved quiz data",
	Long: `Erase the unfinished quiz, the last results and the high scores.

With --keep-scores only the unfinished quiz and the last results are removed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keep, _ := cmd.Flags().GetBool("keep-scores")

		d, err := openDeps(cmd, true)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		repo := d.repo()
		if keep {
			if err := repo.Discard(ctx, quiz.KeyCurrentQuiz); err != nil {
				return err
			}
			if err := repo.Discard(ctx, quiz.KeyQuizResults); err != nil {
				return err
			}
			d.logger.Info("saved quiz reset", "kept_scores", true)
			fmt.Println("Saved quiz and last results erased. High scores kept.")
			return nil
		}

		if err := repo.Clear(ctx); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		d.logger.Info("saved quiz reset", "kept_scores", false)
		fmt.Println("All saved quiz data erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("keep-scores", false, "Keep the high scores")
}
