package cmd

import (
	"bufio"
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmaster/internal/questions"
	"github.com/abhisek/quizmaster/internal/quiz"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Preview a question set from the configured source (no saved state)",
	Long: `Fetch a question set and print it, or answer it on the command line
with --play. Nothing is saved. Useful for checking a provider or an LLM
configuration.`,
	RunE: runQuestions,
}

func init() {
	questionsCmd.Flags().String("difficulty", "", "Difficulty: easy, medium or hard")
	questionsCmd.Flags().Bool("answers", false, "Show the correct answers")
	questionsCmd.Flags().Bool("play", false, "Answer the questions interactively")
	questionsCmd.Flags().Bool("offline", false, "Use the built-in offline questions")
}

func runQuestions(cmd *cobra.Command, args []string) error {
	showAnswers, _ := cmd.Flags().GetBool("answers")
	play, _ := cmd.Flags().GetBool("play")
	offline, _ := cmd.Flags().GetBool("offline")

	d, err := openDeps(cmd, false)
	if err != nil {
		return err
	}
	defer d.Close()

	difficulty := d.cfg.Difficulty()
	var provider quiz.Provider
	if offline {
		provider = questions.NewOffline(d.cfg.Quiz.Questions, d.logger)
	} else if provider, err = d.provider(cmd.Context()); err != nil {
		return fmt.Errorf("question provider: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), d.cfg.ProviderTimeout()+fetchGrace)
	defer cancel()

	fmt.Printf("Fetching %s questions from %s...\n\n", strings.ToLower(difficulty.DisplayName()), provider.Name())
	qs, err := quiz.FetchQuestions(ctx, provider, difficulty)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	sess := quiz.NewSession("preview", difficulty, qs, d.cfg.Quiz.TimeLimit, rng, time.Now())

	scanner := bufio.NewScanner(os.Stdin)
	var correct int
	for i, q := range sess.Questions {
		fmt.Printf("── Question %d/%d ── %s\n", i+1, sess.Total(), q.Category)
		fmt.Println(q.Text)
		for j, c := range sess.Choices[i] {
			fmt.Printf("  %c) %s\n", 'A'+j, c)
		}

		if !play {
			if showAnswers {
				fmt.Printf("Answer: %s\n", q.CorrectAnswer)
			}
			fmt.Println()
			continue
		}

		fmt.Print("\nYour answer (A-D): ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		idx := answerIndex(scanner.Text())
		if idx < 0 || idx >= len(sess.Choices[i]) {
			fmt.Printf("(skipped) Answer: %s\n\n", q.CorrectAnswer)
			continue
		}
		if q.IsCorrect(sess.Choices[i][idx]) {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", q.CorrectAnswer)
		}
		fmt.Println()
	}

	if play {
		fmt.Printf("── Summary: %d/%d correct (%d%%) ──\n", correct, sess.Total(), quiz.Percentage(correct, sess.Total()))
	}
	return nil
}

// answerIndex maps "a"-"d" or "1"-"4" to an option index, -1 otherwise.
func answerIndex(s string) int {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 1 {
		return -1
	}
	switch c := s[0]; {
	case c >= 'a' && c <= 'd':
		return int(c - 'a')
	case c >= '1' && c <= '4':
		return int(c - '1')
	}
	return -1
}
