package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "quizmaster",
	Short: "Timed trivia quiz in your terminal",
	Long: `QuizMaster: a timed multiple-choice trivia quiz for the terminal.

Questions come from the Open Trivia Database, an LLM, or a built-in offline
set. High scores and an unfinished quiz are kept between runs.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "", false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}

func addGlobalFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "Path to config file (overrides QUIZMASTER_CONFIG env var)")
	flags.String("db", "", "Path to SQLite database file (overrides QUIZMASTER_DB env var)")
	flags.String("store", "", "Storage backend: sqlite, redis or memory")
	flags.String("log", "", "Path to log file (overrides QUIZMASTER_LOG env var)")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.String("provider", "", "Question source: opentdb, fallback or llm")
	flags.Int("time-limit", 0, "Seconds per question")
	flags.Int("questions", 0, "Number of questions per quiz")
}
