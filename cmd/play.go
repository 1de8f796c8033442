package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

// fetchGrace is added to the provider timeout so the HTTP client gives up
// before the screen does.
const fetchGrace = 2 * time.Second

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz right away",
	Long: `Start a quiz without the difficulty menu.

The difficulty comes from --difficulty, then the config file, then medium.
With --offline the built-in question set is used instead of the network.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		offline, _ := cmd.Flags().GetBool("offline")
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runApp(cmd, cfg.Difficulty(), offline)
	},
}

func init() {
	playCmd.Flags().String("difficulty", "", "Difficulty: easy, medium or hard")
	playCmd.Flags().Bool("offline", false, "Use the built-in offline questions")
}
