package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/agequiz/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "agequiz",
	Short: "Guess-your-age quiz for the terminal",
	Long:  "agequiz asks five numeric questions and then reveals your age with a counter and confetti.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().String(config.KeyLogFile, "", "Path to the log file (default $XDG_STATE_HOME/agequiz/agequiz.log)")
	rootCmd.Flags().String(config.KeyLogLevel, "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().Bool(config.KeyNoAltScreen, false, "Draw inline instead of using the alternate screen")

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}
