package cmd

import (
	"github.com/mindfool/mindfool/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mindfool",
	Short: "Short mindfulness practices with calm check-ins",
	Long: "Mindfool runs short breathing and mindfulness practices in the terminal,\n" +
		"asks how calm you feel before and after, and keeps a daily streak.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MINDFOOL_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Diagnostic log level: trace, debug, info, warn, error, off (overrides MINDFOOL_LOG_LEVEL)")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MINDFOOL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
