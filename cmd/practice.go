package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mindfool/mindfool/internal/practice"
)

var practiceCmd = &cobra.Command{
	Use:   "practice [mode]",
	Short: "Start a practice right away",
	Long: "Start a practice right away. Without a mode the default practice from\n" +
		"settings is used.\n\nModes: " + strings.Join(modeNames(), ", "),
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: modeNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		var mode practice.Mode
		if len(args) == 1 {
			m, err := practice.ParseMode(args[0])
			if err != nil {
				return err
			}
			mode = m
		}
		if list, _ := cmd.Flags().GetBool("list"); list {
			return listPractices(cmd)
		}
		return runApp(cmd, mode)
	},
}

func init() {
	practiceCmd.Flags().Bool("list", false, "List practices and exit")
}

func modeNames() []string {
	modes := practice.AllModes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return names
}

func listPractices(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	for _, p := range practice.All() {
		fmt.Fprintf(out, "%-20s %-20s %3d min  %s\n",
			p.Mode, p.Mode.DisplayName(), int(p.Duration.Minutes()), p.Description)
	}
	return nil
}
