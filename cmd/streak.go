package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindfool/mindfool/internal/ui/layout"
)

var streakCmd = &cobra.Command{
	Use:     "streak",
	Aliases: []string{"stats"},
	Short:   "Show current and longest streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		snap := e.svc.Load(cmd.Context())
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Current streak:  %s\n", layout.StreakLabel(snap.Info.CurrentStreak))
		fmt.Fprintf(out, "Longest streak:  %s\n", layout.StreakLabel(snap.Info.LongestStreak))
		fmt.Fprintf(out, "Total sessions:  %d\n", snap.Info.TotalSessions)
		if snap.Info.LastSessionDate != nil {
			fmt.Fprintf(out, "Last session:    %s (%s)\n",
				e.svc.Streaks.RelativeDay(*snap.Info.LastSessionDate),
				snap.Info.LastSessionDate.Local().Format("Mon Jan 2 15:04"))
		}
		if snap.PracticedToday {
			fmt.Fprintln(out, "Practiced today: yes")
		} else {
			fmt.Fprintln(out, "Practiced today: not yet")
		}
		return nil
	},
}
