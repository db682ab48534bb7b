package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindfool/mindfool/internal/practice"
	"github.com/mindfool/mindfool/internal/share"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print a shareable message for your current streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		var mode practice.Mode
		if p, _ := cmd.Flags().GetString("practice"); p != "" {
			m, err := practice.ParseMode(p)
			if err != nil {
				return err
			}
			mode = m
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		snap := e.svc.Load(cmd.Context())
		c := share.StreakContent(snap.Info.CurrentStreak, mode)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, c.Title)
		fmt.Fprintln(out)
		fmt.Fprintln(out, c.Text())
		if dev, _ := cmd.Flags().GetBool("dev"); mode != "" {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Open:", share.DeepLink(mode, dev))
		}
		return nil
	},
}

func init() {
	shareCmd.Flags().String("practice", "", "Mention a practice in the message")
	shareCmd.Flags().Bool("dev", false, "Use the development deep link scheme")
}
