package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all session history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("this deletes every recorded session; rerun with --yes to confirm")
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		n, err := e.store.HistoryRepo().Count(cmd.Context())
		if err != nil {
			return err
		}
		if err := e.svc.History.ClearHistory(cmd.Context()); err != nil {
			return err
		}
		e.logger.Info("cleared history", "sessions", n)
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d sessions.\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
