package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindfool/mindfool/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings [key value]",
	Short: "Show or change preferences",
	Long: "Without arguments, print every preference. With a key and value, change it.\n\n" +
		"Keys: skip-post-feedback, haptic-feedback, sound-effects (true/false),\n" +
		"default-mode (a practice mode).",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("expected no arguments or a key and a value, got %d", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		prefs := e.svc.Settings
		if len(args) == 2 {
			if err := prefs.Set(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
		}

		cur := prefs.Get()
		out := cmd.OutOrStdout()
		for _, k := range settings.Keys {
			v, _ := cur.Value(k)
			fmt.Fprintf(out, "%-20s %s\n", k, v)
		}
		return nil
	},
}
