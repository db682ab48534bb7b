package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mindfool/mindfool/internal/app"
	"github.com/mindfool/mindfool/internal/practice"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, mode practice.Mode) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	return app.Run(cmd.Context(), app.Options{
		Services:  e.svc,
		StartMode: mode,
	})
}
