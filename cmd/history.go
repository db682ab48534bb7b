package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mindfool/mindfool/internal/mood"
	"github.com/mindfool/mindfool/internal/session"
	"github.com/mindfool/mindfool/internal/store"
	"github.com/mindfool/mindfool/internal/ui/components"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past sessions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		format, _ := cmd.Flags().GetString("format")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		recs, err := e.store.HistoryRepo().Query(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return err
		}
		return writeHistory(cmd.OutOrStdout(), recs, format)
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum sessions to show (0 = all)")
	historyCmd.Flags().String("format", "table", "Output format: table, json, yaml")
}

func writeHistory(w io.Writer, recs []session.Record, format string) error {
	if recs == nil {
		recs = []session.Record{}
	}
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recs); err != nil {
			return err
		}
		return enc.Close()
	case "table", "":
		if len(recs) == 0 {
			_, err := fmt.Fprintln(w, "No sessions yet.")
			return err
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("WHEN", "PRACTICE", "TIME", "PRE", "POST", "CHANGE", "NOTES")
		for _, r := range recs {
			t.Row(
				r.Timestamp.Local().Format("2006-01-02 15:04"),
				r.Mode.DisplayName(),
				components.FormatClock(int(r.Duration.Seconds())),
				strconv.Itoa(r.PreScore),
				strconv.Itoa(r.PostScore),
				mood.ShortDelta(r.Delta),
				r.Notes,
			)
		}
		_, err := fmt.Fprintln(w, t.String())
		return err
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
}
