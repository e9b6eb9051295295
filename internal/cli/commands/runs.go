package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

// NewRunsCommand creates the runs command.
func NewRunsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent transform runs",
		Long: `Show the run history recorded by "wbtidy run": status, row counts
and the dropped-row audit trail.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRuns(cmd, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum runs to show")

	return cmd
}

func runRuns(cmd *cobra.Command, limit int) error {
	cfg := getConfig()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	if store == nil {
		return fmt.Errorf("no state path configured")
	}
	defer store.Close()

	runs, err := store.ListRuns(limit)
	if err != nil {
		return err
	}

	rows := make([][]string, len(runs))
	for i, r := range runs {
		duration := ""
		if r.CompletedAt != nil {
			duration = r.CompletedAt.Sub(r.StartedAt).Round(time.Millisecond).String()
		}
		rows[i] = []string{
			shortID(r.ID),
			r.InputPath,
			string(r.Status),
			strconv.Itoa(r.TidyRows),
			strconv.Itoa(r.DroppedNoSeries),
			strconv.Itoa(r.BadValues),
			r.StartedAt.Local().Format(time.DateTime),
			duration,
		}
	}

	cols := []string{"id", "input", "status", "tidy rows", "dropped", "bad values", "started", "took"}
	return renderRecords(cmd.OutOrStdout(), cols, rows, cfg.OutputFormat)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
