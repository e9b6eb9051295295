package commands

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/spf13/cobra"

	"github.com/ericamarie9016/eds221-m2021-day6-interactive/internal/tidy"
	"github.com/ericamarie9016/eds221-m2021-day6-interactive/internal/wbdata"
)

// NewPreviewCommand creates the preview command.
func NewPreviewCommand() *cobra.Command {
	var (
		stage string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the head of a pipeline stage",
		Long: `Render the first rows of the raw, long or tidy table without
writing any output files.`,
		Example: `  # First rows of the tidy table
  wbtidy preview

  # The intermediate long table, as markdown
  wbtidy preview --stage long -o markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreview(cmd, stage, limit)
		},
	}

	cmd.Flags().StringVar(&stage, "stage", "tidy", "Pipeline stage to show (raw|long|tidy)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum rows to show")

	return cmd
}

func runPreview(cmd *cobra.Command, stage string, limit int) error {
	cfg := getConfig()

	opts, err := transformOptions(cfg)
	if err != nil {
		return err
	}

	raw, err := wbdata.ReadFile(cfg.InputPath)
	if err != nil {
		return err
	}

	var df dataframe.DataFrame
	switch stage {
	case "raw":
		df = raw
	case "long":
		df, _, err = tidy.Longer(raw, opts)
	case "tidy":
		df, _, err = tidy.Transform(raw, opts)
	default:
		return fmt.Errorf("unknown stage %q (want raw, long or tidy)", stage)
	}
	if err != nil {
		return err
	}

	cols, rows := frameRecords(df)
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return renderRecords(cmd.OutOrStdout(), cols, rows, cfg.OutputFormat)
}
