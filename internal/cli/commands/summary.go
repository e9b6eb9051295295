package commands

import (
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ericamarie9016/eds221-m2021-day6-interactive/internal/tidy"
	"github.com/ericamarie9016/eds221-m2021-day6-interactive/internal/wbdata"
)

// NewSummaryCommand creates the summary command.
func NewSummaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Descriptive statistics per indicator series",
		Long: `Tidy the input and report count, mean, standard deviation, min and
max for every series column, computed over non-missing values only.`,
		Args: cobra.NoArgs,
		RunE: runSummary,
	}
	return cmd
}

func runSummary(cmd *cobra.Command, _ []string) error {
	cfg := getConfig()

	opts, err := transformOptions(cfg)
	if err != nil {
		return err
	}
	raw, err := wbdata.ReadFile(cfg.InputPath)
	if err != nil {
		return err
	}
	tidyDF, _, err := tidy.Transform(raw, opts)
	if err != nil {
		return err
	}

	var rows [][]string
	for _, name := range tidyDF.Names() {
		if name == tidy.ColCountry || name == tidy.ColYear {
			continue
		}

		col := tidyDF.Col(name)
		vals := make([]float64, 0, col.Len())
		for i := 0; i < col.Len(); i++ {
			if e := col.Elem(i); !e.IsNA() {
				vals = append(vals, e.Float())
			}
		}

		if len(vals) == 0 {
			rows = append(rows, []string{name, "0", "", "", "", ""})
			continue
		}
		rows = append(rows, []string{
			name,
			strconv.Itoa(len(vals)),
			formatStat(stat.Mean(vals, nil)),
			formatStat(stat.StdDev(vals, nil)),
			formatStat(floats.Min(vals)),
			formatStat(floats.Max(vals)),
		})
	}

	cols := []string{"series", "n", "mean", "stddev", "min", "max"}
	return renderRecords(cmd.OutOrStdout(), cols, rows, cfg.OutputFormat)
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
