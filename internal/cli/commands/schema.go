package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ericamarie9016/eds221-m2021-day6-interactive/internal/wbdata"
)

// NewSchemaCommand creates the schema command.
func NewSchemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Inspect the shape of the raw indicators file",
		Long: `Report the input file's identifier columns, the contiguous span of
year columns and the distinct series it carries. Malformed year labels
and non-contiguous spans are errors, not guesses.`,
		Args: cobra.NoArgs,
		RunE: runSchema,
	}
	return cmd
}

func runSchema(cmd *cobra.Command, _ []string) error {
	cfg := getConfig()

	df, err := wbdata.ReadFile(cfg.InputPath)
	if err != nil {
		return err
	}
	s, err := wbdata.Inspect(df)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Input:   %s\n", cfg.InputPath)
	fmt.Fprintf(out, "Rows:    %d\n", s.Rows)
	fmt.Fprintf(out, "Columns: %d (%d identifier + %d year)\n",
		len(s.Columns), len(wbdata.LeadingColumns), s.YearEnd-s.YearStart+1)
	fmt.Fprintf(out, "Years:   %d-%d\n", s.YearStart, s.YearEnd)
	fmt.Fprintf(out, "Series:  %d\n\n", len(s.Series))

	rows := make([][]string, len(s.Series))
	for i, name := range s.Series {
		rows[i] = []string{strconv.Itoa(i + 1), name}
	}
	return renderRecords(out, []string{"#", "series name"}, rows, cfg.OutputFormat)
}
