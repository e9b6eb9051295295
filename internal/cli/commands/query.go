package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ericamarie9016/eds221-m2021-day6-interactive/internal/export"
)

// NewQueryCommand creates the query command.
func NewQueryCommand() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "query <sql>",
		Short: "Run a single SQL statement against a DuckDB export",
		Long: `Execute one read statement against a database produced by
"wbtidy run --duckdb". The tidy table is named "indicators".`,
		Example: `  wbtidy query "SELECT country, avg(co2_emissions_kt) FROM indicators GROUP BY country" --db out/wb.duckdb`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args[0], dbPath)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Path to the DuckDB database (defaults to the configured duckdb path)")

	return cmd
}

func runQuery(cmd *cobra.Command, stmt, dbPath string) error {
	cfg := getConfig()
	if dbPath == "" {
		dbPath = cfg.DuckDBPath
	}
	if dbPath == "" {
		return fmt.Errorf("no database given: pass --db or configure duckdb")
	}

	ctx := cmd.Context()
	db, err := export.OpenDuckDB(ctx, dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := db.Query(ctx, stmt)
	if err != nil {
		return err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return err
	}

	var results [][]string
	values := make([]any, len(cols))
	valuePtrs := make([]any, len(cols))
	for i := range values {
		valuePtrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(valuePtrs...); err != nil {
			return err
		}
		row := make([]string, len(cols))
		for i, val := range values {
			switch v := val.(type) {
			case nil:
				row[i] = ""
			case []byte:
				row[i] = string(v)
			default:
				row[i] = fmt.Sprintf("%v", v)
			}
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	return renderRecords(cmd.OutOrStdout(), cols, results, cfg.OutputFormat)
}
