// Package cli provides the command-line interface for wbtidy.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ericamarie9016/eds221-m2021-day6-interactive/internal/cli/commands"
	"github.com/ericamarie9016/eds221-m2021-day6-interactive/internal/cli/config"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wbtidy",
		Short: "wbtidy - World Bank indicator tidying tool",
		Long: `wbtidy reshapes the wide World Bank indicators export (one column per
year, one row per country and series) into a tidy table with one row
per country and year and one column per indicator series.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
World Bank indicator tidying tool
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./wbtidy.yaml)")
	rootCmd.PersistentFlags().String("input", "", "Path to the wide indicators CSV")
	rootCmd.PersistentFlags().String("series-map", "", "Path to the YAML series rename map")
	rootCmd.PersistentFlags().String("out", "", "Path for the tidy CSV output")
	rootCmd.PersistentFlags().String("duckdb", "", "Path to a DuckDB database to load the tidy table into")
	rootCmd.PersistentFlags().String("state", "", "Path to the run-history database")
	rootCmd.PersistentFlags().Int("year-start", 0, "First year column of the input range")
	rootCmd.PersistentFlags().Int("year-end", 0, "Last year column of the input range")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (table|csv|markdown|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "csv", "markdown", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewPreviewCommand())
	rootCmd.AddCommand(commands.NewSchemaCommand())
	rootCmd.AddCommand(commands.NewSummaryCommand())
	rootCmd.AddCommand(commands.NewQueryCommand())
	rootCmd.AddCommand(commands.NewRunsCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
