// Package config loads wbtidy configuration from file, environment
// and flags.
package config

// Defaults for the stock World Bank indicators workflow.
const (
	DefaultInputPath  = "data/wb_indicators.csv"
	DefaultOutputPath = "out/wb_tidy.csv"
	DefaultStateFile  = ".wbtidy/state.db"
	DefaultYearStart  = 2001
	DefaultYearEnd    = 2020
	DefaultOutput     = "table"
)

// Config holds the resolved configuration for a command invocation.
type Config struct {
	InputPath     string   `koanf:"input"`
	SeriesMapPath string   `koanf:"series_map"`
	OutputPath    string   `koanf:"out"`
	DuckDBPath    string   `koanf:"duckdb"`
	StatePath     string   `koanf:"state"`
	YearStart     int      `koanf:"year_start"`
	YearEnd       int      `koanf:"year_end"`
	MissingTokens []string `koanf:"missing_tokens"`
	Verbose       bool     `koanf:"verbose"`
	OutputFormat  string   `koanf:"output"`
}
