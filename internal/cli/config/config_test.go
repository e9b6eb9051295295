package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	require.Equal(t, DefaultInputPath, cfg.InputPath)
	require.Equal(t, DefaultYearStart, cfg.YearStart)
	require.Equal(t, DefaultYearEnd, cfg.YearEnd)
	require.Equal(t, []string{"..", ""}, cfg.MissingTokens)
	require.Equal(t, "table", cfg.OutputFormat)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wbtidy.yaml")
	content := `input: data/custom.csv
year_start: 2010
year_end: 2015
missing_tokens: ["..", "", "N/A"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, "data/custom.csv", cfg.InputPath)
	require.Equal(t, 2010, cfg.YearStart)
	require.Equal(t, 2015, cfg.YearEnd)
	require.Equal(t, []string{"..", "", "N/A"}, cfg.MissingTokens)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wbtidy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: data/from_file.csv\n"), 0o644))

	t.Setenv("WBTIDY_INPUT", "data/from_env.csv")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, "data/from_env.csv", cfg.InputPath)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("WBTIDY_INPUT", "data/from_env.csv")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("input", "", "")
	require.NoError(t, flags.Parse([]string{"--input", "data/from_flag.csv"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	require.Equal(t, "data/from_flag.csv", cfg.InputPath)
}

func TestLoad_UnchangedFlagIgnored(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("input", "flag-default.csv", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	require.Equal(t, DefaultInputPath, cfg.InputPath)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty input", func(c *Config) { c.InputPath = "" }, true},
		{"inverted range", func(c *Config) { c.YearStart = 2020; c.YearEnd = 2001 }, true},
		{"three digit year", func(c *Config) { c.YearStart = 999 }, true},
		{"bad output", func(c *Config) { c.OutputFormat = "xml" }, true},
		{"markdown output", func(c *Config) { c.OutputFormat = "markdown" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				InputPath:    DefaultInputPath,
				YearStart:    DefaultYearStart,
				YearEnd:      DefaultYearEnd,
				OutputFormat: DefaultOutput,
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
