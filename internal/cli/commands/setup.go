// Package commands implements the wbtidy subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ericamarie9016/eds221-m2021-day6-interactive/internal/cli/config"
	"github.com/ericamarie9016/eds221-m2021-day6-interactive/internal/state"
	"github.com/ericamarie9016/eds221-m2021-day6-interactive/internal/tidy"
)

// getConfig returns the current configuration, falling back to
// defaults when no config has been loaded (direct command tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		InputPath:     config.DefaultInputPath,
		OutputPath:    config.DefaultOutputPath,
		StatePath:     config.DefaultStateFile,
		YearStart:     config.DefaultYearStart,
		YearEnd:       config.DefaultYearEnd,
		MissingTokens: []string{"..", ""},
		OutputFormat:  config.DefaultOutput,
	}
}

// newLogger builds the command logger; verbose enables debug output.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// transformOptions resolves tidy options from config, loading the
// series map when one is configured.
func transformOptions(cfg *config.Config) (tidy.Options, error) {
	opts := tidy.Options{
		MissingTokens: cfg.MissingTokens,
		YearStart:     cfg.YearStart,
		YearEnd:       cfg.YearEnd,
	}
	if len(opts.MissingTokens) == 0 {
		opts.MissingTokens = []string{"..", ""}
	}
	if cfg.SeriesMapPath != "" {
		renames, err := tidy.LoadSeriesMap(cfg.SeriesMapPath)
		if err != nil {
			return tidy.Options{}, err
		}
		opts.Renames = renames
	}
	return opts, nil
}

// openStore opens the run-history store, creating its directory.
// Returns nil when no state path is configured.
func openStore(cfg *config.Config) (*state.SQLiteStore, error) {
	if cfg.StatePath == "" {
		return nil, nil
	}
	if dir := filepath.Dir(cfg.StatePath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}
	store := state.NewSQLiteStore()
	if err := store.Open(cfg.StatePath); err != nil {
		return nil, err
	}
	if err := store.InitSchema(); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}
