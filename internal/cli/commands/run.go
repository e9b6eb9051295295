package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ericamarie9016/eds221-m2021-day6-interactive/internal/cli/config"
	"github.com/ericamarie9016/eds221-m2021-day6-interactive/internal/export"
	"github.com/ericamarie9016/eds221-m2021-day6-interactive/internal/state"
	"github.com/ericamarie9016/eds221-m2021-day6-interactive/internal/tidy"
	"github.com/ericamarie9016/eds221-m2021-day6-interactive/internal/wbdata"
)

// RunOptions holds options for the run command.
type RunOptions struct {
	Watch bool
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Tidy the indicators file and write the outputs",
		Long: `Read the wide World Bank indicators CSV, reshape it into the tidy
country-by-year table and write it to the configured outputs.

Rows dropped for a missing series name are counted and logged, never
discarded silently. Every run is recorded in the run-history database.`,
		Example: `  # Tidy the default input
  wbtidy run

  # Custom input and year span
  wbtidy run --input data/wb_indicators.csv --year-start 2001 --year-end 2020

  # Also load the tidy table into DuckDB for SQL analysis
  wbtidy run --duckdb out/wb.duckdb

  # Re-run whenever the input file changes
  wbtidy run --watch`,
		Aliases: []string{"build"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRun(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Re-run the transform when the input file changes")

	return cmd
}

func runRun(cmd *cobra.Command, opts *RunOptions) error {
	cfg := getConfig()
	logger := newLogger(cfg)

	if err := runOnce(cmd, cfg, logger); err != nil {
		if !opts.Watch {
			return err
		}
		// In watch mode a bad input is something to fix and save again,
		// not a reason to exit.
		logger.Error("transform failed", "error", err)
	}

	if opts.Watch {
		return watchAndRun(cmd, cfg, logger)
	}
	return nil
}

func runOnce(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	startTime := time.Now()

	transformOpts, err := transformOptions(cfg)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	var run *state.Run
	if store != nil {
		defer store.Close()
		if run, err = store.CreateRun(cfg.InputPath); err != nil {
			return err
		}
	}

	fail := func(err error) error {
		if store != nil && run != nil {
			if serr := store.CompleteRun(run.ID, state.RunStatusFailed, state.Counts{}, err.Error()); serr != nil {
				logger.Error("recording failed run", "error", serr)
			}
		}
		return err
	}

	logger.Debug("reading indicators", "input", cfg.InputPath)
	raw, err := wbdata.ReadFile(cfg.InputPath)
	if err != nil {
		return fail(err)
	}

	tidyDF, rep, err := tidy.Transform(raw, transformOpts)
	if err != nil {
		return fail(err)
	}

	if rep.DroppedNoSeries > 0 {
		logger.Warn("dropped rows with missing series name", "rows", rep.DroppedNoSeries)
	}
	if rep.BadValues > 0 {
		logger.Warn("cells neither numeric nor a missing token", "cells", rep.BadValues)
	}

	if err := export.WriteCSVFile(cfg.OutputPath, tidyDF); err != nil {
		return fail(err)
	}

	if cfg.DuckDBPath != "" {
		ctx := context.Background()
		db, err := export.OpenDuckDB(ctx, cfg.DuckDBPath)
		if err != nil {
			return fail(err)
		}
		if err := db.Load(ctx, tidyDF, "indicators"); err != nil {
			_ = db.Close()
			return fail(err)
		}
		if err := db.Close(); err != nil {
			return fail(err)
		}
	}

	if store != nil && run != nil {
		counts := state.Counts{
			WideRows:        rep.WideRows,
			LongRows:        rep.LongRows,
			TidyRows:        rep.TidyRows,
			DroppedNoSeries: rep.DroppedNoSeries,
			BadValues:       rep.BadValues,
		}
		if err := store.CompleteRun(run.ID, state.RunStatusCompleted, counts, ""); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Tidied %d wide rows x %d year columns into %d rows\n",
		rep.WideRows, rep.YearCols, rep.TidyRows)
	if rep.DroppedNoSeries > 0 {
		fmt.Fprintf(out, "Dropped %d rows with missing series name\n", rep.DroppedNoSeries)
	}
	fmt.Fprintf(out, "Wrote %s\n", cfg.OutputPath)
	if cfg.DuckDBPath != "" {
		fmt.Fprintf(out, "Loaded table indicators into %s\n", cfg.DuckDBPath)
	}
	fmt.Fprintf(out, "Completed in %s\n", time.Since(startTime).Round(time.Millisecond))

	return nil
}

// watchAndRun re-runs the transform whenever the input file is written.
// Editors often replace files instead of writing in place, so the
// watch is on the parent directory, filtered by name.
func watchAndRun(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(cfg.InputPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	logger.Info("watching for changes", "input", cfg.InputPath)

	target := filepath.Clean(cfg.InputPath)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Info("input changed, re-running", "event", event.Op.String())
			if err := runOnce(cmd, cfg, logger); err != nil {
				logger.Error("transform failed", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "error", err)
		}
	}
}
