package config

import "fmt"

// Validate checks the resolved configuration for contradictions before
// any work starts.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("input path must not be empty")
	}
	if c.YearStart < 1000 || c.YearStart > 9999 {
		return fmt.Errorf("year_start %d is not a four-digit year", c.YearStart)
	}
	if c.YearEnd < 1000 || c.YearEnd > 9999 {
		return fmt.Errorf("year_end %d is not a four-digit year", c.YearEnd)
	}
	if c.YearStart > c.YearEnd {
		return fmt.Errorf("year range %d-%d is inverted", c.YearStart, c.YearEnd)
	}
	switch c.OutputFormat {
	case "", "table", "csv", "markdown", "json":
	default:
		return fmt.Errorf("unknown output format %q (want table, csv, markdown or json)", c.OutputFormat)
	}
	return nil
}
