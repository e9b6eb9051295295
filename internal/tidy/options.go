package tidy

import "strings"

// Column names of the long table produced by Longer and consumed by Wider.
const (
	ColCountry = "country"
	ColSeries  = "series"
	ColYear    = "year"
	ColValue   = "value"
)

// Identifier columns expected in the raw World Bank export.
const (
	RawCountryCol = "Country Name"
	RawSeriesCol  = "Series Name"
)

// Options configures a transform run. It replaces any notion of shared
// package-level defaults: every knob travels with the call.
type Options struct {
	// MissingTokens are cell values that mean "no observation".
	// The World Bank export uses ".." and the empty string.
	MissingTokens []string

	// YearStart and YearEnd declare the inclusive span of year columns
	// the input must carry. A boundary column absent from the input is
	// a schema mismatch, not a silent drop.
	YearStart int
	YearEnd   int

	// Renames maps raw series names to short column identifiers in the
	// tidy table. Series not in the map get a slug of their name.
	// Renaming is name-keyed on purpose: positional renames silently
	// mis-assign columns when the input order shifts.
	Renames map[string]string
}

// DefaultOptions returns the options matching the stock World Bank
// indicators export for 2001-2020.
func DefaultOptions() Options {
	return Options{
		MissingTokens: []string{"..", ""},
		YearStart:     2001,
		YearEnd:       2020,
	}
}

func (o Options) isMissing(cell string) bool {
	cell = strings.TrimSpace(cell)
	for _, tok := range o.MissingTokens {
		if cell == tok {
			return true
		}
	}
	return false
}
