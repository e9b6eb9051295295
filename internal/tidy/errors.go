package tidy

import (
	"errors"
	"fmt"
)

// ErrSchemaMismatch indicates the input table does not carry the
// structure the transform was told to expect (missing identifier or
// year columns, inverted year range). Structural problems are fatal:
// the transform aborts rather than produce a partially-wrong table.
var ErrSchemaMismatch = errors.New("schema mismatch")

// ParseError indicates a year-column label that does not have the
// "<YYYY> [YR<YYYY>]" form.
type ParseError struct {
	Label  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed year label %q: %s", e.Label, e.Reason)
}
