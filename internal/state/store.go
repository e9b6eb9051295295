// Package state persists transform run history in SQLite, so the
// dropped-row and bad-value counts of every run stay auditable after
// the process exits.
package state

import "time"

// RunStatus describes the lifecycle of a transform run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// Run is one recorded transform run.
type Run struct {
	ID              string
	InputPath       string
	Status          RunStatus
	WideRows        int
	LongRows        int
	TidyRows        int
	DroppedNoSeries int
	BadValues       int
	Error           string
	StartedAt       time.Time
	CompletedAt     *time.Time
}

// Counts is the subset of a run recorded at completion.
type Counts struct {
	WideRows        int
	LongRows        int
	TidyRows        int
	DroppedNoSeries int
	BadValues       int
}
