package state

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s := NewSQLiteStore()
	require.NoError(t, s.Open(":memory:"))
	require.NoError(t, s.InitSchema())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestCreateAndCompleteRun(t *testing.T) {
	s := openTestStore(t)

	run, err := s.CreateRun("data/wb_indicators.csv")
	require.NoError(t, err)
	require.NotEmpty(t, run.ID)
	require.Equal(t, RunStatusRunning, run.Status)

	counts := Counts{WideRows: 4, LongRows: 8, TidyRows: 3, DroppedNoSeries: 2, BadValues: 1}
	require.NoError(t, s.CompleteRun(run.ID, RunStatusCompleted, counts, ""))

	got, err := s.GetRun(run.ID)
	require.NoError(t, err)
	require.Equal(t, RunStatusCompleted, got.Status)
	require.Equal(t, 2, got.DroppedNoSeries)
	require.Equal(t, 1, got.BadValues)
	require.NotNil(t, got.CompletedAt)
	require.Empty(t, got.Error)
}

func TestCompleteRun_Failed(t *testing.T) {
	s := openTestStore(t)

	run, err := s.CreateRun("data/wb_indicators.csv")
	require.NoError(t, err)

	require.NoError(t, s.CompleteRun(run.ID, RunStatusFailed, Counts{}, "schema mismatch"))

	got, err := s.GetRun(run.ID)
	require.NoError(t, err)
	require.Equal(t, RunStatusFailed, got.Status)
	require.Equal(t, "schema mismatch", got.Error)
}

func TestCompleteRun_Unknown(t *testing.T) {
	s := openTestStore(t)
	err := s.CompleteRun("no-such-run", RunStatusCompleted, Counts{}, "")
	require.Error(t, err)
}

func TestListRuns(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 3; i++ {
		_, err := s.CreateRun("data/wb_indicators.csv")
		require.NoError(t, err)
	}

	runs, err := s.ListRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	runs, err = s.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 3)
}
