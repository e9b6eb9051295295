package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ericamarie9016/eds221-m2021-day6-interactive/internal/cli"
	"github.com/ericamarie9016/eds221-m2021-day6-interactive/internal/cli/config"
)

const fixture = "testdata/wb_indicators_sample.csv"

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func baseArgs(extra ...string) []string {
	args := []string{
		"--input", fixture,
		"--year-start", "2019",
		"--year-end", "2020",
		"--state", "",
	}
	return append(args, extra...)
}

func TestRunCommand_EndToEnd(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "tidy.csv")
	args := append([]string{"run"}, baseArgs("--out", outPath)...)

	out, err := execute(t, args...)
	require.NoError(t, err)
	require.Contains(t, out, "Tidied 4 wide rows x 2 year columns into 3 rows")
	require.Contains(t, out, "Dropped 2 rows with missing series name")

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "country,year,co2_emissions_kt,access_to_electricity_of_population", lines[0])
	require.Equal(t, "Sweden,2019,1234,100", lines[1])
}

func TestRunCommand_SeriesMap(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "tidy.csv")
	args := append([]string{"run"},
		baseArgs("--out", outPath, "--series-map", "testdata/series_map.yaml")...)

	_, err := execute(t, args...)
	require.NoError(t, err)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(content), "country,year,co2_kt,access_electricity_pp"))
}

func TestRunCommand_SchemaMismatch(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "tidy.csv")
	args := []string{"run",
		"--input", fixture,
		"--year-start", "2018",
		"--year-end", "2020",
		"--state", "",
		"--out", outPath,
	}

	_, err := execute(t, args...)
	require.Error(t, err)
	require.Contains(t, err.Error(), "schema mismatch")

	_, statErr := os.Stat(outPath)
	require.True(t, os.IsNotExist(statErr), "no output may be written on a structural error")
}

func TestRunCommand_RecordsRunHistory(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "tidy.csv")
	statePath := filepath.Join(dir, "state.db")

	args := []string{"run",
		"--input", fixture,
		"--year-start", "2019",
		"--year-end", "2020",
		"--state", statePath,
		"--out", outPath,
	}
	_, err := execute(t, args...)
	require.NoError(t, err)

	out, err := execute(t, "runs", "--state", statePath, "--input", fixture,
		"--year-start", "2019", "--year-end", "2020", "-o", "csv")
	require.NoError(t, err)
	require.Contains(t, out, "completed")
	require.Contains(t, out, fixture)
}

func TestPreviewCommand_Long(t *testing.T) {
	args := append([]string{"preview", "--stage", "long", "-n", "3", "-o", "csv"}, baseArgs()...)
	out, err := execute(t, args...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, "country,series,year,value", lines[0])
	require.Len(t, lines, 4) // header + 3 rows
}

func TestPreviewCommand_UnknownStage(t *testing.T) {
	args := append([]string{"preview", "--stage", "sideways"}, baseArgs()...)
	_, err := execute(t, args...)
	require.Error(t, err)
}

func TestSchemaCommand(t *testing.T) {
	args := append([]string{"schema"}, baseArgs()...)
	out, err := execute(t, args...)
	require.NoError(t, err)
	require.Contains(t, out, "2019-2020")
	require.Contains(t, out, "CO2 emissions (kt)")
	require.Contains(t, out, "Series:  2")
}

func TestSummaryCommand(t *testing.T) {
	args := append([]string{"summary", "-o", "csv"}, baseArgs()...)
	out, err := execute(t, args...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, "series,n,mean,stddev,min,max", lines[0])
	// co2: 1234, 1200, 41000 -> three non-missing observations
	require.Contains(t, out, "co2_emissions_kt,3,")
	// electricity: a single value of 100
	require.Contains(t, out, "access_to_electricity_of_population,1,100,")
}

func TestQueryCommand_NoDatabase(t *testing.T) {
	args := append([]string{"query", "SELECT 1"}, baseArgs()...)
	_, err := execute(t, args...)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no database")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "wbtidy v")
}
