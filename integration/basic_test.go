//go:build basic

package integration

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runPeakform runs the shared binary with an isolated HOME so default
// SQLite stores never touch the developer's real home directory.
func runPeakform(t *testing.T, homeDir string, args ...string) (string, error) {
	t.Helper()

	peakformPath := getPeakformBinary()
	cmd := exec.Command(peakformPath, args...)
	cmd.Dir = "../" // Run from project root
	cmd.Env = append(os.Environ(), "HOME="+homeDir)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func TestPeakformVersion(t *testing.T) {
	out, err := runPeakform(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "peakform CLI")
}

func TestPeakformZonesClassify(t *testing.T) {
	out, err := runPeakform(t, t.TempDir(), "zones", "--ftp", "250", "--classify", "0.85")
	require.NoError(t, err)
	assert.Contains(t, out, "Tempo")
}

func TestPeakformActivityJSON(t *testing.T) {
	// A constant-power hour: every metric has a closed form.
	watts := make([]float64, 3600)
	for i := range watts {
		watts[i] = 200
	}
	data, err := json.Marshal(watts)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "samples.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	out, err := runPeakform(t, t.TempDir(), "activity", path, "--ftp", "250", "--output", "json")
	require.NoError(t, err)

	assert.Contains(t, out, `"normalized_power"`)
	assert.Contains(t, out, `"tss"`)
	assert.Contains(t, out, `"intensity_factor"`)
}

func TestPeakformSeriesWithCache(t *testing.T) {
	homeDir := t.TempDir()
	activities := writeActivitiesFixture(t, 30)

	// Cold run populates the default SQLite cache under HOME.
	out, err := runPeakform(t, homeDir, "series", activities, "--limit", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Series build completed in")

	// Warm run is served from the cache and must agree.
	warm, err := runPeakform(t, homeDir, "series", activities, "--limit", "10")
	require.NoError(t, err)
	assert.Contains(t, warm, "Series build completed in")

	// The cache file should exist and report status.
	out, err = runPeakform(t, homeDir, "cache", "status")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

// The checked-in example files exercise the date-free commands end to
// end without generated fixtures.
func TestPeakformActivityExampleFile(t *testing.T) {
	out, err := runPeakform(t, t.TempDir(), "activity", "examples/samples.json",
		"--ftp", "250", "--show-zones")
	require.NoError(t, err)
	assert.Contains(t, out, "Activity analysis completed in")
}

func TestPeakformWorkoutExampleFile(t *testing.T) {
	out, err := runPeakform(t, t.TempDir(), "workout", "tss",
		"examples/workout.json", "--ftp", "250")
	require.NoError(t, err)
	assert.Contains(t, out, "Planned TSS 71.0")

	out, err = runPeakform(t, t.TempDir(), "workout", "validate", "examples/workout.json")
	require.NoError(t, err)
	assert.Contains(t, out, "Workout is valid")
}

func TestPeakformWorkoutParseJSON(t *testing.T) {
	out, err := runPeakform(t, t.TempDir(), "workout", "parse",
		"--description", "2x20min @ 90%")
	require.NoError(t, err)
	assert.Contains(t, out, `"workout_type"`)
	assert.Contains(t, out, `"segments"`)
}

func TestPeakformWorkoutTSS(t *testing.T) {
	out, err := runPeakform(t, t.TempDir(), "workout", "tss",
		"--description", "4x5min @ 105%", "--ftp", "250")
	require.NoError(t, err)
	assert.Contains(t, out, "59")
}

func TestPeakformCheckGates(t *testing.T) {
	homeDir := t.TempDir()
	activities := writeActivitiesFixture(t, 90)

	// Steady training for three months passes the default gates.
	out, err := runPeakform(t, homeDir, "check", activities)
	require.NoError(t, err)
	assert.Contains(t, out, "All training gates passed")

	// An unreachable TSB floor must fail with a non-zero exit code.
	out, err = runPeakform(t, homeDir, "check", activities, "--checks", "tsb:50")
	require.Error(t, err)
	assert.Contains(t, out, "Training check failed")

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
}

func TestPeakformCompareBaseline(t *testing.T) {
	homeDir := t.TempDir()
	activities := writeActivitiesFixture(t, 60)

	out, err := runPeakform(t, homeDir, "compare", activities, "--baseline", "14 days")
	require.NoError(t, err)
	assert.Contains(t, out, "Comparison completed in")
}

func TestPeakformTrendWindow(t *testing.T) {
	homeDir := t.TempDir()
	activities := writeActivitiesFixture(t, 45)

	out, err := runPeakform(t, homeDir, "trend", activities, "--window", "14")
	require.NoError(t, err)
	assert.Contains(t, out, "Trend analysis completed in")
}
