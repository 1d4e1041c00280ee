package core

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempSamples(t *testing.T, watts []float64) string {
	t.Helper()
	data, err := json.Marshal(watts)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "samples.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func steadyWatts(n int, watts float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = watts
	}
	return values
}

// TestGetActivityResults verifies the power metrics for a steady ride at
// FTP.
func TestGetActivityResults(t *testing.T) {
	cfg := cachingConfig(t)
	cfg.FTP = 200
	cfg.ActivitiesPath = writeTempSamples(t, steadyWatts(60, 200))
	ctx := context.Background()

	output, duration, err := GetActivityResults(ctx, cfg)

	require.NoError(t, err)
	assert.Positive(t, duration)

	metrics := output.Metrics
	assert.InDelta(t, 200.0, metrics.AvgPower, 1e-9)
	assert.InDelta(t, 200.0, metrics.NormalizedPower, 1e-9)
	assert.InDelta(t, 1.0, metrics.IntensityFactor, 1e-9)
	assert.InDelta(t, 2.0, metrics.TSS, 1e-9) // one minute at FTP
	assert.InDelta(t, 12.0, metrics.Kilojoules, 1e-9)
	assert.InDelta(t, 60.0, metrics.DurationSeconds, 1e-9)
	assert.Equal(t, 60, metrics.SampleCount)
	assert.False(t, metrics.UsedAvgPowerFallback)
	assert.Nil(t, output.Zones)
}

// TestGetActivityResultsShortStream verifies the average-power fallback
// for streams too short for a rolling NP.
func TestGetActivityResultsShortStream(t *testing.T) {
	cfg := cachingConfig(t)
	cfg.ActivitiesPath = writeTempSamples(t, steadyWatts(10, 250))
	ctx := context.Background()

	output, _, err := GetActivityResults(ctx, cfg)

	require.NoError(t, err)
	assert.True(t, output.Metrics.UsedAvgPowerFallback)
	assert.InDelta(t, 250.0, output.Metrics.NormalizedPower, 1e-9)
	assert.InDelta(t, 0.0, output.Metrics.TSS, 1e-9)
}

// TestGetActivityResultsShowZones verifies the zone split for a steady
// tempo ride.
func TestGetActivityResultsShowZones(t *testing.T) {
	cfg := cachingConfig(t)
	cfg.ActivitiesPath = writeTempSamples(t, steadyWatts(60, 200)) // 0.8 of the 250W FTP
	cfg.ShowZones = true
	ctx := context.Background()

	output, _, err := GetActivityResults(ctx, cfg)

	require.NoError(t, err)
	require.NotNil(t, output.Zones)
	assert.InDelta(t, 60.0, output.Zones.TotalSeconds, 1e-9)

	require.Len(t, output.Zones.Zones, 7)
	tempo := output.Zones.Zones[2]
	assert.Equal(t, "Tempo", tempo.Zone.Name)
	assert.InDelta(t, 60.0, tempo.Seconds, 1e-9)
	assert.InDelta(t, 100.0, tempo.Percentage, 1e-9)
}

// TestGetActivityResultsMissingFile verifies the boundary error path.
func TestGetActivityResultsMissingFile(t *testing.T) {
	cfg := cachingConfig(t)
	cfg.ActivitiesPath = filepath.Join(t.TempDir(), "absent.json")
	ctx := context.Background()

	_, _, err := GetActivityResults(ctx, cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading samples file")
}

func TestExecuteActivityMissingFile(t *testing.T) {
	cfg := cachingConfig(t)
	cfg.ActivitiesPath = filepath.Join(t.TempDir(), "absent.json")

	assert.Error(t, ExecuteActivity(context.Background(), cfg))
}
