package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/peakform/peakform/internal/contract"
	"github.com/peakform/peakform/internal/iocache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const seriesActivities = `[
	{"date": "2025-03-10T08:00:00Z", "duration_seconds": 3600, "tss": 100},
	{"date": "2025-03-11T08:00:00Z", "duration_seconds": 1800, "tss": 50}
]`

func writeTempActivities(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activities.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func seriesConfig(t *testing.T, content string) *contract.Config {
	t.Helper()
	cfg := cachingConfig(t)
	cfg.ActivitiesPath = writeTempActivities(t, content)
	return cfg
}

func nilStoreManager() *iocache.MockCacheManager {
	mgr := &iocache.MockCacheManager{}
	mgr.On("GetSeriesStore").Return(nil)
	mgr.On("GetHistoryStore").Return(nil)
	return mgr
}

// TestGetSeriesResults verifies the roll-up and build over a real file.
func TestGetSeriesResults(t *testing.T) {
	cfg := seriesConfig(t, seriesActivities)
	ctx := WithSuppressOutput(context.Background())

	series, duration, err := GetSeriesResults(ctx, cfg, nilStoreManager())

	require.NoError(t, err)
	assert.Positive(t, duration)
	require.Len(t, series.Days, 3)

	assert.InDelta(t, 100.0, series.Days[0].DailyTSS, 1e-9)
	assert.InDelta(t, 13.3122, series.Days[0].ATL, 0.001)
	assert.InDelta(t, 2.3528, series.Days[0].CTL, 0.001)
	assert.Zero(t, series.Days[0].TSB)

	assert.InDelta(t, 50.0, series.Days[1].DailyTSS, 1e-9)
	assert.InDelta(t, -10.9594, series.Days[1].TSB, 0.001)

	assert.InDelta(t, 0.0, series.Days[2].DailyTSS, 1e-9)
	assert.InDelta(t, 150.0, series.Days[2].WeeklyTSS, 1e-9)
}

// TestGetSeriesResultsRecordsHistory verifies the run tracking calls around
// a successful build.
func TestGetSeriesResultsRecordsHistory(t *testing.T) {
	cfg := seriesConfig(t, seriesActivities)
	ctx := WithSuppressOutput(context.Background())

	hist := &iocache.MockHistoryStore{}
	hist.On("BeginRun",
		mock.MatchedBy(func(key string) bool { return key != "" }),
		mock.Anything, mock.Anything, mock.Anything, mock.Anything,
	).Return(nil)
	hist.On("RecordDailyLoads", mock.Anything, mock.Anything).Return(nil)
	hist.On("EndRun", mock.Anything, mock.Anything, 2, 150.0).Return(nil)

	mgr := &iocache.MockCacheManager{}
	mgr.On("GetSeriesStore").Return(nil)
	mgr.On("GetHistoryStore").Return(hist)

	_, _, err := GetSeriesResults(ctx, cfg, mgr)

	require.NoError(t, err)
	hist.AssertExpectations(t)
}

// TestGetSeriesResultsHistoryFailure verifies that run tracking problems
// never fail the build itself.
func TestGetSeriesResultsHistoryFailure(t *testing.T) {
	cfg := seriesConfig(t, seriesActivities)
	ctx := WithSuppressOutput(context.Background())

	hist := &iocache.MockHistoryStore{}
	hist.On("BeginRun", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("history db down"))

	mgr := &iocache.MockCacheManager{}
	mgr.On("GetSeriesStore").Return(nil)
	mgr.On("GetHistoryStore").Return(hist)

	series, _, err := GetSeriesResults(ctx, cfg, mgr)

	require.NoError(t, err)
	assert.Len(t, series.Days, 3)
	hist.AssertNotCalled(t, "RecordDailyLoads", mock.Anything, mock.Anything)
	hist.AssertNotCalled(t, "EndRun", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestGetSeriesResultsMissingFile verifies the boundary error path.
func TestGetSeriesResultsMissingFile(t *testing.T) {
	cfg := cachingConfig(t)
	cfg.ActivitiesPath = filepath.Join(t.TempDir(), "absent.json")
	ctx := WithSuppressOutput(context.Background())

	_, _, err := GetSeriesResults(ctx, cfg, nilStoreManager())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading activities file")
}

// TestExecuteSeriesMissingFile verifies that the wrapper surfaces load
// errors.
func TestExecuteSeriesMissingFile(t *testing.T) {
	cfg := cachingConfig(t)
	cfg.ActivitiesPath = filepath.Join(t.TempDir(), "absent.json")
	ctx := WithSuppressOutput(context.Background())

	err := ExecuteSeries(ctx, cfg, nilStoreManager())

	assert.Error(t, err)
}

func TestGenerateRunKey(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	key := generateRunKey(start)

	assert.Len(t, key, 24)
	assert.True(t, strings.HasPrefix(key, "20250310T090000-"))
	assert.NotEqual(t, key, generateRunKey(start))
}
