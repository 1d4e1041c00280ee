package iocache

import (
	"testing"
	"time"

	"github.com/peakform/peakform/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDailyLoads(runKey string, start time.Time, n int) []schema.DailyLoadRecord {
	loads := make([]schema.DailyLoadRecord, n)
	for i := range loads {
		loads[i] = schema.DailyLoadRecord{
			RunKey:    runKey,
			Date:      start.AddDate(0, 0, i),
			DailyTSS:  float64(50 + i*10),
			ATL:       float64(10 + i),
			CTL:       float64(5 + i),
			TSB:       float64(-i),
			WeeklyTSS: float64(100 + i*10),
			Form:      string(schema.FormNeutral),
		}
	}
	return loads
}

func TestHistoryStore_NoneBackend(t *testing.T) {
	store, err := NewHistoryStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	// Operations should all be no-ops
	err = store.BeginRun("run-1", time.Now(), time.Now(), time.Now(), map[string]any{"test": "value"})
	assert.NoError(t, err)

	err = store.EndRun("run-1", time.Now(), 10, 500.0)
	assert.NoError(t, err)

	err = store.RecordDailyLoads("run-1", sampleDailyLoads("run-1", time.Now(), 3))
	assert.NoError(t, err)

	runs, err := store.GetAllRuns()
	assert.NoError(t, err)
	assert.Empty(t, runs)

	loads, err := store.GetAllDailyLoads()
	assert.NoError(t, err)
	assert.Empty(t, loads)

	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.False(t, status.Connected)

	err = store.Clear()
	assert.NoError(t, err)

	err = store.Close()
	assert.NoError(t, err)
}

func TestHistoryStore_SQLite(t *testing.T) {
	// Use in-memory SQLite for testing
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	startTime := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	windowStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	configParams := map[string]any{
		"ftp":      250.0,
		"lookback": "90 days",
	}

	// Test BeginRun
	err = store.BeginRun("20250310T090000-abc12345", startTime, windowStart, windowEnd, configParams)
	require.NoError(t, err)

	// Test RecordDailyLoads
	loads := sampleDailyLoads("20250310T090000-abc12345", windowStart, 10)
	err = store.RecordDailyLoads("20250310T090000-abc12345", loads)
	assert.NoError(t, err)

	// Test EndRun
	endTime := startTime.Add(1500 * time.Millisecond)
	err = store.EndRun("20250310T090000-abc12345", endTime, 7, 620.5)
	assert.NoError(t, err)

	// Verify the run round-trips
	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, "20250310T090000-abc12345", run.RunKey)
	assert.True(t, run.StartTime.Equal(startTime), "start time should round-trip")
	assert.True(t, run.WindowStart.Equal(windowStart), "window start should round-trip")
	assert.True(t, run.WindowEnd.Equal(windowEnd), "window end should round-trip")
	require.NotNil(t, run.EndTime)
	assert.True(t, run.EndTime.Equal(endTime), "end time should round-trip")
	require.NotNil(t, run.RunDurationMs)
	assert.Equal(t, int32(1500), *run.RunDurationMs)
	assert.Equal(t, int32(7), run.ActivityCount)
	assert.Equal(t, 620.5, run.TotalTSS)
	require.NotNil(t, run.ConfigParams)
	assert.Contains(t, *run.ConfigParams, "ftp")
}

func TestHistoryStore_GetAllDailyLoads(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	// Test empty store
	loads, err := store.GetAllDailyLoads()
	assert.NoError(t, err)
	assert.Empty(t, loads)

	windowStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	err = store.BeginRun("run-loads", time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), windowStart, windowStart.AddDate(0, 0, 2), nil)
	require.NoError(t, err)

	recorded := sampleDailyLoads("run-loads", windowStart, 3)
	err = store.RecordDailyLoads("run-loads", recorded)
	require.NoError(t, err)

	// Empty slices are a no-op
	err = store.RecordDailyLoads("run-loads", nil)
	assert.NoError(t, err)

	loads, err = store.GetAllDailyLoads()
	require.NoError(t, err)
	require.Len(t, loads, 3)

	for i, load := range loads {
		assert.Equal(t, "run-loads", load.RunKey)
		assert.True(t, load.Date.Equal(recorded[i].Date), "date should round-trip")
		assert.Equal(t, recorded[i].DailyTSS, load.DailyTSS)
		assert.Equal(t, recorded[i].ATL, load.ATL)
		assert.Equal(t, recorded[i].CTL, load.CTL)
		assert.Equal(t, recorded[i].TSB, load.TSB)
		assert.Equal(t, recorded[i].WeeklyTSS, load.WeeklyTSS)
		assert.Equal(t, recorded[i].Form, load.Form)
	}
}

func TestHistoryStore_DuplicateRunKey(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	err = store.BeginRun("dup-key", now, now, now, nil)
	require.NoError(t, err)

	// Run keys are primary keys, so a repeat insert must fail
	err = store.BeginRun("dup-key", now.Add(time.Minute), now, now, nil)
	assert.Error(t, err)
}

func TestHistoryStore_EndRunMissingKey(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	err = store.EndRun("never-started", time.Now(), 1, 100.0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "never-started")
}

func TestHistoryStore_MultipleRuns(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	runKeys := []string{"run-a", "run-b", "run-c"}
	for i, key := range runKeys {
		start := base.Add(time.Duration(i) * time.Hour)
		err := store.BeginRun(key, start, base, base.AddDate(0, 0, 7), map[string]any{"run": i})
		require.NoError(t, err)

		err = store.RecordDailyLoads(key, sampleDailyLoads(key, base, 2))
		require.NoError(t, err)

		err = store.EndRun(key, start.Add(time.Second), i+1, float64(100*(i+1)))
		assert.NoError(t, err)
	}

	// Runs come back oldest first
	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 3)
	for i, run := range runs {
		assert.Equal(t, runKeys[i], run.RunKey)
		assert.Equal(t, int32(i+1), run.ActivityCount)
	}
}

func TestHistoryStore_GetStatus(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	// Empty store
	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, 0, status.TotalRuns)
	assert.Equal(t, int64(0), status.TableSizes[runsTable])
	assert.Equal(t, int64(0), status.TableSizes[dailyLoadsTable])

	// Two runs, the later one becomes the last run
	first := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)
	windowStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	err = store.BeginRun("run-old", first, windowStart, first, nil)
	require.NoError(t, err)
	err = store.RecordDailyLoads("run-old", sampleDailyLoads("run-old", windowStart, 4))
	require.NoError(t, err)

	err = store.BeginRun("run-new", second, windowStart, second, nil)
	require.NoError(t, err)
	err = store.RecordDailyLoads("run-new", sampleDailyLoads("run-new", windowStart, 3))
	require.NoError(t, err)

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalRuns)
	assert.Equal(t, "run-new", status.LastRunKey)
	assert.True(t, status.LastRunTime.Equal(second), "last run time should be the later start")
	assert.True(t, status.OldestRunTime.Equal(first), "oldest run time should be the earlier start")
	assert.Equal(t, 7, status.TotalDaysRecorded)
	assert.Equal(t, int64(2), status.TableSizes[runsTable])
	assert.Equal(t, int64(7), status.TableSizes[dailyLoadsTable])
}

func TestHistoryStore_Clear(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	err = store.BeginRun("run-clear", now, now, now, nil)
	require.NoError(t, err)
	err = store.RecordDailyLoads("run-clear", sampleDailyLoads("run-clear", now, 5))
	require.NoError(t, err)

	err = store.Clear()
	assert.NoError(t, err)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 0, status.TotalRuns)
	assert.Equal(t, int64(0), status.TableSizes[runsTable])
	assert.Equal(t, int64(0), status.TableSizes[dailyLoadsTable])

	// Cleared tables accept new rows
	err = store.BeginRun("run-clear", now, now, now, nil)
	assert.NoError(t, err)
}

func TestHistoryStore_RuntimeCapture(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	t.Run("runtime calculation", func(t *testing.T) {
		startTime := time.Now().Add(-100 * time.Millisecond)
		err := store.BeginRun("run-duration", startTime, startTime, startTime, nil)
		require.NoError(t, err)

		endTime := time.Now()
		err = store.EndRun("run-duration", endTime, 1, 50.0)
		assert.NoError(t, err)

		// Query the database to verify runtime was captured
		db := store.(*HistoryStoreImpl).db
		var storedDurationMs int64
		row := db.QueryRow("SELECT run_duration_ms FROM peakform_runs WHERE run_key = ?", "run-duration")
		err = row.Scan(&storedDurationMs)
		assert.NoError(t, err)

		// Should be around 100ms plus test overhead
		assert.GreaterOrEqual(t, storedDurationMs, int64(100))
		assert.LessOrEqual(t, storedDurationMs, int64(1000))
	})

	t.Run("zero duration edge case", func(t *testing.T) {
		startTime := time.Now()
		err := store.BeginRun("run-zero", startTime, startTime, startTime, nil)
		require.NoError(t, err)

		// End immediately with same time
		err = store.EndRun("run-zero", startTime, 1, 10.0)
		assert.NoError(t, err)

		db := store.(*HistoryStoreImpl).db
		var storedDurationMs int64
		row := db.QueryRow("SELECT run_duration_ms FROM peakform_runs WHERE run_key = ?", "run-zero")
		err = row.Scan(&storedDurationMs)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), storedDurationMs)
	})
}

func TestNewHistoryStoreErrors(t *testing.T) {
	t.Run("unsupported backend", func(t *testing.T) {
		_, err := NewHistoryStore("garbage", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported backend")
	})
}
