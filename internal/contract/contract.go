// Package contract provides interfaces and shared utilities for peakform's
// internal architecture.
package contract

import (
	"time"

	"github.com/peakform/peakform/schema"
)

// CacheManager defines the interface for managing the series cache and the
// history store. This allows the storage layer to be mocked for testing.
type CacheManager interface {
	GetSeriesStore() CacheStore
	GetHistoryStore() HistoryStore
}

// CacheStore defines the interface for cached series storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	Clear() error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// HistoryStore defines the interface for recording series builds and their
// daily rows.
type HistoryStore interface {
	// BeginRun inserts a new run row. Run keys are generated by the caller
	// so the same schema works across SQL dialects without auto-increment
	// columns.
	BeginRun(runKey string, startTime time.Time, windowStart, windowEnd time.Time, configParams map[string]any) error

	// EndRun completes the run row with timing and totals.
	EndRun(runKey string, endTime time.Time, activityCount int, totalTSS float64) error

	// RecordDailyLoads stores the daily rows computed during a run.
	RecordDailyLoads(runKey string, loads []schema.DailyLoadRecord) error

	// GetAllRuns returns every recorded run, oldest first.
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllDailyLoads returns every recorded daily row, oldest first.
	GetAllDailyLoads() ([]schema.DailyLoadRecord, error)

	// GetStatus returns status information about the history store.
	GetStatus() (schema.HistoryStatus, error)

	// Clear removes all recorded runs and daily rows.
	Clear() error

	// Close closes the underlying connection.
	Close() error
}
