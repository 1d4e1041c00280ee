package core

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/peakform/peakform/core/pmc"
	"github.com/peakform/peakform/internal/contract"
	"github.com/peakform/peakform/schema"
)

// currentCacheVersion defines the version of the cache schema
const currentCacheVersion = 1

// cacheMaxAge bounds how long a cached series remains servable.
const cacheMaxAge = 7 * 24 * time.Hour

// cachedBuildSeries builds the load series for the window, reusing a cached
// result when the inputs are unchanged.
func cachedBuildSeries(cfg *contract.Config, mgr contract.CacheManager, daily map[time.Time]float64) (schema.TrainingLoadSeries, error) {
	store := mgr.GetSeriesStore()
	if store == nil {
		// Fallback to direct computation
		return buildSeries(cfg, daily)
	}

	key := generateCacheKey(cfg)

	// Check for cache hit
	if series, ok := checkCacheHit(store, key); ok {
		return series, nil
	}

	// Cache miss: compute and store
	return computeAndStore(cfg, store, key, daily)
}

// checkCacheHit attempts to retrieve and validate a cached series
func checkCacheHit(store contract.CacheStore, key string) (schema.TrainingLoadSeries, bool) {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return schema.TrainingLoadSeries{}, false // Cache miss
	}

	// Validate version and staleness
	if version == currentCacheVersion {
		entryTimestamp := time.Unix(ts, 0)
		if time.Since(entryTimestamp) <= cacheMaxAge {
			var series schema.TrainingLoadSeries
			if err := json.Unmarshal(data, &series); err == nil {
				return series, true // Cache hit
			}
		}
	}

	return schema.TrainingLoadSeries{}, false // Cache miss (stale or version mismatch)
}

// computeAndStore computes the series and stores it in cache
func computeAndStore(cfg *contract.Config, store contract.CacheStore, key string, daily map[time.Time]float64) (schema.TrainingLoadSeries, error) {
	series, err := buildSeries(cfg, daily)
	if err != nil {
		return schema.TrainingLoadSeries{}, err
	}

	// Store in cache
	if data, err := json.Marshal(series); err == nil {
		_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
	}

	return series, nil
}

// buildSeries runs the load engine over the daily roll-up for the
// configured window.
func buildSeries(cfg *contract.Config, daily map[time.Time]float64) (schema.TrainingLoadSeries, error) {
	return pmc.BuildSeries(daily, cfg.GetWindowStart(), cfg.GetWindowEnd(), pmc.BuildOptions{
		Constants:  cfg.TimeConstants,
		Thresholds: cfg.FormThresholds,
	})
}

// generateCacheKey creates a unique key based on everything that shapes the
// series: the activity data itself, the FTP, the window and the load math
// parameters.
func generateCacheKey(cfg *contract.Config) string {
	// Use canonical helpers from contract.Config to ensure consistent time granularity
	startDay := cfg.GetWindowStart()
	endDay := cfg.GetWindowEnd()

	// Include the file content hash to invalidate cache when activity data changes
	fileHash := hashActivitiesFile(cfg.ActivitiesPath)

	key := fmt.Sprintf("%s:%.1f:%s:%d:%d:%v:%v",
		fileHash,
		cfg.FTP,
		cfg.ZoneModel.Name,
		startDay.Unix(),
		endDay.Unix(),
		cfg.TimeConstants,
		cfg.FormThresholds,
	)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}

// hashActivitiesFile fingerprints the activity file content so edits
// invalidate cached series built from older data.
func hashActivitiesFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%x", sha256.Sum256(data))
}
