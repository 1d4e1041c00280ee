package core

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/peakform/peakform/internal/contract"
	"github.com/peakform/peakform/internal/outwriter"
	"github.com/peakform/peakform/schema"
)

// runSeriesCore performs the common Load, Roll-up and Build steps shared by
// every command that needs a training load series.
func runSeriesCore(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (*schema.SeriesBuildOutput, error) {
	if !shouldSuppressOutput(ctx) {
		contract.LogRunHeader(cfg)
	}

	records, err := contract.LoadActivities(cfg.ActivitiesPath)
	if err != nil {
		return nil, err
	}
	inWindow := filterWindow(cfg, records)

	// --- 0. Begin Run Tracking (if configured) ---
	var runKey string
	history := mgr.GetHistoryStore()
	if history != nil {
		startTime := time.Now()
		runKey = generateRunKey(startTime)
		configParams := map[string]any{
			"activities_path": cfg.ActivitiesPath,
			"ftp":             cfg.FTP,
			"lookback":        cfg.Lookback.String(),
			"workers":         cfg.Workers,
			"result_limit":    cfg.ResultLimit,
		}
		if err := history.BeginRun(runKey, startTime, cfg.GetWindowStart(), cfg.GetWindowEnd(), configParams); err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
			runKey = ""
		}
	}

	// --- 1. Roll-up Phase ---
	daily := rollUpActivities(cfg, inWindow)

	// --- 2. Series Build (with caching) ---
	series, err := cachedBuildSeries(cfg, mgr, daily)
	if err != nil {
		return nil, err
	}

	// --- 3. End Run Tracking ---
	if history != nil && runKey != "" {
		if err := history.RecordDailyLoads(runKey, schema.DailyLoadRecordsFromSeries(runKey, series)); err != nil {
			contract.LogWarn("Failed to record daily loads", err)
		}
		if err := history.EndRun(runKey, time.Now(), len(inWindow), totalTSS(daily)); err != nil {
			contract.LogWarn("Failed to finalize run tracking", err)
		}
	}

	return &schema.SeriesBuildOutput{
		Series:        series,
		ActivityCount: len(inWindow),
		TotalTSS:      totalTSS(daily),
	}, nil
}

// GetSeriesResults rolls the activity file up to daily stress totals and
// builds the training load series for the configured window.
func GetSeriesResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.TrainingLoadSeries, time.Duration, error) {
	start := time.Now()
	output, err := runSeriesCore(ctx, cfg, mgr)
	if err != nil {
		return schema.TrainingLoadSeries{}, 0, err
	}
	return output.Series, time.Since(start), nil
}

// ExecuteSeries runs the series build and prints results to stdout.
// It serves as the main entry point for the 'series' command.
func ExecuteSeries(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	series, duration, err := GetSeriesResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintSeriesResults(series, cfg, duration)
}

// generateRunKey produces a unique key for one recorded run. Keys embed the
// wall clock so rows sort naturally in ad hoc queries.
func generateRunKey(startTime time.Time) string {
	var suffix [4]byte
	_, _ = rand.Read(suffix[:])
	return fmt.Sprintf("%s-%x", startTime.UTC().Format("20060102T150405"), suffix)
}
