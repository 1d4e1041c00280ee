package core

import (
	"context"
	"time"

	"github.com/peakform/peakform/core/pmc"
	"github.com/peakform/peakform/internal/contract"
	"github.com/peakform/peakform/internal/outwriter"
	"github.com/peakform/peakform/schema"
)

// GetTrendResults builds the load series and compares the most recent
// window of it against the one before.
func GetTrendResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.TrendResult, time.Duration, error) {
	start := time.Now()

	output, err := runSeriesCore(ctx, cfg, mgr)
	if err != nil {
		return schema.TrendResult{}, 0, err
	}

	result, err := pmc.AnalyzeTrend(output.Series, cfg.TrendWindow, cfg.TrendPolicy)
	if err != nil {
		return schema.TrendResult{}, 0, err
	}

	return result, time.Since(start), nil
}

// ExecuteTrend runs the trend analysis and prints results to stdout.
// It serves as the main entry point for the 'trend' command.
func ExecuteTrend(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	result, duration, err := GetTrendResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintTrendResults(result, cfg, duration)
}
