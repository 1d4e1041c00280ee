package core

import (
	"context"
	"errors"
	"time"

	"github.com/peakform/peakform/core/pmc"
	"github.com/peakform/peakform/internal/contract"
	"github.com/peakform/peakform/internal/outwriter"
	"github.com/peakform/peakform/schema"
)

// GetCompareResults builds one series spanning the baseline and target
// windows and computes the per-metric deltas between them.
func GetCompareResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.ComparisonResult, time.Duration, error) {
	start := time.Now()

	if !cfg.CompareMode {
		return schema.ComparisonResult{}, 0, errors.New("compare requires --baseline or explicit window bounds")
	}

	// Print single header for the comparison
	if !shouldSuppressOutput(ctx) {
		contract.LogCompareHeader(cfg)
	}

	// One build covers both windows; the inner run header is always
	// suppressed in compare mode.
	spanStart := cfg.BaselineStart
	if cfg.TargetStart.Before(spanStart) {
		spanStart = cfg.TargetStart
	}
	spanEnd := cfg.TargetEnd
	if cfg.BaselineEnd.After(spanEnd) {
		spanEnd = cfg.BaselineEnd
	}
	spanCfg := cfg.CloneWithWindow(spanStart, spanEnd)

	output, err := runSeriesCore(WithSuppressOutput(ctx), spanCfg, mgr)
	if err != nil {
		return schema.ComparisonResult{}, 0, err
	}

	result, err := pmc.CompareWindows(output.Series, cfg.BaselineStart, cfg.BaselineEnd, cfg.TargetStart, cfg.TargetEnd)
	if err != nil {
		return schema.ComparisonResult{}, 0, err
	}

	return result, time.Since(start), nil
}

// ExecuteCompare runs the two-window comparison and prints results to
// stdout. It serves as the main entry point for the 'compare' command.
func ExecuteCompare(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	result, duration, err := GetCompareResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintCompareResults(result, cfg, duration)
}
