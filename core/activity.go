package core

import (
	"context"
	"time"

	"github.com/peakform/peakform/core/pmc"
	"github.com/peakform/peakform/internal/contract"
	"github.com/peakform/peakform/internal/outwriter"
	"github.com/peakform/peakform/schema"
)

// GetActivityResults computes the power metrics for one raw ride from its
// sample stream, with a time-in-zones breakdown when requested.
func GetActivityResults(ctx context.Context, cfg *contract.Config) (schema.ActivityOutput, time.Duration, error) {
	start := time.Now()

	samples, err := contract.LoadPowerSamples(cfg.ActivitiesPath)
	if err != nil {
		return schema.ActivityOutput{}, 0, err
	}

	metrics, err := pmc.MetricsFromSamples(samples, cfg.FTP)
	if err != nil {
		return schema.ActivityOutput{}, 0, err
	}
	output := schema.ActivityOutput{Metrics: metrics}

	if cfg.ShowZones {
		dist, err := pmc.TimeInZones(cfg.ZoneModel, segmentsFromSamples(samples, cfg.FTP))
		if err != nil {
			return schema.ActivityOutput{}, 0, err
		}
		output.Zones = &dist
	}

	return output, time.Since(start), nil
}

// ExecuteActivity runs the single-activity analysis and prints results to
// stdout. It serves as the main entry point for the 'activity' command.
func ExecuteActivity(ctx context.Context, cfg *contract.Config) error {
	output, duration, err := GetActivityResults(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.PrintActivityResults(output, cfg, duration)
}

// segmentsFromSamples converts a raw stream into per-sample efforts for
// zone classification. Sample spacing is taken from the offsets, one
// second when unknown.
func segmentsFromSamples(samples []schema.PowerSample, ftp float64) []schema.WorkoutSegment {
	interval := 1.0
	if len(samples) > 1 && samples[1].OffsetSeconds > samples[0].OffsetSeconds {
		interval = float64(samples[1].OffsetSeconds - samples[0].OffsetSeconds)
	}

	segments := make([]schema.WorkoutSegment, len(samples))
	for i, s := range samples {
		segments[i] = schema.WorkoutSegment{DurationSeconds: interval, PowerFraction: s.Watts / ftp}
	}
	return segments
}
