package core

import (
	"sync"
	"time"

	"github.com/peakform/peakform/core/pmc"
	"github.com/peakform/peakform/internal/contract"
	"github.com/peakform/peakform/schema"
)

// activityEffort is one activity reduced to the day it lands on and the
// stress it contributed.
type activityEffort struct {
	day time.Time
	tss float64
}

// filterWindow keeps the records whose day falls inside the configured
// window, bounds inclusive.
func filterWindow(cfg *contract.Config, records []schema.ActivityRecord) []schema.ActivityRecord {
	start := cfg.GetWindowStart()
	end := cfg.GetWindowEnd()

	kept := make([]schema.ActivityRecord, 0, len(records))
	for _, r := range records {
		day := r.Day()
		if day.Before(start) || day.After(end) {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// rollUpActivities reduces activity records to per-day stress totals using
// a worker pool. It spawns cfg.Workers goroutines to recompute activity
// scores concurrently; several activities on one day accumulate.
func rollUpActivities(cfg *contract.Config, records []schema.ActivityRecord) map[time.Time]float64 {
	// Initialize channels based on the final number of records to be processed.
	recordCh := make(chan schema.ActivityRecord, len(records))
	effortCh := make(chan activityEffort, len(records))
	var wg sync.WaitGroup

	// Start worker pool
	for range cfg.Workers {
		wg.Go(func() {
			for r := range recordCh {
				effortCh <- activityEffort{day: r.Day(), tss: activityTSS(cfg, r)}
			}
		})
	}

	// Send records to worker channel
	for _, r := range records {
		recordCh <- r
	}
	close(recordCh)

	// Wait for all workers to finish processing
	wg.Wait()
	close(effortCh)

	daily := make(map[time.Time]float64, len(records))
	for e := range effortCh {
		daily[e.day] += e.tss
	}
	return daily
}

// activityTSS recomputes one activity's stress score. Stored values are
// trusted least: raw samples win, then stored normalized power, then stored
// average power with the fallback adjustment, then the stored score itself.
func activityTSS(cfg *contract.Config, r schema.ActivityRecord) float64 {
	ftp := r.FTPAtTime
	if ftp == 0 {
		ftp = cfg.FTP
	}

	if len(r.Samples) > 0 {
		// Short streams are discounted inside the sample math, so a
		// present stream always wins over the stored fields.
		if m, err := pmc.MetricsFromSamples(r.Samples, ftp); err == nil {
			return m.TSS
		}
	}
	if r.NormalizedPower != nil {
		if tss, err := pmc.TrainingStressScore(*r.NormalizedPower, ftp, r.DurationSeconds, false); err == nil {
			return tss
		}
	}
	if r.AvgPower != nil {
		if tss, err := pmc.TrainingStressScore(*r.AvgPower, ftp, r.DurationSeconds, true); err == nil {
			return tss
		}
	}
	if r.TSS != nil {
		return *r.TSS
	}
	return 0
}

// totalTSS sums the daily roll-up.
func totalTSS(daily map[time.Time]float64) float64 {
	var total float64
	for _, tss := range daily {
		total += tss
	}
	return total
}
