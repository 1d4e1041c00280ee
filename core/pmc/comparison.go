package pmc

import (
	"math"
	"time"

	"github.com/peakform/peakform/schema"
)

// A day counts as rest when its stress stays under this.
const restDayTSSCeiling = 10.0

// SummarizeWindow condenses the slice of a series between start and end
// inclusive into window statistics. Both bounds must fall inside the
// series range.
func SummarizeWindow(series schema.TrainingLoadSeries, start, end time.Time) (schema.WindowStats, error) {
	startDay := schema.Day(start)
	endDay := schema.Day(end)
	if startDay.After(endDay) {
		return schema.WindowStats{}, &InvalidArgumentError{Field: "start", Reason: "must not be after end"}
	}
	if startDay.Before(series.Start) || endDay.After(series.End) {
		return schema.WindowStats{}, &InvalidArgumentError{Field: "window", Reason: "outside the series range"}
	}
	if len(series.Days) != schema.DaySpan(series.Start, series.End) {
		return schema.WindowStats{}, &InvalidArgumentError{Field: "series", Reason: "days do not match the series date range"}
	}

	lo := schema.DaySpan(series.Start, startDay) - 1
	hi := schema.DaySpan(series.Start, endDay) // exclusive
	window := series.Days[lo:hi]

	stats := schema.WindowStats{
		Start: startDay,
		End:   endDay,
		Days:  len(window),
	}
	var atl, ctl, tsb float64
	for _, day := range window {
		stats.TotalTSS += day.DailyTSS
		atl += day.ATL
		ctl += day.CTL
		tsb += day.TSB
		if day.DailyTSS < restDayTSSCeiling {
			stats.RestDays++
		}
	}
	n := float64(stats.Days)
	stats.AvgDailyTSS = stats.TotalTSS / n
	stats.AvgATL = atl / n
	stats.AvgCTL = ctl / n
	stats.AvgTSB = tsb / n
	stats.EndCTL = window[len(window)-1].CTL
	return stats, nil
}

// CompareWindows summarizes two windows of the same series and lays their
// headline metrics side by side. The percentage delta is taken against
// the magnitude of the baseline so a negative baseline TSB keeps the sign
// of the change readable, and stays zero for a zero baseline.
func CompareWindows(series schema.TrainingLoadSeries, baselineStart, baselineEnd, targetStart, targetEnd time.Time) (schema.ComparisonResult, error) {
	baseline, err := SummarizeWindow(series, baselineStart, baselineEnd)
	if err != nil {
		return schema.ComparisonResult{}, err
	}
	target, err := SummarizeWindow(series, targetStart, targetEnd)
	if err != nil {
		return schema.ComparisonResult{}, err
	}

	pairs := []struct {
		metric   string
		base, tg float64
	}{
		{"total_tss", baseline.TotalTSS, target.TotalTSS},
		{"avg_daily_tss", baseline.AvgDailyTSS, target.AvgDailyTSS},
		{"avg_atl", baseline.AvgATL, target.AvgATL},
		{"avg_ctl", baseline.AvgCTL, target.AvgCTL},
		{"avg_tsb", baseline.AvgTSB, target.AvgTSB},
		{"end_ctl", baseline.EndCTL, target.EndCTL},
		{"rest_days", float64(baseline.RestDays), float64(target.RestDays)},
	}

	result := schema.ComparisonResult{
		Baseline: baseline,
		Target:   target,
		Details:  make([]schema.ComparisonDetail, 0, len(pairs)),
	}
	for _, p := range pairs {
		detail := schema.ComparisonDetail{
			Metric:   p.metric,
			Baseline: p.base,
			Target:   p.tg,
			Delta:    p.tg - p.base,
		}
		if p.base != 0 {
			detail.DeltaPct = detail.Delta / math.Abs(p.base) * 100
		}
		result.Details = append(result.Details, detail)
	}
	return result, nil
}
