package pmc

import (
	"fmt"

	"github.com/peakform/peakform/schema"
)

// DefaultTrendWindowDays is the comparison window for week-over-week deltas.
const DefaultTrendWindowDays = 7

// PercentDelta compares the average of a metric over the most recent
// windowDays against the preceding windowDays. Too little history for two
// full windows, or a zero preceding average, yields a zero delta rather
// than an error or a NaN; trend output stays advisory.
func PercentDelta(series schema.TrainingLoadSeries, metric schema.TrendMetric, windowDays int) (schema.TrendDelta, error) {
	if _, ok := schema.ValidTrendMetrics[metric]; !ok {
		return schema.TrendDelta{}, &InvalidArgumentError{Field: "metric", Reason: fmt.Sprintf("unknown trend metric %q", metric)}
	}
	if windowDays <= 0 {
		return schema.TrendDelta{}, &InvalidArgumentError{Field: "windowDays", Reason: "must be positive"}
	}

	delta := schema.TrendDelta{Metric: metric}
	n := len(series.Days)
	if n < 2*windowDays {
		return delta, nil
	}

	delta.RecentAvg = meanMetric(series.Days[n-windowDays:], metric)
	delta.PreviousAvg = meanMetric(series.Days[n-2*windowDays:n-windowDays], metric)
	if delta.PreviousAvg != 0 {
		delta.DeltaPct = (delta.RecentAvg - delta.PreviousAvg) / delta.PreviousAvg * 100
	}
	return delta, nil
}

// AnalyzeTrend produces the week-over-week delta for every trend metric
// plus any advisory pattern flags. windowDays at or below zero selects
// the default window.
func AnalyzeTrend(series schema.TrainingLoadSeries, windowDays int, policy schema.TrendPolicy) (schema.TrendResult, error) {
	if windowDays <= 0 {
		windowDays = DefaultTrendWindowDays
	}

	result := schema.TrendResult{
		WindowDays: windowDays,
		Deltas:     make([]schema.TrendDelta, 0, len(schema.AllTrendMetrics)),
	}
	for _, metric := range schema.AllTrendMetrics {
		delta, err := PercentDelta(series, metric, windowDays)
		if err != nil {
			return schema.TrendResult{}, err
		}
		result.Deltas = append(result.Deltas, delta)
	}
	result.Flags = DetectFlags(series, policy)
	return result, nil
}

// DetectFlags scans a series for risky load patterns. Flags are advisory
// output, never an error: a short or empty series simply produces none.
func DetectFlags(series schema.TrainingLoadSeries, policy schema.TrendPolicy) []schema.TrendFlag {
	// Detraining tunables: the lookback over which chronic load must be
	// falling, and the mean daily stress below which the athlete counts
	// as effectively off the bike.
	const (
		detrainingLookbackDays = 14
		restingDailyTSSMean    = 10.0
	)

	var flags []schema.TrendFlag
	days := series.Days
	n := len(days)

	// --- Ramp rate ---
	// Chronic load climbing faster than the policy allows over a trailing
	// week. Needs the day seven days before the last one as a baseline.
	if n > weeklyWindowDays {
		rise := days[n-1].CTL - days[n-1-weeklyWindowDays].CTL
		if rise > policy.MaxWeeklyRamp {
			flags = append(flags, schema.TrendFlag{
				Name:   schema.FlagRampRateTooSteep,
				Detail: fmt.Sprintf("CTL rose %.1f over the last %d days (limit %.1f)", rise, weeklyWindowDays, policy.MaxWeeklyRamp),
				Since:  days[n-weeklyWindowDays].Date,
			})
		}
	}

	// --- Negative balance streak ---
	// Trailing run of days with TSB under the floor. Only an unbroken
	// streak reaching into the latest day counts.
	streak := 0
	for i := n - 1; i >= 0 && days[i].TSB < policy.TSBFloor; i-- {
		streak++
	}
	if policy.StreakDays > 0 && streak >= policy.StreakDays {
		flags = append(flags, schema.TrendFlag{
			Name:   schema.FlagNegativeBalanceStreak,
			Detail: fmt.Sprintf("TSB below %.1f for %d consecutive days", policy.TSBFloor, streak),
			Since:  days[n-streak].Date,
		})
	}

	// --- Detraining ---
	// Chronic load falling across the lookback with almost no stress
	// coming in. Distinguishes a taper (falling CTL, real workouts) from
	// time fully off the bike.
	if n > detrainingLookbackDays {
		baseline := days[n-1-detrainingLookbackDays].CTL
		drop := baseline - days[n-1].CTL
		if drop > 0 && meanMetric(days[n-detrainingLookbackDays:], schema.MetricDailyTSS) < restingDailyTSSMean {
			flags = append(flags, schema.TrendFlag{
				Name:   schema.FlagDetraining,
				Detail: fmt.Sprintf("CTL fell %.1f over the last %d days with minimal training stress", drop, detrainingLookbackDays),
				Since:  days[n-detrainingLookbackDays].Date,
			})
		}
	}

	return flags
}

func meanMetric(days []schema.DailyTrainingLoad, metric schema.TrendMetric) float64 {
	if len(days) == 0 {
		return 0
	}
	var sum float64
	for _, d := range days {
		sum += metricValue(d, metric)
	}
	return sum / float64(len(days))
}

func metricValue(day schema.DailyTrainingLoad, metric schema.TrendMetric) float64 {
	switch metric {
	case schema.MetricATL:
		return day.ATL
	case schema.MetricCTL:
		return day.CTL
	case schema.MetricTSB:
		return day.TSB
	case schema.MetricWeeklyTSS:
		return day.WeeklyTSS
	default:
		return day.DailyTSS
	}
}
