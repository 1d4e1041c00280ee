package pmc

import (
	"cmp"
	"slices"
	"time"

	"github.com/peakform/peakform/schema"
)

// Trailing window for the rolling weekly total, inclusive of the current day.
const weeklyWindowDays = 7

// BuildOptions tunes the load recurrence. Zero values fall back to the
// standard PMC constants and thresholds.
type BuildOptions struct {
	Constants  schema.TimeConstants  // EMA windows, default 7/42 days
	Thresholds schema.FormThresholds // form cut points, default 20/5/-10/-30
}

func (o BuildOptions) withDefaults() BuildOptions {
	if o.Constants == (schema.TimeConstants{}) {
		o.Constants = schema.DefaultTimeConstants()
	}
	if o.Thresholds == (schema.FormThresholds{}) {
		o.Thresholds = schema.DefaultFormThresholds()
	}
	return o
}

// BuildSeries computes the daily training load for every calendar day in
// [start, end]. Days absent from dailyTSS carry zero stress and decay
// both loads; map keys landing on the same calendar day accumulate. The
// recurrence starts cold, with ATL and CTL at zero before the first day,
// so the opening weeks ramp up from nothing. Callers wanting settled
// values extend the window back far enough for the chronic load to
// converge.
//
// The same input always produces the same series. There is no clock or
// other ambient state involved.
func BuildSeries(dailyTSS map[time.Time]float64, start, end time.Time, opts BuildOptions) (schema.TrainingLoadSeries, error) {
	startDay := schema.Day(start)
	endDay := schema.Day(end)
	if startDay.After(endDay) {
		return schema.TrainingLoadSeries{}, &InvalidArgumentError{Field: "start", Reason: "must not be after end"}
	}

	byDay, err := normalizeDailyTSS(dailyTSS)
	if err != nil {
		return schema.TrainingLoadSeries{}, err
	}

	opts = opts.withDefaults()
	n := schema.DaySpan(startDay, endDay)
	series := schema.TrainingLoadSeries{
		Start: startDay,
		End:   endDay,
		Days:  make([]schema.DailyTrainingLoad, 0, n),
	}

	var prev schema.DailyTrainingLoad
	for i := range n {
		date := startDay.AddDate(0, 0, i)
		day := Advance(prev, date, byDay[date], opts.Constants, opts.Thresholds)
		day.WeeklyTSS = trailingWeekTSS(series.Days, i, day.DailyTSS)

		series.Days = append(series.Days, day)
		prev = day
	}
	return series, nil
}

// RebuildFrom recomputes the series from changedDay forward, reusing the
// untouched prefix. The recurrence restarts seeded from the day
// immediately before the change, so every earlier day comes back
// byte-identical to the input series and the result matches a full
// BuildSeries over the same map.
func RebuildFrom(series schema.TrainingLoadSeries, changedDay time.Time, dailyTSS map[time.Time]float64, opts BuildOptions) (schema.TrainingLoadSeries, error) {
	day := schema.Day(changedDay)
	if day.Before(series.Start) || day.After(series.End) {
		return schema.TrainingLoadSeries{}, &InvalidArgumentError{Field: "changedDay", Reason: "outside the series range"}
	}
	n := schema.DaySpan(series.Start, series.End)
	if len(series.Days) != n {
		return schema.TrainingLoadSeries{}, &InvalidArgumentError{Field: "series", Reason: "days do not match the series date range"}
	}

	byDay, err := normalizeDailyTSS(dailyTSS)
	if err != nil {
		return schema.TrainingLoadSeries{}, err
	}

	opts = opts.withDefaults()
	idx := schema.DaySpan(series.Start, day) - 1
	rebuilt := schema.TrainingLoadSeries{
		Start: series.Start,
		End:   series.End,
		Days:  make([]schema.DailyTrainingLoad, 0, n),
	}
	rebuilt.Days = append(rebuilt.Days, series.Days[:idx]...)

	var prev schema.DailyTrainingLoad
	if idx > 0 {
		prev = rebuilt.Days[idx-1]
	}

	for i := idx; i < n; i++ {
		date := series.Start.AddDate(0, 0, i)
		dayLoad := Advance(prev, date, byDay[date], opts.Constants, opts.Thresholds)
		dayLoad.WeeklyTSS = trailingWeekTSS(rebuilt.Days, i, dayLoad.DailyTSS)

		rebuilt.Days = append(rebuilt.Days, dayLoad)
		prev = dayLoad
	}
	return rebuilt, nil
}

// trailingWeekTSS sums the stress of the window ending on day i, given
// the days before i and day i's own stress. Summation runs in a fixed
// chronological order so an incremental rebuild reproduces a full build
// exactly, not just approximately.
func trailingWeekTSS(days []schema.DailyTrainingLoad, i int, todayTSS float64) float64 {
	var sum float64
	for j := max(0, i-weeklyWindowDays+1); j < i; j++ {
		sum += days[j].DailyTSS
	}
	return sum + todayTSS
}

// normalizeDailyTSS collapses arbitrary timestamps onto calendar days,
// accumulating entries that share a day and rejecting negative stress.
// Entries are folded in sorted order so the random iteration order of
// the input map cannot leak into the sums.
func normalizeDailyTSS(dailyTSS map[time.Time]float64) (map[time.Time]float64, error) {
	type entry struct {
		day time.Time
		tss float64
	}
	entries := make([]entry, 0, len(dailyTSS))
	for date, tss := range dailyTSS {
		if tss < 0 {
			return nil, &InvalidArgumentError{Field: "dailyTSS", Reason: "daily TSS must not be negative"}
		}
		entries = append(entries, entry{day: schema.Day(date), tss: tss})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		if c := a.day.Compare(b.day); c != 0 {
			return c
		}
		return cmp.Compare(a.tss, b.tss)
	})

	byDay := make(map[time.Time]float64, len(entries))
	for _, e := range entries {
		byDay[e.day] += e.tss
	}
	return byDay, nil
}
