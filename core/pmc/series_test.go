package pmc_test

import (
	"testing"
	"time"

	"github.com/peakform/peakform/core/pmc"
	"github.com/peakform/peakform/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constantTSS(start time.Time, days int, tss float64) map[time.Time]float64 {
	daily := make(map[time.Time]float64, days)
	for i := range days {
		daily[start.AddDate(0, 0, i)] = tss
	}
	return daily
}

func TestBuildSeriesGapFill(t *testing.T) {
	start := date(2026, 3, 1)
	daily := map[time.Time]float64{
		start:                  100,
		start.AddDate(0, 0, 2): 60,
	}

	series, err := pmc.BuildSeries(daily, start, start.AddDate(0, 0, 3), pmc.BuildOptions{})
	require.NoError(t, err)

	require.Len(t, series.Days, 4)
	assert.Equal(t, start, series.Start)
	assert.Equal(t, date(2026, 3, 4), series.End)

	for i, expected := range []float64{100, 0, 60, 0} {
		assert.Equal(t, expected, series.Days[i].DailyTSS)
		assert.Equal(t, start.AddDate(0, 0, i), series.Days[i].Date)
	}
	for i, expected := range []float64{100, 100, 160, 160} {
		assert.Equal(t, expected, series.Days[i].WeeklyTSS)
	}
}

func TestBuildSeriesAccumulatesSameDay(t *testing.T) {
	// A commute and an evening session on the same calendar day.
	daily := map[time.Time]float64{
		time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC):   60,
		time.Date(2026, 3, 1, 17, 30, 0, 0, time.UTC): 40,
	}

	series, err := pmc.BuildSeries(daily, date(2026, 3, 1), date(2026, 3, 1), pmc.BuildOptions{})
	require.NoError(t, err)

	require.Len(t, series.Days, 1)
	assert.Equal(t, 100.0, series.Days[0].DailyTSS)
}

func TestBuildSeriesIdempotent(t *testing.T) {
	start := date(2026, 3, 1)
	daily := map[time.Time]float64{
		start:                  100,
		start.AddDate(0, 0, 2): 60,
		start.AddDate(0, 0, 5): 120,
	}

	first, err := pmc.BuildSeries(daily, start, start.AddDate(0, 0, 9), pmc.BuildOptions{})
	require.NoError(t, err)
	second, err := pmc.BuildSeries(daily, start, start.AddDate(0, 0, 9), pmc.BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildSeriesConstantLoadConverges(t *testing.T) {
	start := date(2026, 1, 1)
	days := 90

	series, err := pmc.BuildSeries(constantTSS(start, days, 50), start, start.AddDate(0, 0, days-1), pmc.BuildOptions{})
	require.NoError(t, err)
	require.Len(t, series.Days, days)

	// Fatigue responds much faster than fitness early in a block.
	week1 := series.Days[7]
	assert.InDelta(t, 34.0546, week1.ATL, 0.001) // 50 * (1 - e^(-8/7))
	assert.InDelta(t, 8.6716, week1.CTL, 0.001)  // 50 * (1 - e^(-8/42))
	assert.Greater(t, week1.ATL, week1.CTL)

	// Both converge toward the constant stress, ATL essentially there by
	// day 90, CTL still closing the last 12%.
	last := series.Days[days-1]
	assert.InDelta(t, 50.0, last.ATL, 0.01)
	assert.InDelta(t, 44.134, last.CTL, 0.01)

	for i, day := range series.Days {
		assert.GreaterOrEqual(t, day.ATL, 0.0)
		assert.GreaterOrEqual(t, day.CTL, 0.0)
		if i > 0 {
			assert.GreaterOrEqual(t, day.ATL, series.Days[i-1].ATL)
			assert.GreaterOrEqual(t, day.CTL, series.Days[i-1].CTL)
		}
		if i >= 6 {
			assert.Equal(t, 350.0, day.WeeklyTSS)
		}
	}
}

func TestBuildSeriesSpikeThenRecovery(t *testing.T) {
	start := date(2026, 3, 1)
	daily := map[time.Time]float64{start: 300}

	series, err := pmc.BuildSeries(daily, start, start.AddDate(0, 0, 60), pmc.BuildOptions{})
	require.NoError(t, err)
	require.Len(t, series.Days, 61)

	// The morning after a 300 TSS day the balance is deeply negative.
	assert.InDelta(t, -32.878, series.Days[1].TSB, 0.001)
	assert.Equal(t, schema.FormVeryTired, series.Days[1].Form)

	// Fatigue decays six times faster than fitness, so the balance
	// crosses back to positive after about two weeks of rest.
	firstPositive := -1
	for i, day := range series.Days {
		if day.TSB > 0 {
			firstPositive = i
			break
		}
	}
	assert.Equal(t, 16, firstPositive)
	assert.Greater(t, series.Days[60].TSB, 0.0)

	for _, day := range series.Days {
		assert.GreaterOrEqual(t, day.ATL, 0.0)
		assert.GreaterOrEqual(t, day.CTL, 0.0)
	}
}

func TestBuildSeriesRejects(t *testing.T) {
	var invalid *pmc.InvalidArgumentError
	start := date(2026, 3, 10)

	_, err := pmc.BuildSeries(nil, start, start.AddDate(0, 0, -1), pmc.BuildOptions{})
	assert.ErrorAs(t, err, &invalid)

	_, err = pmc.BuildSeries(map[time.Time]float64{start: -5}, start, start, pmc.BuildOptions{})
	assert.ErrorAs(t, err, &invalid)
}

func TestRebuildFromMatchesFullRebuild(t *testing.T) {
	start := date(2026, 2, 1)
	end := start.AddDate(0, 0, 29)
	daily := make(map[time.Time]float64)
	for i := range 30 {
		if i%3 == 0 {
			continue // rest day
		}
		daily[start.AddDate(0, 0, i)] = float64(40 + (i*17)%90)
	}

	original, err := pmc.BuildSeries(daily, start, end, pmc.BuildOptions{})
	require.NoError(t, err)

	// A forgotten ride surfaces for day 10.
	changedDay := start.AddDate(0, 0, 10)
	daily[changedDay] = 180

	full, err := pmc.BuildSeries(daily, start, end, pmc.BuildOptions{})
	require.NoError(t, err)
	incremental, err := pmc.RebuildFrom(original, changedDay, daily, pmc.BuildOptions{})
	require.NoError(t, err)

	// Identical to a from-scratch rebuild, and the untouched prefix is
	// carried over exactly.
	assert.Equal(t, full, incremental)
	assert.Equal(t, original.Days[:10], incremental.Days[:10])
	assert.NotEqual(t, original.Days[10], incremental.Days[10])
}

func TestRebuildFromDayOutsideRange(t *testing.T) {
	start := date(2026, 2, 1)
	series, err := pmc.BuildSeries(nil, start, start.AddDate(0, 0, 9), pmc.BuildOptions{})
	require.NoError(t, err)

	var invalid *pmc.InvalidArgumentError

	_, err = pmc.RebuildFrom(series, start.AddDate(0, 0, -1), nil, pmc.BuildOptions{})
	assert.ErrorAs(t, err, &invalid)

	_, err = pmc.RebuildFrom(series, start.AddDate(0, 0, 10), nil, pmc.BuildOptions{})
	assert.ErrorAs(t, err, &invalid)
}
