package pmc_test

import (
	"testing"
	"time"

	"github.com/peakform/peakform/core/pmc"
	"github.com/peakform/peakform/schema"
	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAdvanceColdStart(t *testing.T) {
	constants := schema.DefaultTimeConstants()
	thresholds := schema.DefaultFormThresholds()

	day1 := pmc.Advance(schema.DailyTrainingLoad{}, date(2026, 3, 1), 100, constants, thresholds)

	// One 100 TSS session from zero: ATL jumps by the 7-day decay
	// fraction, CTL by the much smaller 42-day fraction.
	assert.InDelta(t, 13.3122, day1.ATL, 0.001)
	assert.InDelta(t, 2.3528, day1.CTL, 0.001)
	assert.Equal(t, 0.0, day1.TSB) // the balance the athlete woke up with
	assert.Equal(t, schema.FormNeutral, day1.Form)

	day2 := pmc.Advance(day1, date(2026, 3, 2), 0, constants, thresholds)

	assert.InDelta(t, 11.5401, day2.ATL, 0.001)
	assert.InDelta(t, 2.2975, day2.CTL, 0.001)
	assert.InDelta(t, -10.9594, day2.TSB, 0.001)
	assert.Equal(t, schema.FormTired, day2.Form)
}

func TestAdvanceNormalizesDate(t *testing.T) {
	sydney := time.FixedZone("AEST", 10*60*60)
	at := time.Date(2026, 3, 1, 18, 30, 0, 0, sydney)

	day := pmc.Advance(schema.DailyTrainingLoad{}, at, 50, schema.DefaultTimeConstants(), schema.DefaultFormThresholds())

	assert.Equal(t, date(2026, 3, 1), day.Date)
}

func TestAdvanceCustomConstants(t *testing.T) {
	constants := schema.TimeConstants{ATLDays: 1, CTLDays: 2}

	day := pmc.Advance(schema.DailyTrainingLoad{}, date(2026, 3, 1), 100, constants, schema.DefaultFormThresholds())

	assert.InDelta(t, 63.2121, day.ATL, 0.001) // 100 * (1 - e^-1)
	assert.InDelta(t, 39.3469, day.CTL, 0.001) // 100 * (1 - e^-0.5)
}

func TestAdvanceCustomThresholds(t *testing.T) {
	// A policy that calls everything above -20 rested.
	thresholds := schema.FormThresholds{Rested: -20, Fresh: -25, NeutralLow: -30, TiredLow: -40}
	prev := schema.DailyTrainingLoad{ATL: 15, CTL: 5}

	day := pmc.Advance(prev, date(2026, 3, 1), 0, schema.DefaultTimeConstants(), thresholds)

	assert.InDelta(t, -10.0, day.TSB, 1e-9)
	assert.Equal(t, schema.FormRested, day.Form)
}
