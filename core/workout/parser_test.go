package workout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peakform/peakform/core/workout"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"5min", 300},
		{"10 min", 600},
		{"  5MIN  ", 300},  // case and padding ignored
		{"90'", 5400},      // tick notation means minutes
		{"1h30m", 5400},
		{"1 hour", 3600},
		{"2 hours", 7200},
		{"300s", 300},
		{"45", 2700},       // bare numbers are minutes
		{"1.5", 60},        // fractional minutes truncate
		{"min", 1800},      // no digits, unit default
		{"garbage", 1800},  // unparseable, 30 minute fallback
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, workout.ParseDuration(tt.input))
		})
	}
}

func TestParseDescriptionSimpleIntervals(t *testing.T) {
	w, err := workout.ParseDescription("4x5min @ 105%")
	require.NoError(t, err)

	assert.Equal(t, "4x5min @ 105%", w.Name)
	assert.Equal(t, workout.TypeIntervals, w.Type)
	require.Len(t, w.Segments, 9)
	assert.Equal(t, 120, w.Segments[2].DurationSeconds) // two minute recoveries
	assert.Equal(t, 0.5, w.Segments[2].PowerStart)
	assert.Equal(t, 2760, w.TotalDurationSeconds)
	assert.Equal(t, 59.0, w.TSS)
}

func TestParseDescriptionIntervalCount(t *testing.T) {
	// Without an explicit length each interval defaults to five minutes.
	w, err := workout.ParseDescription("6 intervals at 110%")
	require.NoError(t, err)

	assert.Equal(t, "6x5min @ 110%", w.Name)
	require.Len(t, w.Segments, 13)
	assert.Equal(t, 1.1, w.Segments[1].PowerStart)
	assert.Equal(t, 3600, w.TotalDurationSeconds)
}

func TestParseDescriptionComplexIntervals(t *testing.T) {
	desc := "2 x 14' (4') as first 2' @ 105% then 12' at 100%"
	w, err := workout.ParseDescription(desc)
	require.NoError(t, err)

	assert.Equal(t, "2 x 14' Complex Intervals", w.Name)
	assert.Equal(t, workout.TypeIntervals, w.Type)
	assert.Equal(t, desc, w.Description)

	// Warmup, surge and steady twice with a recovery between, cooldown.
	require.Len(t, w.Segments, 7)
	assert.Equal(t, workout.SegmentWarmup, w.Segments[0].Type)
	assert.Equal(t, 120, w.Segments[1].DurationSeconds)
	assert.Equal(t, 1.05, w.Segments[1].PowerStart)
	assert.Equal(t, 720, w.Segments[2].DurationSeconds)
	assert.Equal(t, 1.0, w.Segments[2].PowerStart)
	assert.Equal(t, 240, w.Segments[3].DurationSeconds)
	assert.Equal(t, workout.SegmentCooldown, w.Segments[6].Type)

	assert.Equal(t, 3120, w.TotalDurationSeconds)
	assert.Equal(t, 67.0, w.TSS)
}

func TestParseDescriptionComplexPatternScaled(t *testing.T) {
	// The stated 14' interval stretches a 7' pattern to twice its length.
	w, err := workout.ParseDescription("2 x 14' (4') as first 1' @ 105% then 6' at 100%")
	require.NoError(t, err)

	assert.Equal(t, 120, w.Segments[1].DurationSeconds)
	assert.Equal(t, 720, w.Segments[2].DurationSeconds)
}

func TestParseDescriptionEndurance(t *testing.T) {
	desc := "90 minutes endurance at 70%"
	w, err := workout.ParseDescription(desc)
	require.NoError(t, err)

	assert.Equal(t, "Endurance Workout", w.Name)
	assert.Equal(t, workout.TypeEndurance, w.Type)
	assert.Equal(t, desc, w.Description)
	require.Len(t, w.Segments, 3)
	assert.Equal(t, 4200, w.Segments[1].DurationSeconds)
	assert.Equal(t, 0.7, w.Segments[1].PowerStart)
	assert.Equal(t, 5400, w.TotalDurationSeconds)
	assert.Equal(t, 69.0, w.TSS)
}

func TestParseDescriptionEnduranceDefaults(t *testing.T) {
	// No duration and no percentage: an hour at endurance pace.
	w, err := workout.ParseDescription("easy spin")
	require.NoError(t, err)

	assert.Equal(t, 3600, w.TotalDurationSeconds)
	assert.Equal(t, 0.65, w.Segments[1].PowerStart)
	assert.Equal(t, 39.0, w.TSS)
}

func TestParseDescriptionErrors(t *testing.T) {
	_, err := workout.ParseDescription("   ")
	assert.Error(t, err)

	// Interval phrasing without a parseable count by length structure.
	_, err = workout.ParseDescription("3 times around the park")
	assert.Error(t, err)
}
