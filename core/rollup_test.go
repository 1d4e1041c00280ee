package core

import (
	"testing"
	"time"

	"github.com/peakform/peakform/internal/contract"
	"github.com/peakform/peakform/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func constantSamples(n int, watts float64) []schema.PowerSample {
	samples := make([]schema.PowerSample, n)
	for i := range samples {
		samples[i] = schema.PowerSample{OffsetSeconds: i, Watts: watts}
	}
	return samples
}

// TestActivityTSSPrecedence verifies that stored values are trusted least:
// raw samples win, then stored NP, then stored average power, then the
// stored score itself.
func TestActivityTSSPrecedence(t *testing.T) {
	cfg := &contract.Config{FTP: 250}
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		record   schema.ActivityRecord
		expected float64
	}{
		{
			name:     "stored tss only",
			record:   schema.ActivityRecord{Date: day, DurationSeconds: 3600, TSS: fptr(80)},
			expected: 80,
		},
		{
			name:     "stored normalized power beats stored tss",
			record:   schema.ActivityRecord{Date: day, DurationSeconds: 3600, NormalizedPower: fptr(250), TSS: fptr(55)},
			expected: 100,
		},
		{
			name:     "stored average power gets the fallback discount",
			record:   schema.ActivityRecord{Date: day, DurationSeconds: 3600, AvgPower: fptr(250)},
			expected: 85,
		},
		{
			name: "normalized power beats average power",
			record: schema.ActivityRecord{
				Date: day, DurationSeconds: 3600,
				NormalizedPower: fptr(250), AvgPower: fptr(200), TSS: fptr(55),
			},
			expected: 100,
		},
		{
			name: "samples beat every stored field",
			record: schema.ActivityRecord{
				Date: day, DurationSeconds: 60,
				Samples: constantSamples(60, 200), FTPAtTime: 200,
				TSS: fptr(999), NormalizedPower: fptr(999),
			},
			expected: 2, // one minute at FTP
		},
		{
			name: "short stream is discounted, not skipped",
			record: schema.ActivityRecord{
				Date: day, DurationSeconds: 3600,
				Samples: constantSamples(10, 250), NormalizedPower: fptr(250),
			},
			expected: 0, // ten seconds of riding rounds to nothing
		},
		{
			name:     "no power data contributes nothing",
			record:   schema.ActivityRecord{Date: day, DurationSeconds: 3600},
			expected: 0,
		},
		{
			name: "per-activity ftp overrides the profile ftp",
			record: schema.ActivityRecord{
				Date: day, DurationSeconds: 3600,
				NormalizedPower: fptr(260), FTPAtTime: 260,
			},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, activityTSS(cfg, tt.record), 1e-9)
		})
	}
}

// TestRollUpActivitiesAccumulates verifies that several activities on one
// day sum into a single daily total.
func TestRollUpActivitiesAccumulates(t *testing.T) {
	cfg := &contract.Config{FTP: 250, Workers: 4}
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	wednesday := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	records := []schema.ActivityRecord{
		{Date: monday, DurationSeconds: 3600, TSS: fptr(60)},
		{Date: monday, DurationSeconds: 1800, TSS: fptr(40)},
		{Date: wednesday, DurationSeconds: 3600, TSS: fptr(50)},
	}

	daily := rollUpActivities(cfg, records)

	require.Len(t, daily, 2)
	assert.InDelta(t, 100.0, daily[monday], 1e-9)
	assert.InDelta(t, 50.0, daily[wednesday], 1e-9)
}

// TestRollUpActivitiesEmpty verifies the empty input case.
func TestRollUpActivitiesEmpty(t *testing.T) {
	cfg := &contract.Config{FTP: 250, Workers: 2}
	daily := rollUpActivities(cfg, nil)
	assert.Empty(t, daily)
}

// TestFilterWindow verifies that window bounds are inclusive on both ends.
func TestFilterWindow(t *testing.T) {
	cfg := &contract.Config{
		FTP:       250,
		StartTime: time.Date(2025, 3, 10, 15, 4, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 3, 20, 2, 0, 0, 0, time.UTC),
	}

	mk := func(day int) schema.ActivityRecord {
		return schema.ActivityRecord{
			Date:            time.Date(2025, 3, day, 9, 0, 0, 0, time.UTC),
			DurationSeconds: 3600,
			TSS:             fptr(50),
		}
	}
	records := []schema.ActivityRecord{mk(9), mk(10), mk(15), mk(20), mk(21)}

	kept := filterWindow(cfg, records)

	require.Len(t, kept, 3)
	assert.Equal(t, 10, kept[0].Date.Day())
	assert.Equal(t, 15, kept[1].Date.Day())
	assert.Equal(t, 20, kept[2].Date.Day())
}

func TestTotalTSS(t *testing.T) {
	daily := map[time.Time]float64{
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC): 50.5,
		time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC): 49.5,
	}
	assert.InDelta(t, 100.0, totalTSS(daily), 1e-9)
	assert.Zero(t, totalTSS(nil))
}
