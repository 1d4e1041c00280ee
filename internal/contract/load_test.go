package contract

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/peakform/peakform/core/workout"
	"github.com/peakform/peakform/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixture drops JSON content into a temp file and returns its path.
func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadActivities(t *testing.T) {
	t.Run("valid records", func(t *testing.T) {
		path := writeFixture(t, "activities.json", `[
			{"date": "2025-01-05T09:00:00Z", "name": "Morning ride", "duration_seconds": 3600, "tss": 85},
			{"date": "2025-01-06T09:00:00Z", "duration_seconds": 5400, "avg_power": 180, "ftp_at_time": 260}
		]`)

		records, err := LoadActivities(path)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Morning ride", records[0].Name)
		require.NotNil(t, records[0].TSS)
		assert.InDelta(t, 85.0, *records[0].TSS, 1e-9)
		assert.InDelta(t, 260.0, records[1].FTPAtTime, 1e-9)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadActivities(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeFixture(t, "bad.json", `{not json`)
		_, err := LoadActivities(path)
		assert.Error(t, err)
	})

	t.Run("invalid record reported with index", func(t *testing.T) {
		path := writeFixture(t, "activities.json", `[
			{"date": "2025-01-05T09:00:00Z", "duration_seconds": 3600},
			{"date": "2025-01-06T09:00:00Z", "duration_seconds": -10}
		]`)

		_, err := LoadActivities(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "activity 1")
	})
}

func TestValidateActivityRecord(t *testing.T) {
	base := schema.ActivityRecord{
		Date:            time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC),
		DurationSeconds: 3600,
	}

	tests := []struct {
		name        string
		mutate      func(*schema.ActivityRecord)
		expectError bool
	}{
		{"minimal valid", func(*schema.ActivityRecord) {}, false},
		{"zero date", func(r *schema.ActivityRecord) { r.Date = time.Time{} }, true},
		{"zero duration", func(r *schema.ActivityRecord) { r.DurationSeconds = 0 }, true},
		{"negative duration", func(r *schema.ActivityRecord) { r.DurationSeconds = -1 }, true},
		{"ftp at time zero ok", func(r *schema.ActivityRecord) { r.FTPAtTime = 0 }, false},
		{"ftp at time in range", func(r *schema.ActivityRecord) { r.FTPAtTime = 275 }, false},
		{"ftp at time too low", func(r *schema.ActivityRecord) { r.FTPAtTime = 30 }, true},
		{"negative tss", func(r *schema.ActivityRecord) { v := -5.0; r.TSS = &v }, true},
		{"negative avg power", func(r *schema.ActivityRecord) { v := -1.0; r.AvgPower = &v }, true},
		{"negative normalized power", func(r *schema.ActivityRecord) { v := -1.0; r.NormalizedPower = &v }, true},
		{"valid sample stream", func(r *schema.ActivityRecord) {
			r.Samples = []schema.PowerSample{{OffsetSeconds: 0, Watts: 200}}
		}, false},
		{"negative sample watts", func(r *schema.ActivityRecord) {
			r.Samples = []schema.PowerSample{{OffsetSeconds: 0, Watts: -50}}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base
			tt.mutate(&r)
			err := ValidateActivityRecord(r)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadPowerSamples(t *testing.T) {
	t.Run("bare watts array", func(t *testing.T) {
		path := writeFixture(t, "samples.json", `[250, 251, 249]`)

		samples, err := LoadPowerSamples(path)
		require.NoError(t, err)
		require.Len(t, samples, 3)
		assert.Equal(t, 0, samples[0].OffsetSeconds)
		assert.Equal(t, 2, samples[2].OffsetSeconds)
		assert.InDelta(t, 251.0, samples[1].Watts, 1e-9)
	})

	t.Run("sample objects", func(t *testing.T) {
		path := writeFixture(t, "samples.json", `[
			{"offset_seconds": 0, "watts": 180},
			{"offset_seconds": 5, "watts": 320}
		]`)

		samples, err := LoadPowerSamples(path)
		require.NoError(t, err)
		require.Len(t, samples, 2)
		assert.Equal(t, 5, samples[1].OffsetSeconds)
		assert.InDelta(t, 320.0, samples[1].Watts, 1e-9)
	})

	t.Run("activity record with samples", func(t *testing.T) {
		path := writeFixture(t, "activity.json", `{
			"date": "2025-01-05T09:00:00Z",
			"duration_seconds": 2,
			"samples": [{"offset_seconds": 0, "watts": 200}, {"offset_seconds": 1, "watts": 210}]
		}`)

		samples, err := LoadPowerSamples(path)
		require.NoError(t, err)
		require.Len(t, samples, 2)
		assert.InDelta(t, 210.0, samples[1].Watts, 1e-9)
	})

	t.Run("empty array", func(t *testing.T) {
		path := writeFixture(t, "samples.json", `[]`)
		_, err := LoadPowerSamples(path)
		assert.Error(t, err)
	})

	t.Run("negative watts", func(t *testing.T) {
		path := writeFixture(t, "samples.json", `[250, -3]`)
		_, err := LoadPowerSamples(path)
		assert.Error(t, err)
	})

	t.Run("activity without samples", func(t *testing.T) {
		path := writeFixture(t, "activity.json", `{"date": "2025-01-05T09:00:00Z", "duration_seconds": 3600}`)
		_, err := LoadPowerSamples(path)
		assert.Error(t, err)
	})

	t.Run("not json at all", func(t *testing.T) {
		path := writeFixture(t, "samples.json", `watts go here`)
		_, err := LoadPowerSamples(path)
		assert.Error(t, err)
	})
}

func TestLoadWorkout(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		built, err := workout.NewEnduranceWorkout(5400, 0.7)
		require.NoError(t, err)

		data, err := json.Marshal(built)
		require.NoError(t, err)
		path := writeFixture(t, "workout.json", string(data))

		loaded, err := LoadWorkout(path)
		require.NoError(t, err)
		assert.Equal(t, built.Name, loaded.Name)
		assert.Len(t, loaded.Segments, len(built.Segments))
		assert.InDelta(t, built.TSS, loaded.TSS, 1e-9)
	})

	t.Run("no segments", func(t *testing.T) {
		path := writeFixture(t, "workout.json", `{"name": "empty"}`)
		_, err := LoadWorkout(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadWorkout(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}
