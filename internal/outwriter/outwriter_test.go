package outwriter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/peakform/peakform/core/workout"
	"github.com/peakform/peakform/internal/contract"
	"github.com/peakform/peakform/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMaxTableTextWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{
			name:     "narrow terminal clamps to minimum",
			width:    40,
			expected: 15,
		},
		{
			name:     "exactly at minimum boundary",
			width:    60,
			expected: 15,
		},
		{
			name:     "just above minimum boundary",
			width:    61,
			expected: 16,
		},
		{
			name:     "standard terminal",
			width:    100,
			expected: 55,
		},
		{
			name:     "wide terminal clamps to maximum",
			width:    200,
			expected: 70,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.expected, GetMaxTableTextWidth(cfg))
		})
	}
}

func TestOutWriterDelegation(t *testing.T) {
	ow := NewOutWriter()
	tmpDir := t.TempDir()
	duration := 50 * time.Millisecond

	newCfg := func(file string) *contract.Config {
		return &contract.Config{
			Output:     schema.JSONOut,
			OutputFile: filepath.Join(tmpDir, file),
			Precision:  1,
		}
	}

	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("activity", func(t *testing.T) {
		cfg := newCfg("activity.json")
		output := schema.ActivityOutput{
			Metrics: schema.ActivityStressMetrics{TSS: 59.0, IntensityFactor: 0.84},
		}
		require.NoError(t, ow.WriteActivity(output, cfg, duration))
		assertNonEmptyFile(t, cfg.OutputFile)
	})

	t.Run("series", func(t *testing.T) {
		cfg := newCfg("series.json")
		series := schema.TrainingLoadSeries{
			Start: day,
			End:   day,
			Days:  []schema.DailyTrainingLoad{{Date: day, DailyTSS: 100, Form: schema.FormNeutral}},
		}
		require.NoError(t, ow.WriteSeries(series, cfg, duration))
		assertNonEmptyFile(t, cfg.OutputFile)
	})

	t.Run("zones", func(t *testing.T) {
		cfg := newCfg("zones.json")
		output := schema.ZonesOutput{Model: "coggan", FTP: 250}
		require.NoError(t, ow.WriteZones(output, cfg, duration))
		assertNonEmptyFile(t, cfg.OutputFile)
	})

	t.Run("trend", func(t *testing.T) {
		cfg := newCfg("trend.json")
		result := schema.TrendResult{WindowDays: 28}
		require.NoError(t, ow.WriteTrend(result, cfg, duration))
		assertNonEmptyFile(t, cfg.OutputFile)
	})

	t.Run("compare", func(t *testing.T) {
		cfg := newCfg("compare.json")
		result := schema.ComparisonResult{
			Baseline: schema.WindowStats{Start: day, End: day, Days: 1},
			Target:   schema.WindowStats{Start: day, End: day, Days: 1},
		}
		require.NoError(t, ow.WriteCompare(result, cfg, duration))
		assertNonEmptyFile(t, cfg.OutputFile)
	})

	t.Run("workout", func(t *testing.T) {
		cfg := newCfg("workout.json")
		report := workout.Report{
			Workout: workout.Workout{Name: "Endurance Spin", SportType: "bike"},
		}
		require.NoError(t, ow.WriteWorkout(report, cfg, duration))
		assertNonEmptyFile(t, cfg.OutputFile)
	})
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
