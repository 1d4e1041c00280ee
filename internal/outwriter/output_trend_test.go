package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/peakform/peakform/internal/contract"
	"github.com/peakform/peakform/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrendResult() schema.TrendResult {
	return schema.TrendResult{
		WindowDays: 28,
		Deltas: []schema.TrendDelta{
			{Metric: schema.MetricDailyTSS, RecentAvg: 82.5, PreviousAvg: 70.0, DeltaPct: 17.9},
			{Metric: schema.MetricCTL, RecentAvg: 45.2, PreviousAvg: 48.0, DeltaPct: -5.8},
			{Metric: schema.MetricTSB, RecentAvg: -12.0, PreviousAvg: -12.0, DeltaPct: 0},
		},
		Flags: []schema.TrendFlag{
			{
				Name:   schema.FlagRampRateTooSteep,
				Detail: "CTL rose 9.1 in 7 days",
				Since:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			},
		},
	}
}

func TestWriteTrendResultsTable(t *testing.T) {
	cfg := &contract.Config{
		Output:    schema.TextOut,
		Precision: 1,
	}

	var buf bytes.Buffer
	duration := 40 * time.Millisecond
	err := WriteTrendResults(&buf, sampleTrendResult(), cfg, duration)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "tss")
	assert.Contains(t, out, "82.5")
	assert.Contains(t, out, "+17.9% ▲")
	assert.Contains(t, out, "-5.8% ▼")
	assert.Contains(t, out, "0.0%")
	assert.Contains(t, out, "Flag ramp_rate_too_steep: CTL rose 9.1 in 7 days (since 2025-03-10)")
	assert.Contains(t, out, "Trend analysis completed in 40ms over a 28-day window")
}

func TestWriteTrendResultsTableEmoji(t *testing.T) {
	cfg := &contract.Config{
		Output:    schema.TextOut,
		Precision: 1,
		UseEmojis: true,
	}

	var buf bytes.Buffer
	err := WriteTrendResults(&buf, sampleTrendResult(), cfg, time.Millisecond)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "⚠️")
	assert.NotContains(t, buf.String(), "Flag ramp_rate_too_steep")
}

func TestWriteTrendResultsTableNoFlags(t *testing.T) {
	result := sampleTrendResult()
	result.Flags = nil

	cfg := &contract.Config{
		Output:    schema.TextOut,
		Precision: 1,
	}

	var buf bytes.Buffer
	err := WriteTrendResults(&buf, result, cfg, time.Millisecond)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "No advisory flags raised")
}

func TestWriteTrendResultsJSON(t *testing.T) {
	cfg := &contract.Config{
		Output:    schema.JSONOut,
		Precision: 1,
	}

	var buf bytes.Buffer
	err := WriteTrendResults(&buf, sampleTrendResult(), cfg, time.Millisecond)
	require.NoError(t, err)

	var parsed map[string]any
	err = json.Unmarshal(buf.Bytes(), &parsed)
	require.NoError(t, err)

	assert.Equal(t, float64(28), parsed["window_days"])

	deltas := parsed["deltas"].([]any)
	require.Len(t, deltas, 3)
	first := deltas[0].(map[string]any)
	assert.Equal(t, "tss", first["metric"])
	assert.Equal(t, 17.9, first["delta_pct"])

	flags := parsed["flags"].([]any)
	require.Len(t, flags, 1)
	flag := flags[0].(map[string]any)
	assert.Equal(t, "ramp_rate_too_steep", flag["name"])
}

func TestWriteTrendResultsCSV(t *testing.T) {
	cfg := &contract.Config{
		Output:    schema.CSVOut,
		Precision: 1,
	}

	var buf bytes.Buffer
	err := WriteTrendResults(&buf, sampleTrendResult(), cfg, time.Millisecond)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// Header plus one row per delta; flags are not window math
	require.Len(t, lines, 4)

	assert.Equal(t, "metric,recent_avg,previous_avg,delta_pct", lines[0])
	assert.Equal(t, "tss,82.5,70.0,17.9", lines[1])
	assert.Equal(t, "ctl,45.2,48.0,-5.8", lines[2])
	assert.NotContains(t, buf.String(), "ramp_rate_too_steep")
}

func TestPrintTrendResultsParquetRejected(t *testing.T) {
	cfg := &contract.Config{
		Output: schema.ParquetOut,
	}

	err := PrintTrendResults(sampleTrendResult(), cfg, time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parquet output is only available")
}
