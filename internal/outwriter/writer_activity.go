package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/peakform/peakform/schema"
)

// JSONActivityResult pairs labeled metrics with the optional zone split for
// JSON output.
type JSONActivityResult struct {
	Metrics schema.EnrichedActivityMetrics `json:"metrics"`
	Zones   *schema.ZoneDistribution       `json:"zones,omitempty"`
}

// writeJSONResultsForActivity marshals the activity metrics, with the effort
// label attached, and writes them.
func writeJSONResultsForActivity(w io.Writer, output schema.ActivityOutput) error {
	return writeJSON(w, JSONActivityResult{
		Metrics: schema.EnrichActivity(output.Metrics),
		Zones:   output.Zones,
	})
}

// writeCSVResultsForActivity writes the activity metrics as a single CSV row.
func writeCSVResultsForActivity(w *csv.Writer, output schema.ActivityOutput, fmtFloat func(float64) string, intFmt string) error {
	// 1. Write Header Row
	header := []string{
		"avg_power",
		"normalized_power",
		"intensity_factor",
		"tss",
		"kilojoules",
		"duration_seconds",
		"sample_count",
		"used_avg_fallback",
		"label",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Row
	m := output.Metrics
	row := []string{
		fmtFloat(m.AvgPower),
		fmtFloat(m.NormalizedPower),
		fmt.Sprintf("%.2f", m.IntensityFactor),
		fmtFloat(m.TSS),
		fmtFloat(m.Kilojoules),
		fmtFloat(m.DurationSeconds),
		fmt.Sprintf(intFmt, m.SampleCount),
		strconv.FormatBool(m.UsedAvgPowerFallback),
		schema.GetEffortLabel(m.TSS),
	}
	return w.Write(row)
}
