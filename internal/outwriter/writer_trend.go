package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/peakform/peakform/schema"
)

// writeJSONResultsForTrend marshals the schema.TrendResult to JSON and writes it.
func writeJSONResultsForTrend(w io.Writer, result schema.TrendResult) error {
	return writeJSON(w, result)
}

// writeCSVResultsForTrend writes the per-metric trend deltas to a CSV writer.
func writeCSVResultsForTrend(w *csv.Writer, result schema.TrendResult, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{
		"metric",
		"recent_avg",
		"previous_avg",
		"delta_pct",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for _, d := range result.Deltas {
		row := []string{
			string(d.Metric),
			fmtFloat(d.RecentAvg),
			fmtFloat(d.PreviousAvg),
			fmtFloat(d.DeltaPct),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
