package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/peakform/peakform/schema"
)

// writeJSONResultsForCompare marshals the schema.ComparisonResult to JSON and writes it.
func writeJSONResultsForCompare(w io.Writer, result schema.ComparisonResult) error {
	return writeJSON(w, result)
}

// writeCSVResultsForCompare writes the per-metric comparison rows to a CSV writer.
func writeCSVResultsForCompare(w *csv.Writer, result schema.ComparisonResult, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{
		"metric",
		"baseline",
		"target",
		"delta",
		"delta_pct",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for _, d := range result.Details {
		row := []string{
			d.Metric,
			fmtFloat(d.Baseline),
			fmtFloat(d.Target),
			fmtFloat(d.Delta),
			fmtFloat(d.DeltaPct),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
