package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/peakform/peakform/schema"
)

// writeJSONResultsForSeries marshals the summarized series to JSON and
// writes it. The summary covers the whole series even when the day list is
// trimmed to the result limit.
func writeJSONResultsForSeries(w io.Writer, series schema.TrainingLoadSeries, limit int) error {
	return writeJSON(w, schema.EnrichSeries(series, limit))
}

// writeCSVResultsForSeries writes every day of the series to a CSV writer.
func writeCSVResultsForSeries(w *csv.Writer, series schema.TrainingLoadSeries, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{
		"date",
		"daily_tss",
		"atl",
		"ctl",
		"tsb",
		"weekly_tss",
		"form",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for _, d := range series.Days {
		row := []string{
			d.Date.Format(schema.DayFormat),
			fmtFloat(d.DailyTSS),
			fmtFloat(d.ATL),
			fmtFloat(d.CTL),
			fmtFloat(d.TSB),
			fmtFloat(d.WeeklyTSS),
			string(d.Form),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
