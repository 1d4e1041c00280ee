package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/peakform/peakform/core/workout"
)

// writeJSONResultsForWorkout marshals the workout.Report to JSON and writes it.
func writeJSONResultsForWorkout(w io.Writer, report workout.Report) error {
	return writeJSON(w, report)
}

// writeCSVResultsForWorkout writes the workout's flat segment list to a CSV
// writer. Ramp end power and cadence become empty cells when unset.
func writeCSVResultsForWorkout(w *csv.Writer, report workout.Report, fmtFloat func(float64) string, intFmt string) error {
	// 1. Write Header Row
	header := []string{
		"index",
		"type",
		"name",
		"duration_seconds",
		"power_start",
		"power_end",
		"cadence",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for i, seg := range report.Workout.Segments {
		powerEnd := ""
		if seg.PowerEnd != nil {
			powerEnd = fmtFloat(*seg.PowerEnd)
		}
		cadence := ""
		if seg.Cadence != nil {
			cadence = strconv.Itoa(*seg.Cadence)
		}
		row := []string{
			fmt.Sprintf(intFmt, i+1),
			string(seg.Type),
			seg.Name,
			fmt.Sprintf(intFmt, seg.DurationSeconds),
			fmtFloat(seg.PowerStart),
			powerEnd,
			cadence,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
