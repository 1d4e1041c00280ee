package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/peakform/peakform/schema"
)

// writeJSONResultsForZones marshals the schema.ZonesOutput to JSON and writes it.
func writeJSONResultsForZones(w io.Writer, output schema.ZonesOutput) error {
	return writeJSON(w, output)
}

// writeCSVResultsForZones writes the resolved zone ranges to a CSV writer.
// Unbounded upper limits become empty cells rather than zeros.
func writeCSVResultsForZones(w *csv.Writer, output schema.ZonesOutput, fmtFloat func(float64) string, intFmt string) error {
	// 1. Write Header Row
	header := []string{
		"zone",
		"name",
		"min_fraction",
		"max_fraction",
		"min_watts",
		"max_watts",
		"description",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for _, r := range output.Ranges {
		maxFraction := ""
		maxWatts := ""
		if !r.Zone.Unbounded() {
			maxFraction = fmtFloat(r.Zone.MaxFraction)
			maxWatts = fmt.Sprintf(intFmt, r.MaxWatts)
		}
		row := []string{
			fmt.Sprintf(intFmt, r.Zone.ID),
			r.Zone.Name,
			fmtFloat(r.Zone.MinFraction),
			maxFraction,
			fmt.Sprintf(intFmt, r.MinWatts),
			maxWatts,
			r.Zone.Description,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
