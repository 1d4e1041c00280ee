package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/peakform/peakform/internal/contract"
	"github.com/peakform/peakform/schema"
)

// PrintTrendResults outputs trend deltas and advisory flags, dispatching
// based on the output format configured.
func PrintTrendResults(result schema.TrendResult, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.ParquetOut {
		return errParquetUnsupported
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteTrendResults(w, result, cfg, duration)
	}, "Wrote trend results")
}

// WriteTrendResults outputs the trend analysis, dispatching based on the output format configured.
func WriteTrendResults(w io.Writer, result schema.TrendResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSONResultsForTrend(w, result); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		// Flags stay out of the CSV; they are advisory text, not window math
		if err := writeCSVResultsForTrend(csvWriter, result, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeTrendTable(result, cfg, fmtFloat, duration, w)
	}
	return nil
}

// writeTrendTable writes the window-over-window deltas, then any advisory
// flags as plain lines.
func writeTrendTable(result schema.TrendResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Metric", "Recent Avg", "Previous Avg", "Change"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, d := range result.Deltas {
		row := []string{
			string(d.Metric),
			fmtFloat(d.RecentAvg),
			fmtFloat(d.PreviousAvg),
			formatDeltaCell(d.DeltaPct, "%", cfg.Precision, cfg.UseColors),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(result.Flags) == 0 {
		if _, err := fmt.Fprintf(writer, "No advisory flags raised\n"); err != nil {
			return err
		}
	}
	for _, flag := range result.Flags {
		detail := flag.Detail
		if !flag.Since.IsZero() {
			detail = fmt.Sprintf("%s (since %s)", detail, flag.Since.Format(schema.DayFormat))
		}
		if cfg.UseEmojis {
			if _, err := fmt.Fprintf(writer, "⚠️  %s: %s\n", flag.Name, detail); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(writer, "Flag %s: %s\n", flag.Name, detail); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(writer, "Trend analysis completed in %v over a %d-day window\n", duration, result.WindowDays); err != nil {
		return err
	}
	return nil
}
