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

// PrintCompareResults outputs window comparison results, dispatching based
// on the output format configured.
func PrintCompareResults(result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.ParquetOut {
		return errParquetUnsupported
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteCompareResults(w, result, cfg, duration)
	}, "Wrote comparison results")
}

// WriteCompareResults outputs the comparison, dispatching based on the output format configured.
func WriteCompareResults(w io.Writer, result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSONResultsForCompare(w, result); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		if err := writeCSVResultsForCompare(csvWriter, result, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeCompareTable(result, cfg, fmtFloat, duration, w)
	}
	return nil
}

// writeCompareTable writes the two window summaries and the per-metric
// delta table.
func writeCompareTable(result schema.ComparisonResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	if err := writeWindowLine(writer, "Baseline", result.Baseline); err != nil {
		return err
	}
	if err := writeWindowLine(writer, "Target", result.Target); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Metric", "Baseline", "Target", "Delta", "Change"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, d := range result.Details {
		row := []string{
			d.Metric,
			fmtFloat(d.Baseline),
			fmtFloat(d.Target),
			formatDeltaCell(d.Delta, "", cfg.Precision, cfg.UseColors),
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

	if _, err := fmt.Fprintf(writer, "Comparison completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeWindowLine writes one window's date span and rest day count.
func writeWindowLine(writer io.Writer, name string, stats schema.WindowStats) error {
	_, err := fmt.Fprintf(writer, "%s %s to %s: %d days, %d rest\n",
		name,
		stats.Start.Format(schema.DayFormat),
		stats.End.Format(schema.DayFormat),
		stats.Days,
		stats.RestDays)
	return err
}
