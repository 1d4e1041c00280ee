package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/peakform/peakform/internal/contract"
	"github.com/peakform/peakform/internal/parquet"
	"github.com/peakform/peakform/schema"
)

// PrintSeriesResults outputs a training load series, dispatching based on
// the output format configured. The table shows only the most recent days
// up to the result limit; CSV and Parquet always carry the full series.
func PrintSeriesResults(series schema.TrainingLoadSeries, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.ParquetOut {
		if err := printParquetResultsForSeries(series, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		return nil
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteSeriesResults(w, series, cfg, duration)
	}, "Wrote series results")
}

// WriteSeriesResults outputs the series, dispatching based on the output format configured.
func WriteSeriesResults(w io.Writer, series schema.TrainingLoadSeries, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSONResultsForSeries(w, series, cfg.ResultLimit); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		if err := writeCSVResultsForSeries(csvWriter, series, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeSeriesTable(series, cfg, fmtFloat, duration, w)
	}
	return nil
}

// printParquetResultsForSeries writes the full series to a Parquet file.
// Parquet is a binary format, so an explicit output file is required.
func printParquetResultsForSeries(series schema.TrainingLoadSeries, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("an --output-file is required for parquet output")
	}

	// Direct exports carry no run key; only history rows do
	rows := parquet.ConvertDailyLoadRecords(schema.DailyLoadRecordsFromSeries("", series))
	if err := parquet.WriteDailyLoadsParquet(rows, cfg.OutputFile); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet series results to %s\n", cfg.OutputFile)
	return nil
}

// writeSeriesTable writes the most recent days of the series with a summary
// footer.
func writeSeriesTable(series schema.TrainingLoadSeries, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Date", "TSS", "ATL", "CTL", "TSB", "Weekly", "Form"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	form := formLabeler(cfg)

	days := series.Days
	if cfg.ResultLimit > 0 && len(days) > cfg.ResultLimit {
		days = days[len(days)-cfg.ResultLimit:]
	}

	var data [][]string
	for _, d := range days {
		row := []string{
			d.Date.Format(schema.DayFormat),
			fmtFloat(d.DailyTSS),
			fmtFloat(d.ATL),
			fmtFloat(d.CTL),
			fmtFloat(d.TSB),
			fmtFloat(d.WeeklyTSS),
			form(d.Form),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Compute summary stats
	summary := schema.SummarizeSeries(series)
	if _, err := fmt.Fprintf(writer, "Showing last %d of %d days, total TSS %s\n", len(days), summary.Days, fmtFloat(summary.TotalTSS)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Current ATL %s, CTL %s, TSB %s (%s)\n", fmtFloat(summary.CurrentATL), fmtFloat(summary.CurrentCTL), fmtFloat(summary.CurrentTSB), form(summary.CurrentForm)); err != nil {
		return err
	}
	if summary.PeakCTL > 0 {
		if _, err := fmt.Fprintf(writer, "Peak CTL %s on %s\n", fmtFloat(summary.PeakCTL), summary.PeakCTLDate.Format(schema.DayFormat)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Series build completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}
