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

// PrintActivityResults outputs single-activity stress metrics, dispatching
// based on the output format configured.
func PrintActivityResults(output schema.ActivityOutput, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.ParquetOut {
		return errParquetUnsupported
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteActivityResults(w, output, cfg, duration)
	}, "Wrote activity results")
}

// WriteActivityResults outputs the activity metrics, dispatching based on the output format configured.
func WriteActivityResults(w io.Writer, output schema.ActivityOutput, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSONResultsForActivity(w, output); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		if err := writeCSVResultsForActivity(csvWriter, output, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeActivityTable(output, cfg, fmtFloat, intFmt, duration, w)
	}
	return nil
}

// writeActivityTable writes the metrics as a metric/value table, followed by
// the time-in-zones split when one was computed.
func writeActivityTable(output schema.ActivityOutput, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Metric", "Value"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	m := output.Metrics
	label := effortLabeler(cfg)(m.TSS)

	data := [][]string{
		{"Avg Power", fmtFloat(m.AvgPower) + " W"},
		{"Normalized Power", fmtFloat(m.NormalizedPower) + " W"},
		// IF always gets two decimals; at precision 1 every tempo ride rounds to 0.9
		{"Intensity Factor", fmt.Sprintf("%.2f", m.IntensityFactor)},
		{"TSS", fmt.Sprintf("%s (%s)", fmtFloat(m.TSS), label)},
		{"Work", fmtFloat(m.Kilojoules) + " kJ"},
		{"Duration", schema.FormatHMS(m.DurationSeconds)},
		{"Samples", fmt.Sprintf(intFmt, m.SampleCount)},
	}
	if m.UsedAvgPowerFallback {
		data = append(data, []string{"NP Basis", "avg power fallback"})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if output.Zones != nil {
		if err := writeZoneDistributionTable(writer, *output.Zones, fmtFloat); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "Activity analysis completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
