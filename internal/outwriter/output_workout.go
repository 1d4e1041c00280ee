package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/peakform/peakform/core/workout"
	"github.com/peakform/peakform/internal/contract"
	"github.com/peakform/peakform/schema"
)

// PrintWorkoutResults outputs a workout report, dispatching based on the
// output format configured.
func PrintWorkoutResults(report workout.Report, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.ParquetOut {
		return errParquetUnsupported
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteWorkoutResults(w, report, cfg, duration)
	}, "Wrote workout results")
}

// WriteWorkoutResults outputs the workout report, dispatching based on the output format configured.
func WriteWorkoutResults(w io.Writer, report workout.Report, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSONResultsForWorkout(w, report); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		if err := writeCSVResultsForWorkout(csvWriter, report, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWorkoutTable(report, cfg, fmtFloat, duration, w)
	}
	return nil
}

// writeWorkoutTable writes the segment list plus whichever metrics,
// validation and zone sections the report carries.
func writeWorkoutTable(report workout.Report, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	wk := report.Workout
	if _, err := fmt.Fprintf(writer, "Workout: %s (%s, %s)\n", wk.Name, wk.Type, schema.FormatHMS(float64(wk.TotalDurationSeconds))); err != nil {
		return err
	}
	if wk.Description != "" {
		if _, err := fmt.Fprintf(writer, "%s\n", wk.Description); err != nil {
			return err
		}
	}

	table := tablewriter.NewWriter(writer)
	defer func() { _ = table.Close() }()

	table.Header([]string{"#", "Type", "Name", "Duration", "Power", "Cadence"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxText := GetMaxTableTextWidth(cfg)

	var data [][]string
	for i, seg := range wk.Segments {
		cadence := "-"
		if seg.Cadence != nil {
			cadence = strconv.Itoa(*seg.Cadence)
		}
		row := []string{
			strconv.Itoa(i + 1),
			string(seg.Type),
			contract.TruncateText(seg.Name, maxText),
			schema.FormatHMS(float64(seg.DurationSeconds)),
			formatSegmentPower(seg),
			cadence,
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if report.Metrics != nil {
		m := report.Metrics
		label := effortLabeler(cfg)(m.TSS)
		if _, err := fmt.Fprintf(writer, "Planned TSS %s (%s), IF %.2f, NP %s W\n", fmtFloat(m.TSS), label, m.IntensityFactor, fmtFloat(m.NormalizedPower)); err != nil {
			return err
		}
	}
	if report.Validation != nil {
		if err := writeValidationLines(writer, *report.Validation, cfg); err != nil {
			return err
		}
	}
	if report.Zones != nil {
		if err := writeZoneDistributionTable(writer, *report.Zones, fmtFloat); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "Workout processed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// formatSegmentPower renders a segment's power target as an FTP percentage,
// with both ends for a ramp.
func formatSegmentPower(seg workout.Segment) string {
	if seg.Ramp() {
		return fmt.Sprintf("%.0f-%.0f%%", seg.PowerStart*100, *seg.PowerEnd*100)
	}
	return fmt.Sprintf("%.0f%%", seg.PowerStart*100)
}

// writeValidationLines writes the validation verdict with its errors and
// warnings.
func writeValidationLines(writer io.Writer, v workout.ValidationResult, cfg *contract.Config) error {
	verdict := "Workout is valid"
	if !v.Valid {
		verdict = "Workout is invalid"
	}
	if cfg.UseEmojis {
		mark := "✅"
		if !v.Valid {
			mark = "❌"
		}
		verdict = mark + " " + verdict
	}
	if _, err := fmt.Fprintf(writer, "%s\n", verdict); err != nil {
		return err
	}

	for _, e := range v.Errors {
		if _, err := fmt.Fprintf(writer, "  error: %s\n", e); err != nil {
			return err
		}
	}
	for _, warning := range v.Warnings {
		if _, err := fmt.Fprintf(writer, "  warning: %s\n", warning); err != nil {
			return err
		}
	}
	return nil
}
