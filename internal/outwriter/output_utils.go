package outwriter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/peakform/peakform/internal/contract"
	"github.com/peakform/peakform/schema"
)

// errParquetUnsupported is returned by result types whose shape does not
// flatten to a single table. Series output and history export cover the
// columnar cases.
var errParquetUnsupported = errors.New("parquet output is only available for series results and history export")

// writeWithFile handles the common pattern of opening a file, writing to it
// and cleaning up. It accepts a writer function that takes an io.Writer and
// returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// effortLabeler returns the effort label formatter honoring the color setting.
func effortLabeler(cfg *contract.Config) func(float64) string {
	if cfg.UseColors {
		return contract.GetColorEffortLabel
	}
	return schema.GetEffortLabel
}

// formLabeler returns the form state formatter honoring the color setting.
func formLabeler(cfg *contract.Config) func(schema.FormState) string {
	if cfg.UseColors {
		return contract.GetColorFormLabel
	}
	return func(form schema.FormState) string {
		return string(form)
	}
}

// formatDeltaCell renders a signed change with a direction arrow. Color
// tracks direction, not judgment: a falling TSB can be part of a planned
// build.
func formatDeltaCell(value float64, suffix string, precision int, useColors bool) string {
	var red, green, yellow func(...any) string
	if useColors {
		red = color.New(color.FgRed).SprintFunc()
		green = color.New(color.FgGreen).SprintFunc()
		yellow = color.New(color.FgYellow).SprintFunc()
	} else {
		red = fmt.Sprint
		green = fmt.Sprint
		yellow = fmt.Sprint
	}

	switch {
	case value > 0:
		// Explicitly add + sign
		return green(fmt.Sprintf("+%.*f%s ▲", precision, value, suffix))
	case value < 0:
		// Keeps the - sign from the float
		return red(fmt.Sprintf("%.*f%s ▼", precision, value, suffix))
	default:
		// For 0.0 deltas, format simply without an indicator
		return yellow(fmt.Sprintf("%.*f%s", precision, 0.0, suffix))
	}
}

// writeZoneDistributionTable renders the time-in-zones split shared by the
// activity and workout outputs.
func writeZoneDistributionTable(w io.Writer, dist schema.ZoneDistribution, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Zone", "Name", "Time", "Share"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, zd := range dist.Zones {
		row := []string{
			fmt.Sprintf("Z%d", zd.Zone.ID),
			zd.Zone.Name,
			schema.FormatHMS(zd.Seconds),
			fmtFloat(zd.Percentage) + "%",
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Time in zones (%s model): %s total\n", dist.Model, schema.FormatHMS(dist.TotalSeconds))
	return err
}
