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

// PrintZonesResults outputs a resolved power zone table, dispatching based
// on the output format configured.
func PrintZonesResults(output schema.ZonesOutput, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.ParquetOut {
		return errParquetUnsupported
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteZonesResults(w, output, cfg, duration)
	}, "Wrote zone results")
}

// WriteZonesResults outputs the zone table, dispatching based on the output format configured.
func WriteZonesResults(w io.Writer, output schema.ZonesOutput, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSONResultsForZones(w, output); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		if err := writeCSVResultsForZones(csvWriter, output, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeZonesTable(output, cfg, duration, w)
	}
	return nil
}

// writeZonesTable writes the zone ranges with per-zone training guidance.
func writeZonesTable(output schema.ZonesOutput, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Zone", "Name", "% FTP", "Watts", "Guidance"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxText := GetMaxTableTextWidth(cfg)

	var data [][]string
	for _, r := range output.Ranges {
		row := []string{
			fmt.Sprintf("Z%d", r.Zone.ID),
			r.Zone.Name,
			formatFractionRange(r.Zone),
			formatWattRange(r),
			contract.TruncateText(r.Zone.Description, maxText),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "%s zones at FTP %.0f W\n", output.Model, output.FTP); err != nil {
		return err
	}
	if output.Classified != nil {
		c := output.Classified
		if _, err := fmt.Fprintf(writer, "%s = %.0f W (%.0f%% of FTP) lands in Z%d %s\n", c.Input, c.Watts, c.Fraction*100, c.Zone.ID, c.Zone.Name); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Zone lookup completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// formatFractionRange renders zone bounds as FTP percentages.
func formatFractionRange(z schema.Zone) string {
	if z.Unbounded() {
		return fmt.Sprintf("%.0f%%+", z.MinFraction*100)
	}
	return fmt.Sprintf("%.0f-%.0f%%", z.MinFraction*100, z.MaxFraction*100)
}

// formatWattRange renders zone bounds resolved to watts.
func formatWattRange(r schema.ZoneWattRange) string {
	if r.MaxWatts == 0 {
		return fmt.Sprintf("%d+", r.MinWatts)
	}
	return fmt.Sprintf("%d-%d", r.MinWatts, r.MaxWatts)
}
