// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/peakform/peakform/core/workout"
	"github.com/peakform/peakform/internal/contract"
	"github.com/peakform/peakform/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteActivity prints single-activity stress metrics using the configured output format.
func (ow *OutWriter) WriteActivity(output schema.ActivityOutput, cfg *contract.Config, duration time.Duration) error {
	return PrintActivityResults(output, cfg, duration)
}

// WriteSeries prints a training load series using the configured output format.
func (ow *OutWriter) WriteSeries(series schema.TrainingLoadSeries, cfg *contract.Config, duration time.Duration) error {
	return PrintSeriesResults(series, cfg, duration)
}

// WriteZones prints a resolved power zone table using the configured output format.
func (ow *OutWriter) WriteZones(output schema.ZonesOutput, cfg *contract.Config, duration time.Duration) error {
	return PrintZonesResults(output, cfg, duration)
}

// WriteTrend prints trend analysis results using the configured output format.
func (ow *OutWriter) WriteTrend(result schema.TrendResult, cfg *contract.Config, duration time.Duration) error {
	return PrintTrendResults(result, cfg, duration)
}

// WriteCompare prints window comparison results using the configured output format.
func (ow *OutWriter) WriteCompare(result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	return PrintCompareResults(result, cfg, duration)
}

// WriteWorkout prints a workout report using the configured output format.
func (ow *OutWriter) WriteWorkout(report workout.Report, cfg *contract.Config, duration time.Duration) error {
	return PrintWorkoutResults(report, cfg, duration)
}

// GetMaxTableTextWidth calculates the maximum width for free-form text cells
// (zone guidance, segment names) in table output based on terminal width and
// table configuration.
func GetMaxTableTextWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed numeric columns with table formatting
	baseWidth := 25 // Zone/rank + range + watts columns

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 20

	// Calculate available space for the text cell
	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable text width
		return 15
	}
	if available > 70 {
		// Maximum text width to prevent overly long cells
		return 70
	}
	return available
}
