package cmd

import (
	"github.com/peakform/peakform/core"
	"github.com/peakform/peakform/internal/contract"
	"github.com/spf13/cobra"
)

// seriesCmd builds the daily training load series.
var seriesCmd = &cobra.Command{
	Use:   "series [activities-file]",
	Short: "Show the daily training load series for the configured window.",
	Long: `Roll your activity history up to daily stress totals and build the
training load series.

Each day carries:
- TSS, the total stress accumulated that day
- ATL (fatigue), the 7-day exponentially weighted load
- CTL (fitness), the 42-day exponentially weighted load
- TSB (form), yesterday's fitness minus yesterday's fatigue
- A form state label (Rested, Fresh, Neutral, Tired, Very Tired)

Days without activities still appear: fatigue and fitness decay through
rest days, which is exactly what the series is for.

Examples:
  # Build the series for the default 90 day window
  peakform series activities.json

  # Focus on the last six weeks
  peakform series activities.json --lookback "6 weeks"

  # Pin the window to exact dates
  peakform series activities.json --start 2025-03-01 --end 2025-05-31

  # Export the full series to CSV for tracking
  peakform series activities.json --output csv --output-file loads.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSeries(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run series build", err)
		}
	},
}
