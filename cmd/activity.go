package cmd

import (
	"github.com/peakform/peakform/core"
	"github.com/peakform/peakform/internal/contract"
	"github.com/spf13/cobra"
)

// activityCmd analyzes a single activity file.
var activityCmd = &cobra.Command{
	Use:   "activity [activities-file]",
	Short: "Show the stress metrics for a single activity.",
	Long: `Analyze one ride and compute its full set of stress metrics.

Reads the power samples (or average power fallback) and reports:
- Normalized Power, the 30-second smoothed effort measure
- Intensity Factor relative to your configured FTP
- Training Stress Score (TSS) and total work in kilojoules
- Variability Index and an effort label for the session

Examples:
  # Analyze a ride against the default 250 W FTP
  peakform activity ride.json

  # Analyze with your own FTP
  peakform activity ride.json --ftp 285

  # Include the time-in-zones breakdown
  peakform activity ride.json --show-zones

  # Export the metrics as JSON
  peakform activity ride.json --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteActivity(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run activity analysis", err)
		}
	},
}
