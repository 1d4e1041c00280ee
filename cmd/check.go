package cmd

import (
	"github.com/peakform/peakform/core"
	"github.com/peakform/peakform/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd focused on automated training gate enforcement.
var checkCmd = &cobra.Command{
	Use:   "check [activities-file]",
	Short: "Enforce training load gates (fails with a non-zero exit on violations)",
	Long: `Build the load series and enforce gate thresholds over it.

Designed for automation - fails with a non-zero exit code when the
current load pattern breaks a gate, so a coaching pipeline or a
weekly cron can flag trouble without a human reading charts.

Available gates:
  ramp - CTL rise over the trailing 7 days must stay at or below the
         threshold (default 8)
  tsb  - current TSB must stay at or above the floor (default -30)

Advisory pattern flags are printed alongside the verdict but never
affect the exit code.

Examples:
  # Check the default gates over the configured window
  peakform check activities.json

  # Allow a steeper build during a planned overload block
  peakform check activities.json --checks "ramp:12"

  # Tighten the form floor before race week
  peakform check activities.json --checks "ramp:6,tsb:-15"

  # Gate a shorter window
  peakform check activities.json --lookback "6 weeks"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// Gate evaluation and the failure exit code live in ExecuteCheck
		if err := core.ExecuteCheck(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Training check failed", err)
		}
	},
}
