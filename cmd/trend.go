package cmd

import (
	"github.com/peakform/peakform/core"
	"github.com/peakform/peakform/internal/contract"
	"github.com/spf13/cobra"
)

// trendCmd analyzes how training load has shifted recently.
var trendCmd = &cobra.Command{
	Use:   "trend [activities-file]",
	Short: "Track how training load metrics change week over week",
	Long: `Compare the most recent window of the load series against the one
before it.

Shows the percent movement of each metric, helping you:
- Confirm a build phase is actually building
- Catch load ramping up faster than planned
- Validate that a recovery week reduced fatigue
- Spot drift toward overreaching before it bites

Advisory flags fire on risky patterns, such as chronic load climbing
faster than the configured ramp limit or form stuck below the floor
for days on end.

Examples:
  # Week-over-week movement for the default window
  peakform trend activities.json

  # Compare the last 14 days against the 14 before
  peakform trend activities.json --window 14

  # Trend over a pinned analysis window
  peakform trend activities.json --start 2025-04-01 --end 2025-06-30`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrend(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run trend analysis", err)
		}
	},
}
