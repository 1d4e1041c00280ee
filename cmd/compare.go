package cmd

import (
	"github.com/peakform/peakform/core"
	"github.com/peakform/peakform/internal/contract"
	"github.com/spf13/cobra"
)

// compareCmd focused on baseline vs target window comparisons.
var compareCmd = &cobra.Command{
	Use:   "compare [activities-file]",
	Short: "Compare training load between two time windows.",
	Long: `Compare load metrics between a baseline window and a target window to
track how training has evolved.

Ideal for:
- Block reviews - did this build block move fitness?
- Recovery validation - verify an easy week restored form
- Season bookends - compare early base to late build
- Ramp audits - check whether load rose at a sane rate

Two ways to pick the windows:
  --baseline "28 days"   carves two back-to-back windows off the end
                         of the configured range
  explicit bounds        set all four of --baseline-start,
                         --baseline-end, --target-start, --target-end

The comparison shows per-metric baseline and target values, deltas,
and percent movement.

Examples:
  # Compare the last 4 weeks against the 4 before
  peakform compare activities.json --baseline "28 days"

  # Compare two specific blocks
  peakform compare activities.json --baseline-start 2025-03-01 --baseline-end 2025-03-28 --target-start 2025-04-01 --target-end 2025-04-28

  # Export the comparison to CSV for tracking
  peakform compare activities.json --baseline "6 weeks" --output csv --output-file compare.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// Window validation is done in ExecuteCompare
		if err := core.ExecuteCompare(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run comparison", err)
		}
	},
}
