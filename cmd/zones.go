package cmd

import (
	"github.com/peakform/peakform/core"
	"github.com/peakform/peakform/internal/contract"
	"github.com/spf13/cobra"
)

// zonesCmd displays the power zone table for the configured FTP.
var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "Display the power zone table for your FTP",
	Long: `Show the watt ranges of every zone in the configured model.

Provides complete transparency into how efforts are classified,
including:
- Zone names, numbers and descriptions
- Watt boundaries computed from your FTP
- Custom zone definitions from .peakform.yaml when configured

No activity data is read - this is purely informational.

Use this to:
- Pin zone targets to your head unit before a workout
- Explain a training plan's zone language to a coach or athlete
- Validate a custom zone model configuration
- Classify a single power number or FTP fraction

Examples:
  # Show Coggan zones for the default FTP
  peakform zones

  # Zones for your own FTP
  peakform zones --ftp 285

  # The three-zone polarized model instead
  peakform zones --zone-model polarized

  # Which zone is 250 watts in?
  peakform zones --classify 250

  # Which zone is 85% of FTP in?
  peakform zones --classify 0.85`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteZones(cfg); err != nil {
			contract.LogFatal("Cannot display zones", err)
		}
	},
}
