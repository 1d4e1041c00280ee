package cmd

import (
	"github.com/peakform/peakform/core"
	"github.com/peakform/peakform/internal/contract"
	"github.com/peakform/peakform/schema"
	"github.com/spf13/cobra"
)

// workoutCmd focused on planned workout tooling.
var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Build, price and validate planned workouts.",
	Long: `Work with planned workouts before you ride them.

A workout is a sequence of segments, each with a duration and a power
target expressed as a fraction of FTP. Segments can come from a
structured workout file or from an inline description such as
"4x5min @ 105%".

Available subcommands:
  workout create   - Build a workout from a description
  workout parse    - Parse a description into workout JSON
  workout tss      - Price a workout's planned training stress
  workout validate - Check a workout's structure for problems

Each subcommand accepts --description, so a workout file is never
required to try something out.`,
}

// workoutCreateCmd builds a structured workout from a description.
var workoutCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Build a structured workout from a text description",
	Long: `Turn a short text description into a fully structured workout.

Supported description shapes:
  "4x5min @ 105%"           intervals: work sets with recoveries
  "2x20min @ 90%"           sustained blocks below threshold
  "90min endurance"         a steady endurance ride
  "1h30m @ 70%"             duration plus a single intensity

A warmup and cooldown are added around the main set, and the whole
workout is priced: planned TSS, Intensity Factor and work in
kilojoules against your FTP.

Examples:
  # Classic VO2 session
  peakform workout create --description "4x5min @ 105%"

  # Sweet spot with zones breakdown
  peakform workout create --description "2x20min @ 90%" --show-zones

  # Endurance ride priced against your FTP
  peakform workout create --description "2h endurance" --ftp 285`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteWorkoutCreate(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot create workout", err)
		}
	},
}

// workoutParseCmd emits the structured form of a description as JSON.
var workoutParseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a text description into structured workout JSON",
	Long: `Parse a workout description and print the structured result as JSON.

This is the create subcommand with JSON output forced on, handy for
piping a parsed workout into other tools or saving it as a workout
file to edit further.

Examples:
  # Emit the structured workout
  peakform workout parse --description "4x5min @ 105%"

  # Save it as a workout file
  peakform workout parse --description "2x20min @ 90%" --output-file sweetspot.json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		cfg.Output = schema.JSONOut
		if err := core.ExecuteWorkoutCreate(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot parse workout", err)
		}
	},
}

// workoutTSSCmd prices the planned stress of a workout.
var workoutTSSCmd = &cobra.Command{
	Use:   "tss [workout-file]",
	Short: "Compute the planned training stress of a workout",
	Long: `Price a planned workout against your FTP before riding it.

Reports planned TSS, Intensity Factor, Normalized Power and total
work so you can judge whether the session fits today's form. The
workout comes from a structured workout file, or from --description
(which wins when both are given).

Examples:
  # Price a workout file
  peakform workout tss intervals.json

  # Price an inline description instead
  peakform workout tss --description "4x5min @ 105%"

  # See how the numbers move with a higher FTP
  peakform workout tss intervals.json --ftp 300`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteWorkoutTSS(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot price workout", err)
		}
	},
}

// workoutValidateCmd checks workout structure.
var workoutValidateCmd = &cobra.Command{
	Use:   "validate [workout-file]",
	Short: "Check a workout's structure for problems",
	Long: `Validate a planned workout and report structural problems.

Errors cover broken structure: missing name, no segments, segments
without a duration or power target. Warnings cover suspicious but
rideable plans: very short or very long sessions, or power targets
beyond double FTP.

Examples:
  # Validate a workout file
  peakform workout validate intervals.json

  # Validate an inline description
  peakform workout validate --description "4x5min @ 105%"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteWorkoutValidate(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot validate workout", err)
		}
	},
}
