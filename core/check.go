package core

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/peakform/peakform/core/pmc"
	"github.com/peakform/peakform/internal/contract"
	"github.com/peakform/peakform/schema"
)

// rampWindowDays is the trailing window for the ramp rate gate.
const rampWindowDays = 7

// GetCheckResults builds the load series and gates it against the
// configured thresholds.
func GetCheckResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.CheckResult, time.Duration, error) {
	start := time.Now()

	output, err := runSeriesCore(ctx, cfg, mgr)
	if err != nil {
		return schema.CheckResult{}, 0, err
	}
	series := output.Series

	result := schema.CheckResult{
		Passed:        true,
		WindowDays:    len(series.Days),
		ActivityCount: output.ActivityCount,
		Flags:         pmc.DetectFlags(series, cfg.TrendPolicy),
	}

	// Evaluate gates in a fixed order so output is stable run to run.
	for _, name := range []schema.CheckName{schema.CheckRampRate, schema.CheckTSBFloor} {
		threshold, ok := cfg.CheckThresholds[name]
		if !ok {
			continue
		}
		outcome := evaluateCheck(series, name, threshold)
		if !outcome.Passed {
			result.Passed = false
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	return result, time.Since(start), nil
}

// ExecuteCheck runs the check command for CI/CD style gating. It builds the
// series, checks it against the thresholds, and returns a non-zero exit
// code if any gate fails.
func ExecuteCheck(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	result, duration, err := GetCheckResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}

	printCheckResult(&result, cfg, duration)

	// Return failure exit code if check failed
	if !result.Passed {
		violations := 0
		for _, o := range result.Outcomes {
			if !o.Passed {
				violations++
			}
		}
		fmt.Printf("%d violation(s) found\n", violations)
		os.Exit(1)
	}
	return nil
}

// evaluateCheck computes the observed value for one gate and compares it
// to its threshold.
func evaluateCheck(series schema.TrainingLoadSeries, name schema.CheckName, threshold float64) schema.CheckOutcome {
	outcome := schema.CheckOutcome{Name: name, Threshold: threshold}
	days := series.Days
	n := len(days)

	switch name {
	case schema.CheckRampRate:
		// Chronic load must not climb faster than the threshold over the
		// trailing week.
		var rise float64
		if n > rampWindowDays {
			rise = days[n-1].CTL - days[n-1-rampWindowDays].CTL
		} else if n > 0 {
			rise = days[n-1].CTL - days[0].CTL
		}
		outcome.Observed = rise
		outcome.Passed = rise <= threshold
		outcome.Detail = fmt.Sprintf("CTL rose %.1f over the last %d days (limit %.1f)", rise, rampWindowDays, threshold)

	case schema.CheckTSBFloor:
		// Current balance must not sit below the floor.
		var tsb float64
		if last, ok := series.Last(); ok {
			tsb = last.TSB
		}
		outcome.Observed = tsb
		outcome.Passed = tsb >= threshold
		outcome.Detail = fmt.Sprintf("current TSB %.1f (floor %.1f)", tsb, threshold)
	}

	return outcome
}

// printCheckResult prints the check result in a concise format suitable for CI/CD.
func printCheckResult(result *schema.CheckResult, cfg *contract.Config, duration time.Duration) {
	printCheckHeader(result, duration)

	if result.Passed {
		printCheckSuccess(result, cfg)
	} else {
		printCheckFailure(result, cfg)
	}

	for _, flag := range result.Flags {
		fmt.Printf("  advisory: %s (%s)\n", flag.Name, flag.Detail)
	}
	if len(result.Flags) > 0 {
		fmt.Println()
	}
}

// printCheckHeader prints the common header information for check results.
func printCheckHeader(result *schema.CheckResult, duration time.Duration) {
	fmt.Println("Training Check Results:")

	// Define labels and values for dynamic padding
	labels := []string{"Window:", "Activities:", "Gates:"}
	values := []any{
		fmt.Sprintf("%d days", result.WindowDays),
		result.ActivityCount,
		len(result.Outcomes),
	}

	// Find the longest label for consistent padding
	maxLabelLen := 0
	for _, label := range labels {
		if len(label) > maxLabelLen {
			maxLabelLen = len(label)
		}
	}

	// Print each label-value pair with consistent padding
	for i, label := range labels {
		fmt.Printf("  %-*s %v\n", maxLabelLen+1, label, values[i])
	}
	fmt.Println()

	fmt.Printf("Checked %d days in %v\n\n", result.WindowDays, duration)
}

// printCheckSuccess prints the success case output.
func printCheckSuccess(result *schema.CheckResult, cfg *contract.Config) {
	if cfg.UseEmojis {
		fmt.Printf("✅ All training gates passed\n\n")
	} else {
		fmt.Printf("All training gates passed\n\n")
	}

	fmt.Println("Values observed:")
	for _, o := range result.Outcomes {
		fmt.Printf("  %s: %.1f (threshold %.1f)\n", o.Name, o.Observed, o.Threshold)
	}
	fmt.Println()
}

// printCheckFailure prints the failure case output.
func printCheckFailure(result *schema.CheckResult, cfg *contract.Config) {
	violations := 0
	for _, o := range result.Outcomes {
		if !o.Passed {
			violations++
		}
	}

	if cfg.UseEmojis {
		fmt.Printf("❌ Training check failed: %d violation(s) found\n\n", violations)
	} else {
		fmt.Printf("Training check failed: %d violation(s) found\n\n", violations)
	}

	for _, o := range result.Outcomes {
		marker := "pass"
		if !o.Passed {
			marker = "FAIL"
		}
		fmt.Printf("  [%s] %s: %s\n", marker, o.Name, o.Detail)
	}
	fmt.Println()
}
