package contract

import (
	"fmt"
	"path/filepath"

	"github.com/peakform/peakform/schema"
)

// LogRunHeader prints the activity source and the window being analyzed.
func LogRunHeader(cfg *Config) {
	sourceName := filepath.Base(cfg.ActivitiesPath)
	if sourceName == "" || sourceName == "." {
		sourceName = "activities"
	}

	// Line 1: The run summary (source and FTP)
	if cfg.UseEmojis {
		fmt.Printf("🚴 Source: %s (FTP: %.0fW)\n", sourceName, cfg.FTP)
	} else {
		fmt.Printf("Source: %s (FTP: %.0fW)\n", sourceName, cfg.FTP)
	}

	// Line 2: The actual date range being analyzed
	if cfg.UseEmojis {
		fmt.Printf("📅 Range: %s → %s\n", cfg.StartTime.Format(DateTimeFormat), cfg.EndTime.Format(DateTimeFormat))
	} else {
		fmt.Printf("Range: %s → %s\n", cfg.StartTime.Format(DateTimeFormat), cfg.EndTime.Format(DateTimeFormat))
	}
}

// LogCompareHeader prints the two windows being compared.
func LogCompareHeader(cfg *Config) {
	sourceName := filepath.Base(cfg.ActivitiesPath)
	if sourceName == "" || sourceName == "." {
		sourceName = "activities"
	}

	baseline := fmt.Sprintf("%s..%s", cfg.BaselineStart.Format(schema.DayFormat), cfg.BaselineEnd.Format(schema.DayFormat))
	target := fmt.Sprintf("%s..%s", cfg.TargetStart.Format(schema.DayFormat), cfg.TargetEnd.Format(schema.DayFormat))

	if cfg.UseEmojis {
		fmt.Printf("🚴 Source: %s (FTP: %.0fW)\n", sourceName, cfg.FTP)
		fmt.Printf("📊 Comparing: %s ↔ %s\n", baseline, target)
	} else {
		fmt.Printf("Source: %s (FTP: %.0fW)\n", sourceName, cfg.FTP)
		fmt.Printf("Comparing: %s vs %s\n", baseline, target)
	}
}
