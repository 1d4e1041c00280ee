package workout

import (
	"fmt"
	"strings"
)

// Validation thresholds.
const (
	shortWorkoutSeconds  = 1800
	longWorkoutSeconds   = 14400
	maxSanePowerFraction = 2.0
)

// ValidationResult reports problems with a workout: errors make it
// unusable, warnings are advisory.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validate checks a workout's structure. Errors and warnings are always
// non-nil so a JSON rendering shows empty lists, not null.
func Validate(w Workout) ValidationResult {
	result := ValidationResult{Valid: true, Errors: []string{}, Warnings: []string{}}

	if strings.TrimSpace(w.Name) == "" {
		result.Errors = append(result.Errors, "workout name is required")
	}
	if len(w.Segments) == 0 {
		result.Errors = append(result.Errors, "workout must have at least one segment")
	}

	totalSeconds := 0
	maxFraction := 0.0
	for i, seg := range w.Segments {
		if seg.DurationSeconds <= 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("segment %d has no duration", i))
		}
		if seg.PowerStart <= 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("segment %d has no power target", i))
		}
		totalSeconds += seg.DurationSeconds
		maxFraction = max(maxFraction, seg.PowerStart)
		if seg.PowerEnd != nil {
			maxFraction = max(maxFraction, *seg.PowerEnd)
		}
	}

	if totalSeconds < shortWorkoutSeconds {
		result.Warnings = append(result.Warnings, "workout is quite short (< 30 minutes)")
	} else if totalSeconds > longWorkoutSeconds {
		result.Warnings = append(result.Warnings, "workout is very long (> 4 hours)")
	}
	if maxFraction > maxSanePowerFraction {
		result.Warnings = append(result.Warnings, "very high power values detected (> 200% FTP)")
	}

	result.Valid = len(result.Errors) == 0
	return result
}
