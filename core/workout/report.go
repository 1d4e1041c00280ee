package workout

import (
	"github.com/peakform/peakform/schema"
)

// Report bundles a workout with the numbers the command layers print.
// Metrics and Validation are set by the operation that produced the report.
type Report struct {
	Workout    Workout                       `json:"workout"`
	Metrics    *schema.ActivityStressMetrics `json:"metrics,omitempty"`
	Validation *ValidationResult             `json:"validation,omitempty"`
	Zones      *schema.ZoneDistribution      `json:"zones,omitempty"`
}
