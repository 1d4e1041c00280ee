// Package schema has the data model, constants and shared helpers for all
// parts of peakform.
package schema

// PowerSample is one point of a recorded power stream. Samples are ordered
// by offset and spaced at a regular interval, normally one second.
type PowerSample struct {
	OffsetSeconds int     `json:"offset_seconds"` // Seconds since the start of the activity
	Watts         float64 `json:"watts"`          // Recorded power, never negative
}

// WorkoutSegment is a segment-level effort used when only target power,
// not a raw sample stream, is known. Power is a fraction of FTP so the
// same segment list works at any threshold.
type WorkoutSegment struct {
	DurationSeconds float64 `json:"duration_seconds"` // Segment length, must be positive
	PowerFraction   float64 `json:"power_fraction"`   // Average power as a fraction of FTP
}

// ActivityStressMetrics holds the derived stress metrics for one activity.
// All values are non-negative. NormalizedPower >= AvgPower is expected but
// not enforced; very short or perfectly steady efforts may violate it.
type ActivityStressMetrics struct {
	AvgPower             float64 `json:"avg_power"`               // Arithmetic mean of power samples
	NormalizedPower      float64 `json:"normalized_power"`        // Fourth-power weighted rolling average
	IntensityFactor      float64 `json:"intensity_factor"`        // NormalizedPower / FTP
	TSS                  float64 `json:"tss"`                     // Training Stress Score
	Kilojoules           float64 `json:"kilojoules"`              // Mechanical work performed
	DurationSeconds      float64 `json:"duration_seconds"`        // Effort length
	SampleCount          int     `json:"sample_count"`            // Number of samples consumed, 0 for segment input
	UsedAvgPowerFallback bool    `json:"used_avg_power_fallback"` // True when NP fell back to average power
}
