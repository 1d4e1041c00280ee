package schema

import "time"

// TrendDelta is a window-over-window change for one series metric.
type TrendDelta struct {
	Metric      TrendMetric `json:"metric"`
	RecentAvg   float64     `json:"recent_avg"`
	PreviousAvg float64     `json:"previous_avg"`
	DeltaPct    float64     `json:"delta_pct"`
}

// TrendFlag is an advisory pattern detected in a load series. Flags never
// fail a computation; the check command decides which ones gate.
type TrendFlag struct {
	Name   TrendFlagName `json:"name"`
	Detail string        `json:"detail"`
	Since  time.Time     `json:"since,omitzero"`
}

// TrendResult holds the deltas and flags for one analysis window.
type TrendResult struct {
	WindowDays int          `json:"window_days"`
	Deltas     []TrendDelta `json:"deltas"`
	Flags      []TrendFlag  `json:"flags"`
}
