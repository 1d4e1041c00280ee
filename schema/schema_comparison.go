package schema

import "time"

// WindowStats summarizes one comparison window of a load series.
type WindowStats struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Days        int       `json:"days"`
	TotalTSS    float64   `json:"total_tss"`
	AvgDailyTSS float64   `json:"avg_daily_tss"`
	AvgATL      float64   `json:"avg_atl"`
	AvgCTL      float64   `json:"avg_ctl"`
	AvgTSB      float64   `json:"avg_tsb"`
	EndCTL      float64   `json:"end_ctl"` // CTL on the window's final day
	RestDays    int       `json:"rest_days"`
}

// ComparisonDetail pairs baseline and target values for one metric.
type ComparisonDetail struct {
	Metric   string  `json:"metric"`
	Baseline float64 `json:"baseline"`
	Target   float64 `json:"target"`
	Delta    float64 `json:"delta"`     // Target - Baseline
	DeltaPct float64 `json:"delta_pct"` // Delta relative to baseline, 0 when baseline is 0
}

// ComparisonResult holds two summarized windows and their per-metric deltas.
type ComparisonResult struct {
	Baseline WindowStats        `json:"baseline"`
	Target   WindowStats        `json:"target"`
	Details  []ComparisonDetail `json:"details"`
}
