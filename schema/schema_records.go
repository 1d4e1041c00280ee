package schema

import "time"

// ActivityRecord is the boundary record supplied by an external activity
// store. Optional numeric fields are pointers so an absent value is
// distinguishable from zero; the loader validates them once at the
// boundary and the engine recomputes derived values instead of trusting
// stale stored ones.
type ActivityRecord struct {
	Date            time.Time     `json:"date"`                       // When the activity happened
	Name            string        `json:"name,omitempty"`             // Optional display name
	DurationSeconds float64       `json:"duration_seconds"`           // Moving time, must be positive
	FTPAtTime       float64       `json:"ftp_at_time,omitempty"`      // FTP in effect for this activity, 0 = use profile FTP
	TSS             *float64      `json:"tss,omitempty"`              // Stored stress score, recomputed when power data exists
	AvgPower        *float64      `json:"avg_power,omitempty"`        // Stored average power in watts
	NormalizedPower *float64      `json:"normalized_power,omitempty"` // Stored normalized power in watts
	Samples         []PowerSample `json:"samples,omitempty"`          // Optional raw stream for full recomputation
}

// Day returns the activity's calendar day.
func (r ActivityRecord) Day() time.Time {
	return Day(r.Date)
}
