package schema

// CheckName identifies one training safety check.
type CheckName string

// All checks supported.
const (
	CheckRampRate CheckName = "ramp" // CTL rise over the last 7 days must stay at or below the threshold
	CheckTSBFloor CheckName = "tsb"  // Current TSB must stay at or above the threshold
)

// ValidCheckNames lists all valid check names.
var ValidCheckNames = map[CheckName]struct{}{
	CheckRampRate: {},
	CheckTSBFloor: {},
}

// DefaultCheckThresholds returns the default gate values per check.
func DefaultCheckThresholds() map[CheckName]float64 {
	return map[CheckName]float64{
		CheckRampRate: 8,
		CheckTSBFloor: -30,
	}
}

// CheckOutcome holds one evaluated check.
type CheckOutcome struct {
	Name      CheckName `json:"name"`
	Passed    bool      `json:"passed"`
	Observed  float64   `json:"observed"`
	Threshold float64   `json:"threshold"`
	Detail    string    `json:"detail"`
}

// CheckResult holds the results of a training safety check over a series.
type CheckResult struct {
	Passed        bool           `json:"passed"`
	Outcomes      []CheckOutcome `json:"outcomes"`
	WindowDays    int            `json:"window_days"`
	ActivityCount int            `json:"activity_count"`
	Flags         []TrendFlag    `json:"flags"` // Advisory flags observed alongside the gates
}
