package schema

// FormThresholds is the TSB-to-form classification policy. The cut points
// are a named, overridable policy because published PMC implementations
// disagree on the exact boundaries.
type FormThresholds struct {
	Rested     float64 `json:"rested"`      // tsb above this is rested
	Fresh      float64 `json:"fresh"`       // tsb above this, up to Rested, is fresh
	NeutralLow float64 `json:"neutral_low"` // tsb at or above this, up to Fresh, is neutral
	TiredLow   float64 `json:"tired_low"`   // tsb at or above this, below NeutralLow, is tired
}

// DefaultFormThresholds returns the standard PMC form boundaries.
func DefaultFormThresholds() FormThresholds {
	return FormThresholds{Rested: 20, Fresh: 5, NeutralLow: -10, TiredLow: -30}
}

// Classify maps a training stress balance value to a form state.
func (t FormThresholds) Classify(tsb float64) FormState {
	switch {
	case tsb > t.Rested:
		return FormRested
	case tsb > t.Fresh:
		return FormFresh
	case tsb >= t.NeutralLow:
		return FormNeutral
	case tsb >= t.TiredLow:
		return FormTired
	default:
		return FormVeryTired
	}
}

// TimeConstants carries the EMA time constants for the load recurrence.
// The acute window must be shorter than the chronic window.
type TimeConstants struct {
	ATLDays float64 `json:"atl_days"` // Acute (fatigue) window
	CTLDays float64 `json:"ctl_days"` // Chronic (fitness) window
}

// DefaultTimeConstants returns the standard 7-day / 42-day PMC constants.
func DefaultTimeConstants() TimeConstants {
	return TimeConstants{ATLDays: 7, CTLDays: 42}
}

// TrendPolicy tunes the advisory flag detectors.
type TrendPolicy struct {
	MaxWeeklyRamp float64 `json:"max_weekly_ramp"` // Largest safe CTL rise over 7 days
	TSBFloor      float64 `json:"tsb_floor"`       // TSB below this counts toward a fatigue streak
	StreakDays    int     `json:"streak_days"`     // Consecutive days below the floor before flagging
}

// DefaultTrendPolicy returns conservative flag thresholds.
func DefaultTrendPolicy() TrendPolicy {
	return TrendPolicy{MaxWeeklyRamp: 8, TSBFloor: -10, StreakDays: 7}
}
