package schema

import "time"

// DailyTrainingLoad is one day of the performance management series.
// ATL and CTL are pure functions of the day's TSS and the previous day's
// values, so a series is only ever recomputed forward from a change.
type DailyTrainingLoad struct {
	Date      time.Time `json:"date"`       // Calendar day, normalized to UTC midnight
	DailyTSS  float64   `json:"daily_tss"`  // Total stress for the day, zero on rest days
	ATL       float64   `json:"atl"`        // Acute training load (fatigue)
	CTL       float64   `json:"ctl"`        // Chronic training load (fitness)
	TSB       float64   `json:"tsb"`        // Stress balance before the day's session
	WeeklyTSS float64   `json:"weekly_tss"` // Trailing 7-day TSS sum, current day inclusive
	Form      FormState `json:"form"`       // Classification of TSB
}

// TrainingLoadSeries is a gap-free, date-ordered run of daily loads
// covering [Start, End] inclusive.
type TrainingLoadSeries struct {
	Start time.Time           `json:"start"`
	End   time.Time           `json:"end"`
	Days  []DailyTrainingLoad `json:"days"`
}

// Len returns the number of days in the series.
func (s TrainingLoadSeries) Len() int {
	return len(s.Days)
}

// Last returns the most recent day of the series. The second return is
// false for an empty series.
func (s TrainingLoadSeries) Last() (DailyTrainingLoad, bool) {
	if len(s.Days) == 0 {
		return DailyTrainingLoad{}, false
	}
	return s.Days[len(s.Days)-1], true
}
