package pmc

import (
	"math"
	"time"

	"github.com/peakform/peakform/schema"
)

// decayRate converts an EMA time constant in days into the fraction of
// the gap between yesterday's load and today's stress that closes today.
func decayRate(days float64) float64 {
	return 1 - math.Exp(-1/days)
}

// Advance rolls acute and chronic load forward one day from the previous
// day's state. TSB is computed from the previous day's loads, so it
// reflects the balance the athlete woke up with before today's session.
// WeeklyTSS needs a trailing window and is filled by the series builder.
func Advance(prev schema.DailyTrainingLoad, date time.Time, dailyTSS float64, constants schema.TimeConstants, thresholds schema.FormThresholds) schema.DailyTrainingLoad {
	tsb := prev.CTL - prev.ATL
	return schema.DailyTrainingLoad{
		Date:     schema.Day(date),
		DailyTSS: dailyTSS,
		ATL:      prev.ATL + (dailyTSS-prev.ATL)*decayRate(constants.ATLDays),
		CTL:      prev.CTL + (dailyTSS-prev.CTL)*decayRate(constants.CTLDays),
		TSB:      tsb,
		Form:     thresholds.Classify(tsb),
	}
}
