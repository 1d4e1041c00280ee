package schema

import "time"

// RunRecord represents a row from the peakform_runs table. Run keys are
// generated by the application so the same schema works across SQL
// dialects without auto-increment columns.
type RunRecord struct {
	RunKey        string
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	WindowStart   time.Time
	WindowEnd     time.Time
	ActivityCount int32
	TotalTSS      float64
	ConfigParams  *string
}

// DailyLoadRecord represents a row from the peakform_daily_loads table.
type DailyLoadRecord struct {
	RunKey    string
	Date      time.Time
	DailyTSS  float64
	ATL       float64
	CTL       float64
	TSB       float64
	WeeklyTSS float64
	Form      string
}

// DailyLoadRecordsFromSeries flattens a series into history store rows.
func DailyLoadRecordsFromSeries(runKey string, s TrainingLoadSeries) []DailyLoadRecord {
	records := make([]DailyLoadRecord, len(s.Days))
	for i, d := range s.Days {
		records[i] = DailyLoadRecord{
			RunKey:    runKey,
			Date:      d.Date,
			DailyTSS:  d.DailyTSS,
			ATL:       d.ATL,
			CTL:       d.CTL,
			TSB:       d.TSB,
			WeeklyTSS: d.WeeklyTSS,
			Form:      string(d.Form),
		}
	}
	return records
}
