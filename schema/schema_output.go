package schema

import "time"

// EnrichedActivityMetrics adds presentation data to ActivityStressMetrics.
type EnrichedActivityMetrics struct {
	Label string `json:"label"`
	ActivityStressMetrics
}

// EnrichActivity adds an effort label to activity metrics.
func EnrichActivity(m ActivityStressMetrics) EnrichedActivityMetrics {
	return EnrichedActivityMetrics{
		Label:                 GetEffortLabel(m.TSS),
		ActivityStressMetrics: m,
	}
}

// SeriesSummary condenses a load series to its current state.
type SeriesSummary struct {
	Days        int       `json:"days"`
	TotalTSS    float64   `json:"total_tss"`
	CurrentATL  float64   `json:"current_atl"`
	CurrentCTL  float64   `json:"current_ctl"`
	CurrentTSB  float64   `json:"current_tsb"`
	CurrentForm FormState `json:"current_form"`
	PeakCTL     float64   `json:"peak_ctl"`
	PeakCTLDate time.Time `json:"peak_ctl_date,omitzero"`
}

// SummarizeSeries computes the summary for a load series. An empty series
// yields a zero summary.
func SummarizeSeries(s TrainingLoadSeries) SeriesSummary {
	summary := SeriesSummary{Days: len(s.Days)}
	for _, d := range s.Days {
		summary.TotalTSS += d.DailyTSS
		if d.CTL > summary.PeakCTL {
			summary.PeakCTL = d.CTL
			summary.PeakCTLDate = d.Date
		}
	}
	if last, ok := s.Last(); ok {
		summary.CurrentATL = last.ATL
		summary.CurrentCTL = last.CTL
		summary.CurrentTSB = last.TSB
		summary.CurrentForm = last.Form
	}
	return summary
}

// EnrichedSeries pairs a summary with the most recent days of a series
// for JSON output and MCP responses.
type EnrichedSeries struct {
	Summary SeriesSummary       `json:"summary"`
	Days    []DailyTrainingLoad `json:"days"`
}

// EnrichSeries summarizes the full series and keeps only the most recent
// limit days. A non-positive limit keeps every day.
func EnrichSeries(s TrainingLoadSeries, limit int) EnrichedSeries {
	days := s.Days
	if limit > 0 && len(days) > limit {
		days = days[len(days)-limit:]
	}
	return EnrichedSeries{
		Summary: SummarizeSeries(s),
		Days:    days,
	}
}

// ActivityOutput bundles one activity's computed metrics with its optional
// time-in-zones breakdown.
type ActivityOutput struct {
	Metrics ActivityStressMetrics `json:"metrics"`
	Zones   *ZoneDistribution     `json:"zones,omitempty"`
}

// ClassifiedPower names the zone owning one power value.
type ClassifiedPower struct {
	Input    string  `json:"input"`
	Fraction float64 `json:"fraction"`
	Watts    float64 `json:"watts"`
	Zone     Zone    `json:"zone"`
}

// ZonesOutput is the zone table for one model resolved against a concrete
// FTP, plus the classification result when a target power was given.
type ZonesOutput struct {
	Model      string           `json:"model"`
	FTP        float64          `json:"ftp"`
	Ranges     []ZoneWattRange  `json:"ranges"`
	Classified *ClassifiedPower `json:"classified,omitempty"`
}

// SeriesBuildOutput carries a built series along with the roll-up counters
// the command layers report.
type SeriesBuildOutput struct {
	Series        TrainingLoadSeries
	ActivityCount int
	TotalTSS      float64
}
