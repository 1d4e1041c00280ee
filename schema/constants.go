package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// FormState represents an athlete's readiness classification.
	FormState string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string

	// ZoneModelName identifies a power zone model.
	ZoneModelName string

	// TrendMetric selects the series column a trend is computed over.
	TrendMetric string

	// TrendFlagName identifies an advisory pattern flag.
	TrendFlagName string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All form states supported, ordered from freshest to most fatigued.
const (
	FormRested    FormState = "rested"
	FormFresh     FormState = "fresh"
	FormNeutral   FormState = "neutral"
	FormTired     FormState = "tired"
	FormVeryTired FormState = "very_tired"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All trend metrics supported.
const (
	MetricDailyTSS  TrendMetric = "tss" // default
	MetricATL       TrendMetric = "atl"
	MetricCTL       TrendMetric = "ctl"
	MetricTSB       TrendMetric = "tsb"
	MetricWeeklyTSS TrendMetric = "weekly"
)

// All trend flags supported.
const (
	FlagRampRateTooSteep      TrendFlagName = "ramp_rate_too_steep"
	FlagNegativeBalanceStreak TrendFlagName = "negative_balance_streak"
	FlagDetraining            TrendFlagName = "detraining"
)

// AllFormStates lists all form states, freshest first.
var AllFormStates = []FormState{FormRested, FormFresh, FormNeutral, FormTired, FormVeryTired}

// AllTrendMetrics lists all trend metrics.
var AllTrendMetrics = []TrendMetric{MetricDailyTSS, MetricATL, MetricCTL, MetricTSB, MetricWeeklyTSS}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidFormStates lists all valid form states.
var ValidFormStates = map[FormState]struct{}{
	FormRested:    {},
	FormFresh:     {},
	FormNeutral:   {},
	FormTired:     {},
	FormVeryTired: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidTrendMetrics lists all valid trend metrics.
var ValidTrendMetrics = map[TrendMetric]struct{}{
	MetricDailyTSS:  {},
	MetricATL:       {},
	MetricCTL:       {},
	MetricTSB:       {},
	MetricWeeklyTSS: {},
}

// GetEffortLabel returns a plain text label indicating how demanding a
// single activity was, based on its Training Stress Score.
func GetEffortLabel(tss float64) string {
	switch {
	case tss >= 450:
		return "Epic"
	case tss >= 300:
		return "High"
	case tss >= 150:
		return "Moderate"
	default:
		return "Low"
	}
}
