package schema

// Zone is one named band of power, with bounds expressed as fractions of
// FTP. A MaxFraction of zero marks the open upper bound of a model's final
// zone; every other zone must have MaxFraction > MinFraction.
type Zone struct {
	ID          int     `json:"id"`                     // 1-based position within the model
	Name        string  `json:"name"`                   // Display name, e.g. "Tempo"
	MinFraction float64 `json:"min_fraction"`           // Inclusive lower bound
	MaxFraction float64 `json:"max_fraction,omitempty"` // Exclusive upper bound, 0 = unbounded
	Color       string  `json:"color"`                  // Hex color for display layers
	Description string  `json:"description,omitempty"`  // Short training guidance
}

// Unbounded reports whether the zone has no upper bound.
func (z Zone) Unbounded() bool {
	return z.MaxFraction == 0
}

// ZoneModel is an ordered partition of the power range into zones. A valid
// model is contiguous, starts at zero and covers [0, +inf); construction
// validation lives in core/pmc.
type ZoneModel struct {
	Name        ZoneModelName `json:"name"`
	Description string        `json:"description"`
	Zones       []Zone        `json:"zones"`
}

// ZoneDuration is the accumulated time spent in one zone.
type ZoneDuration struct {
	Zone       Zone    `json:"zone"`
	Seconds    float64 `json:"seconds"`
	Percentage float64 `json:"percentage"`
}

// ZoneDistribution is the per-zone time split for an effort. Zones appear
// in model order so tabular output is deterministic.
type ZoneDistribution struct {
	Model        ZoneModelName  `json:"model"`
	TotalSeconds float64        `json:"total_seconds"`
	Zones        []ZoneDuration `json:"zones"`
}

// ZoneWattRange is a zone's bounds resolved to watts for a given FTP.
type ZoneWattRange struct {
	Zone     Zone `json:"zone"`
	MinWatts int  `json:"min_watts"`
	MaxWatts int  `json:"max_watts,omitempty"` // 0 = unbounded
}

// Builtin zone model names.
const (
	CogganModel    ZoneModelName = "coggan" // default
	PolarizedModel ZoneModelName = "polarized"
	CustomModel    ZoneModelName = "custom" // zones supplied via config
)

// ValidZoneModelNames lists all selectable zone model names.
var ValidZoneModelNames = map[ZoneModelName]struct{}{
	CogganModel:    {},
	PolarizedModel: {},
	CustomModel:    {},
}

var cogganModel = ZoneModel{
	Name:        CogganModel,
	Description: "Classic seven-zone threshold model",
	Zones: []Zone{
		{ID: 1, Name: "Active Recovery", MinFraction: 0, MaxFraction: 0.55, Color: "#9ca3af", Description: "Easy spinning with minimal strain"},
		{ID: 2, Name: "Endurance", MinFraction: 0.55, MaxFraction: 0.75, Color: "#3b82f6", Description: "All-day aerobic pace"},
		{ID: 3, Name: "Tempo", MinFraction: 0.75, MaxFraction: 0.90, Color: "#22c55e", Description: "Brisk group-ride effort"},
		{ID: 4, Name: "Lactate Threshold", MinFraction: 0.90, MaxFraction: 1.05, Color: "#eab308", Description: "Sustained time-trial effort"},
		{ID: 5, Name: "VO2 Max", MinFraction: 1.05, MaxFraction: 1.20, Color: "#f97316", Description: "Hard 3-8 minute intervals"},
		{ID: 6, Name: "Anaerobic Capacity", MinFraction: 1.20, MaxFraction: 1.50, Color: "#ef4444", Description: "Short severe efforts"},
		{ID: 7, Name: "Neuromuscular Power", MinFraction: 1.50, Color: "#a855f7", Description: "Maximal sprints"},
	},
}

var polarizedModel = ZoneModel{
	Name:        PolarizedModel,
	Description: "Three-zone polarized model",
	Zones: []Zone{
		{ID: 1, Name: "Low Intensity", MinFraction: 0, MaxFraction: 0.75, Color: "#3b82f6", Description: "Below the first ventilatory threshold"},
		{ID: 2, Name: "Threshold", MinFraction: 0.75, MaxFraction: 1.05, Color: "#eab308", Description: "Between thresholds"},
		{ID: 3, Name: "High Intensity", MinFraction: 1.05, Color: "#ef4444", Description: "Above the second ventilatory threshold"},
	},
}

// GetBuiltinZoneModel returns the builtin model for a name. The second
// return is false for unknown names and for CustomModel, whose zones come
// from configuration rather than this table.
func GetBuiltinZoneModel(name ZoneModelName) (ZoneModel, bool) {
	switch name {
	case CogganModel:
		return cogganModel, true
	case PolarizedModel:
		return polarizedModel, true
	default:
		return ZoneModel{}, false
	}
}
