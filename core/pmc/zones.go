package pmc

import (
	"fmt"
	"math"
	"slices"

	"github.com/peakform/peakform/schema"
)

// NewZoneModel assembles and validates a zone model. Zones are sorted by
// lower bound and renumbered sequentially, then checked for contiguity:
// the first zone must start at zero, each upper bound must meet the next
// lower bound exactly, and only the final zone may be unbounded. A model
// this constructor accepts can never fail classification.
func NewZoneModel(name schema.ZoneModelName, description string, zones []schema.Zone) (schema.ZoneModel, error) {
	if len(zones) == 0 {
		return schema.ZoneModel{}, &InvalidZoneModelError{Model: string(name), Reason: "must have at least one zone"}
	}

	sorted := make([]schema.Zone, len(zones))
	copy(sorted, zones)
	slices.SortStableFunc(sorted, func(a, b schema.Zone) int {
		switch {
		case a.MinFraction < b.MinFraction:
			return -1
		case a.MinFraction > b.MinFraction:
			return 1
		default:
			return 0
		}
	})
	for i := range sorted {
		sorted[i].ID = i + 1
	}

	model := schema.ZoneModel{Name: name, Description: description, Zones: sorted}
	if err := ValidateZoneModel(model); err != nil {
		return schema.ZoneModel{}, err
	}
	return model, nil
}

// ValidateZoneModel checks that a model's zones are ordered, contiguous
// and cover [0, +inf).
func ValidateZoneModel(model schema.ZoneModel) error {
	name := string(model.Name)
	if len(model.Zones) == 0 {
		return &InvalidZoneModelError{Model: name, Reason: "must have at least one zone"}
	}
	if model.Zones[0].MinFraction != 0 {
		return &InvalidZoneModelError{Model: name, Reason: "first zone must start at 0"}
	}

	for i, z := range model.Zones {
		if z.MinFraction < 0 {
			return &InvalidZoneModelError{Model: name, Reason: fmt.Sprintf("zone %d has a negative lower bound", i+1)}
		}

		last := i == len(model.Zones)-1
		if last {
			if !z.Unbounded() {
				return &InvalidZoneModelError{Model: name, Reason: "final zone must be unbounded"}
			}
			continue
		}
		if z.Unbounded() {
			return &InvalidZoneModelError{Model: name, Reason: fmt.Sprintf("zone %d must have an upper bound", i+1)}
		}
		if z.MaxFraction <= z.MinFraction {
			return &InvalidZoneModelError{Model: name, Reason: fmt.Sprintf("zone %d upper bound must exceed its lower bound", i+1)}
		}
		if next := model.Zones[i+1]; next.MinFraction != z.MaxFraction {
			return &InvalidZoneModelError{Model: name, Reason: fmt.Sprintf("gap or overlap between zone %d and zone %d", i+1, i+2)}
		}
	}
	return nil
}

// Classify returns the zone owning a power fraction: a linear scan over
// the few zones of the model, matching [min, max) with the final zone
// open-ended. NoMatchingZoneError can only surface for a model that
// skipped construction validation.
func Classify(model schema.ZoneModel, powerFraction float64) (schema.Zone, error) {
	idx, err := classifyIndex(model, powerFraction)
	if err != nil {
		return schema.Zone{}, err
	}
	return model.Zones[idx], nil
}

// classifyIndex returns the position of the owning zone within the model.
func classifyIndex(model schema.ZoneModel, powerFraction float64) (int, error) {
	if powerFraction < 0 {
		return 0, &InvalidArgumentError{Field: "powerFraction", Reason: "must not be negative"}
	}

	for i, z := range model.Zones {
		if powerFraction < z.MinFraction {
			continue
		}
		if z.Unbounded() || powerFraction < z.MaxFraction {
			return i, nil
		}
	}
	return 0, &NoMatchingZoneError{Fraction: powerFraction}
}

// TimeInZones accumulates time per zone across segment efforts and
// derives each zone's share of the total. Every model zone appears in the
// result, zero rows included; zero total duration yields all-zero
// percentages rather than a division by zero.
func TimeInZones(model schema.ZoneModel, segments []schema.WorkoutSegment) (schema.ZoneDistribution, error) {
	seconds := make([]float64, len(model.Zones))
	var total float64

	for _, seg := range segments {
		if seg.DurationSeconds < 0 {
			return schema.ZoneDistribution{}, &InvalidArgumentError{Field: "segments", Reason: "segment duration must not be negative"}
		}
		if seg.DurationSeconds == 0 {
			continue
		}
		idx, err := classifyIndex(model, seg.PowerFraction)
		if err != nil {
			return schema.ZoneDistribution{}, err
		}
		seconds[idx] += seg.DurationSeconds
		total += seg.DurationSeconds
	}

	dist := schema.ZoneDistribution{
		Model:        model.Name,
		TotalSeconds: total,
		Zones:        make([]schema.ZoneDuration, len(model.Zones)),
	}
	for i, z := range model.Zones {
		duration := schema.ZoneDuration{Zone: z, Seconds: seconds[i]}
		if total > 0 {
			duration.Percentage = seconds[i] / total * 100
		}
		dist.Zones[i] = duration
	}
	return dist, nil
}

// ZoneRangesWatts resolves a model's fractional bounds to watts for a
// given FTP, for display layers that show concrete targets.
func ZoneRangesWatts(model schema.ZoneModel, ftp float64) ([]schema.ZoneWattRange, error) {
	if ftp <= 0 {
		return nil, &InvalidArgumentError{Field: "ftp", Reason: "must be positive"}
	}

	ranges := make([]schema.ZoneWattRange, len(model.Zones))
	for i, z := range model.Zones {
		r := schema.ZoneWattRange{Zone: z, MinWatts: int(math.Round(z.MinFraction * ftp))}
		if !z.Unbounded() {
			r.MaxWatts = int(math.Round(z.MaxFraction * ftp))
		}
		ranges[i] = r
	}
	return ranges, nil
}
