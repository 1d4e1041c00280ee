package contract

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/peakform/peakform/core/workout"
	"github.com/peakform/peakform/schema"
)

// LoadActivities reads and validates an activities file. The file holds a
// JSON array of activity records. Every record is validated once here so
// the engine can trust its inputs.
func LoadActivities(path string) ([]schema.ActivityRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading activities file: %w", err)
	}

	var records []schema.ActivityRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing activities file %q: %w", path, err)
	}

	for i, r := range records {
		if err := ValidateActivityRecord(r); err != nil {
			return nil, fmt.Errorf("activity %d: %w", i, err)
		}
	}

	return records, nil
}

// ValidateActivityRecord checks one boundary record. Optional pointer
// fields are only validated when present.
func ValidateActivityRecord(r schema.ActivityRecord) error {
	if r.Date.IsZero() {
		return fmt.Errorf("activity date is required")
	}
	if r.DurationSeconds <= 0 {
		return fmt.Errorf("duration must be positive (received %.1f)", r.DurationSeconds)
	}
	if r.FTPAtTime != 0 && (r.FTPAtTime < MinFTP || r.FTPAtTime > MaxFTP) {
		return fmt.Errorf("ftp_at_time must be between %.0f and %.0f watts (received %.1f)", MinFTP, MaxFTP, r.FTPAtTime)
	}
	if r.TSS != nil && *r.TSS < 0 {
		return fmt.Errorf("tss cannot be negative (received %.1f)", *r.TSS)
	}
	if r.AvgPower != nil && *r.AvgPower < 0 {
		return fmt.Errorf("avg_power cannot be negative (received %.1f)", *r.AvgPower)
	}
	if r.NormalizedPower != nil && *r.NormalizedPower < 0 {
		return fmt.Errorf("normalized_power cannot be negative (received %.1f)", *r.NormalizedPower)
	}
	if len(r.Samples) > 0 {
		if err := validateSamples(r.Samples); err != nil {
			return err
		}
	}
	return nil
}

// LoadPowerSamples reads a raw power stream. Three file shapes are
// accepted: a bare JSON array of watts (offsets assigned by position), an
// array of power sample objects, or a full activity record carrying a
// samples list.
func LoadPowerSamples(path string) ([]schema.PowerSample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading samples file: %w", err)
	}

	var watts []float64
	if err := json.Unmarshal(data, &watts); err == nil {
		samples := make([]schema.PowerSample, len(watts))
		for i, w := range watts {
			samples[i] = schema.PowerSample{OffsetSeconds: i, Watts: w}
		}
		if err := validateSamples(samples); err != nil {
			return nil, err
		}
		return samples, nil
	}

	var samples []schema.PowerSample
	if err := json.Unmarshal(data, &samples); err == nil {
		if err := validateSamples(samples); err != nil {
			return nil, err
		}
		return samples, nil
	}

	var record schema.ActivityRecord
	if err := json.Unmarshal(data, &record); err == nil && len(record.Samples) > 0 {
		if err := validateSamples(record.Samples); err != nil {
			return nil, err
		}
		return record.Samples, nil
	}

	return nil, fmt.Errorf("samples file %q must contain a JSON array of watts, an array of power samples, or an activity with samples", path)
}

// validateSamples rejects empty streams and negative power readings.
func validateSamples(samples []schema.PowerSample) error {
	if len(samples) == 0 {
		return fmt.Errorf("no power samples found")
	}
	for i, s := range samples {
		if s.Watts < 0 {
			return fmt.Errorf("sample %d has negative power (%.1f watts)", i, s.Watts)
		}
	}
	return nil
}

// LoadWorkout reads a planned workout from a JSON file.
func LoadWorkout(path string) (workout.Workout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return workout.Workout{}, fmt.Errorf("reading workout file: %w", err)
	}

	var w workout.Workout
	if err := json.Unmarshal(data, &w); err != nil {
		return workout.Workout{}, fmt.Errorf("parsing workout file %q: %w", path, err)
	}
	if len(w.Segments) == 0 {
		return workout.Workout{}, fmt.Errorf("workout file %q has no segments", path)
	}

	return w, nil
}
