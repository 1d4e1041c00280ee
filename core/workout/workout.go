// Package workout builds, parses and validates planned cycling workouts.
// Segment power targets are fractions of FTP throughout, so a workout is
// portable across athletes; watts only appear when a display layer
// resolves fractions against a concrete FTP.
package workout

import (
	"github.com/peakform/peakform/schema"
)

type (
	// SegmentType marks a segment's role within the workout.
	SegmentType string

	// Type is the broad training intent of a workout.
	Type string
)

// Segment types.
const (
	SegmentWarmup      SegmentType = "Warmup"
	SegmentSteadyState SegmentType = "SteadyState" // default
	SegmentCooldown    SegmentType = "Cooldown"
)

// Workout types.
const (
	TypeEndurance   Type = "endurance"
	TypeThreshold   Type = "threshold"
	TypeVO2Max      Type = "vo2max"
	TypeAnaerobic   Type = "anaerobic"
	TypeRecovery    Type = "recovery"
	TypeMixed       Type = "mixed"
	TypeIntervals   Type = "intervals"
	TypeProgressive Type = "progressive"
	TypeCustom      Type = "custom" // default
)

// Segment is one block of a workout. A set PowerEnd makes the segment a
// ramp from PowerStart to PowerEnd; otherwise power holds steady.
type Segment struct {
	DurationSeconds int         `json:"duration_seconds"` // Length of the block
	PowerStart      float64     `json:"power_start"`      // Fraction of FTP
	PowerEnd        *float64    `json:"power_end,omitempty"`
	Cadence         *int        `json:"cadence,omitempty"` // Target rpm, when prescribed
	Type            SegmentType `json:"type"`
	Name            string      `json:"name,omitempty"`
}

// AvgFraction returns the segment's mean power fraction, the midpoint
// for a ramp.
func (s Segment) AvgFraction() float64 {
	if s.PowerEnd != nil {
		return (s.PowerStart + *s.PowerEnd) / 2
	}
	return s.PowerStart
}

// Ramp reports whether the segment sweeps between two power targets.
func (s Segment) Ramp() bool {
	return s.PowerEnd != nil
}

// ComplexInterval is a repeated multi-segment block with recovery spins
// between repetitions. It is builder input; finalized workouts carry the
// expanded flat segment list.
type ComplexInterval struct {
	Repetitions             int       `json:"repetitions"`
	Segments                []Segment `json:"segments"`
	RecoveryDurationSeconds int       `json:"recovery_duration_seconds"`
	RecoveryPower           float64   `json:"recovery_power"` // fraction of FTP, 0.5 when unset
}

// Workout is a complete finalized workout: flat segments bracketed by a
// warmup and a cooldown, with the planned stress score precomputed.
type Workout struct {
	Name                 string    `json:"name"`
	Description          string    `json:"description,omitempty"`
	Author               string    `json:"author,omitempty"`
	SportType            string    `json:"sport_type"`
	Type                 Type      `json:"workout_type"`
	Segments             []Segment `json:"segments"`
	TotalDurationSeconds int       `json:"total_duration_seconds"`
	TSS                  float64   `json:"tss"`
}

// Efforts flattens the workout into duration/fraction pairs for the
// power and zone math, ramps collapsed to their midpoint.
func (w Workout) Efforts() []schema.WorkoutSegment {
	efforts := make([]schema.WorkoutSegment, 0, len(w.Segments))
	for _, seg := range w.Segments {
		efforts = append(efforts, schema.WorkoutSegment{
			DurationSeconds: float64(seg.DurationSeconds),
			PowerFraction:   seg.AvgFraction(),
		})
	}
	return efforts
}
