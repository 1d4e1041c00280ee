package core

import (
	"context"
	"errors"
	"time"

	"github.com/peakform/peakform/core/pmc"
	"github.com/peakform/peakform/core/workout"
	"github.com/peakform/peakform/internal/contract"
	"github.com/peakform/peakform/internal/outwriter"
)

// GetWorkoutCreateResults builds a planned workout from its description
// and prices it against the configured FTP.
func GetWorkoutCreateResults(ctx context.Context, cfg *contract.Config) (workout.Report, time.Duration, error) {
	start := time.Now()

	if cfg.WorkoutDescription == "" {
		return workout.Report{}, 0, errors.New("a workout description is required. try --description \"4x5min @ 105%\"")
	}
	w, err := workout.ParseDescription(cfg.WorkoutDescription)
	if err != nil {
		return workout.Report{}, 0, err
	}

	report, err := WorkoutMetricsReport(w, cfg)
	if err != nil {
		return workout.Report{}, 0, err
	}
	return report, time.Since(start), nil
}

// GetWorkoutTSSResults loads or parses a workout and computes its planned
// stress metrics. A description wins over a file when both are given.
func GetWorkoutTSSResults(ctx context.Context, cfg *contract.Config) (workout.Report, time.Duration, error) {
	start := time.Now()

	w, err := resolveWorkout(cfg)
	if err != nil {
		return workout.Report{}, 0, err
	}

	report, err := WorkoutMetricsReport(w, cfg)
	if err != nil {
		return workout.Report{}, 0, err
	}
	return report, time.Since(start), nil
}

// GetWorkoutValidateResults loads a workout and reports its structural
// problems.
func GetWorkoutValidateResults(ctx context.Context, cfg *contract.Config) (workout.Report, time.Duration, error) {
	start := time.Now()

	w, err := resolveWorkout(cfg)
	if err != nil {
		return workout.Report{}, 0, err
	}

	return WorkoutValidationReport(w), time.Since(start), nil
}

// ExecuteWorkoutCreate builds a workout from a description and prints it.
func ExecuteWorkoutCreate(ctx context.Context, cfg *contract.Config) error {
	report, duration, err := GetWorkoutCreateResults(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.PrintWorkoutResults(report, cfg, duration)
}

// ExecuteWorkoutTSS prints the planned stress metrics for a workout.
func ExecuteWorkoutTSS(ctx context.Context, cfg *contract.Config) error {
	report, duration, err := GetWorkoutTSSResults(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.PrintWorkoutResults(report, cfg, duration)
}

// ExecuteWorkoutValidate prints the validation verdict for a workout.
func ExecuteWorkoutValidate(ctx context.Context, cfg *contract.Config) error {
	report, duration, err := GetWorkoutValidateResults(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.PrintWorkoutResults(report, cfg, duration)
}

// WorkoutMetricsReport prices a workout against the configured FTP, with a
// time-in-zones breakdown when requested. It is shared by the command and
// MCP layers.
func WorkoutMetricsReport(w workout.Workout, cfg *contract.Config) (workout.Report, error) {
	metrics, err := pmc.MetricsFromSegments(w.Efforts(), cfg.FTP)
	if err != nil {
		return workout.Report{}, err
	}
	report := workout.Report{Workout: w, Metrics: &metrics}

	if cfg.ShowZones {
		dist, err := pmc.TimeInZones(cfg.ZoneModel, w.Efforts())
		if err != nil {
			return workout.Report{}, err
		}
		report.Zones = &dist
	}
	return report, nil
}

// WorkoutValidationReport runs structural validation over a workout. It is
// shared by the command and MCP layers.
func WorkoutValidationReport(w workout.Workout) workout.Report {
	validation := workout.Validate(w)
	return workout.Report{Workout: w, Validation: &validation}
}

// resolveWorkout picks the workout source: an inline description when
// given, the positional file otherwise.
func resolveWorkout(cfg *contract.Config) (workout.Workout, error) {
	if cfg.WorkoutDescription != "" {
		return workout.ParseDescription(cfg.WorkoutDescription)
	}
	if cfg.ActivitiesPath == "" {
		return workout.Workout{}, errors.New("a workout file or --description is required")
	}
	return contract.LoadWorkout(cfg.ActivitiesPath)
}
