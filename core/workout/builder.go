package workout

import (
	"fmt"
	"math"

	"github.com/peakform/peakform/core/pmc"
)

// Builder defaults: ten-minute bookends, half-FTP recovery spins,
// moderate endurance pace.
const (
	defaultWarmupSeconds   = 600
	defaultCooldownSeconds = 600
	defaultRecoveryPower   = 0.5
	defaultRemainderPower  = 0.65
	defaultEndurancePower  = 0.65

	defaultAuthor = "PeakForm"

	// referenceFTP anchors the watt fields during finalization. The TSS
	// of fractional segments does not depend on it.
	referenceFTP = 250
)

func ptr[T any](v T) *T {
	return &v
}

// NewIntervalWorkout assembles the classic N-by-M structure: a ramp
// warmup, steady work efforts with recovery spins between them (none
// after the last), and a ramp cooldown. Zero rest power or bookend
// durations fall back to the defaults.
func NewIntervalWorkout(reps, workSeconds int, workPower float64, restSeconds int, restPower float64, warmupSeconds, cooldownSeconds int) (Workout, error) {
	if reps <= 0 {
		return Workout{}, fmt.Errorf("interval workout needs at least one repetition, got %d", reps)
	}
	if workSeconds <= 0 {
		return Workout{}, fmt.Errorf("work duration must be positive, got %ds", workSeconds)
	}
	if workPower <= 0 {
		return Workout{}, fmt.Errorf("work power must be positive, got %.2f", workPower)
	}
	if restSeconds <= 0 && reps > 1 {
		return Workout{}, fmt.Errorf("rest duration must be positive, got %ds", restSeconds)
	}
	if restPower <= 0 {
		restPower = defaultRecoveryPower
	}
	if warmupSeconds <= 0 {
		warmupSeconds = defaultWarmupSeconds
	}
	if cooldownSeconds <= 0 {
		cooldownSeconds = defaultCooldownSeconds
	}

	segments := make([]Segment, 0, 2*reps+1)
	segments = append(segments, Segment{
		DurationSeconds: warmupSeconds,
		PowerStart:      0.5,
		PowerEnd:        ptr(0.75),
		Type:            SegmentWarmup,
		Name:            "Warmup",
	})
	for i := range reps {
		segments = append(segments, Segment{
			DurationSeconds: workSeconds,
			PowerStart:      workPower,
			Type:            SegmentSteadyState,
			Name:            fmt.Sprintf("Interval %d", i+1),
		})
		if i < reps-1 {
			segments = append(segments, Segment{
				DurationSeconds: restSeconds,
				PowerStart:      restPower,
				Type:            SegmentSteadyState,
				Name:            fmt.Sprintf("Recovery %d", i+1),
			})
		}
	}
	segments = append(segments, Segment{
		DurationSeconds: cooldownSeconds,
		PowerStart:      0.6,
		PowerEnd:        ptr(0.4),
		Type:            SegmentCooldown,
		Name:            "Cooldown",
	})

	pct := int(math.Round(workPower * 100))
	return finalize(Workout{
		Name:        fmt.Sprintf("%dx%s @ %d%%", reps, formatShortDuration(workSeconds), pct),
		Description: fmt.Sprintf("%d intervals of %s at %d%% FTP", reps, formatShortDuration(workSeconds), pct),
		Type:        TypeIntervals,
		Segments:    segments,
	})
}

// NewComplexIntervalWorkout repeats a multi-segment pattern with
// half-FTP recovery spins between repetitions, optionally followed by a
// block of steady remainder training.
func NewComplexIntervalWorkout(pattern []Segment, reps, recoverySeconds, remainderSeconds int, remainderPower float64) (Workout, error) {
	if reps <= 0 {
		return Workout{}, fmt.Errorf("complex interval workout needs at least one repetition, got %d", reps)
	}
	if len(pattern) == 0 {
		return Workout{}, fmt.Errorf("complex interval needs at least one segment")
	}

	segments := expandComplex(ComplexInterval{
		Repetitions:             reps,
		Segments:                pattern,
		RecoveryDurationSeconds: recoverySeconds,
		RecoveryPower:           defaultRecoveryPower,
	})
	if remainderSeconds > 0 {
		if remainderPower <= 0 {
			remainderPower = defaultRemainderPower
		}
		segments = append(segments, Segment{
			DurationSeconds: remainderSeconds,
			PowerStart:      remainderPower,
			Type:            SegmentSteadyState,
			Name:            "Remainder Training",
		})
	}

	patternSeconds := 0
	for _, seg := range pattern {
		patternSeconds += seg.DurationSeconds
	}
	return finalize(Workout{
		Name:        fmt.Sprintf("%d x %d' Complex Intervals", reps, patternSeconds/60),
		Description: fmt.Sprintf("%d repetitions of a %d-segment interval", reps, len(pattern)),
		Type:        TypeMixed,
		Segments:    segments,
	})
}

// NewEnduranceWorkout builds a steady ride: ramp up to the target pace,
// hold it, ramp down. Zero power falls back to the default endurance
// pace. The total must leave room for the ten-minute bookends.
func NewEnduranceWorkout(totalSeconds int, power float64) (Workout, error) {
	if power <= 0 {
		power = defaultEndurancePower
	}
	bookends := defaultWarmupSeconds + defaultCooldownSeconds
	if totalSeconds <= bookends {
		return Workout{}, fmt.Errorf("endurance workout must be longer than %d minutes, got %ds", bookends/60, totalSeconds)
	}

	return finalize(Workout{
		Name:        "Endurance Workout",
		Description: fmt.Sprintf("steady ride at %d%% FTP", int(math.Round(power*100))),
		Type:        TypeEndurance,
		Segments: []Segment{
			{
				DurationSeconds: defaultWarmupSeconds,
				PowerStart:      0.5,
				PowerEnd:        ptr(power),
				Type:            SegmentWarmup,
				Name:            "Warmup",
			},
			{
				DurationSeconds: totalSeconds - bookends,
				PowerStart:      power,
				Type:            SegmentSteadyState,
				Name:            "Endurance",
			},
			{
				DurationSeconds: defaultCooldownSeconds,
				PowerStart:      power,
				PowerEnd:        ptr(0.4),
				Type:            SegmentCooldown,
				Name:            "Cooldown",
			},
		},
	})
}

// expandComplex unrolls the repetitions into a flat segment list with a
// recovery spin between consecutive repetitions.
func expandComplex(ci ComplexInterval) []Segment {
	segments := make([]Segment, 0, ci.Repetitions*(len(ci.Segments)+1))
	for rep := range ci.Repetitions {
		segments = append(segments, ci.Segments...)
		if rep < ci.Repetitions-1 && ci.RecoveryDurationSeconds > 0 {
			power := ci.RecoveryPower
			if power <= 0 {
				power = defaultRecoveryPower
			}
			segments = append(segments, Segment{
				DurationSeconds: ci.RecoveryDurationSeconds,
				PowerStart:      power,
				Type:            SegmentSteadyState,
				Name:            fmt.Sprintf("Recovery %d", rep+1),
			})
		}
	}
	return segments
}

// finalize brackets the workout with standard ramps when missing, totals
// the duration and computes the planned stress score.
func finalize(w Workout) (Workout, error) {
	if w.Author == "" {
		w.Author = defaultAuthor
	}
	if w.SportType == "" {
		w.SportType = "bike"
	}
	if w.Type == "" {
		w.Type = TypeCustom
	}

	segments := w.Segments
	if len(segments) == 0 || segments[0].Type != SegmentWarmup {
		segments = append([]Segment{{
			DurationSeconds: defaultWarmupSeconds,
			PowerStart:      0.5,
			PowerEnd:        ptr(0.6),
			Type:            SegmentWarmup,
			Name:            "Warmup",
		}}, segments...)
	}
	if segments[len(segments)-1].Type != SegmentCooldown {
		segments = append(segments, Segment{
			DurationSeconds: defaultCooldownSeconds,
			PowerStart:      0.6,
			PowerEnd:        ptr(0.4),
			Type:            SegmentCooldown,
			Name:            "Cooldown",
		})
	}
	w.Segments = segments

	w.TotalDurationSeconds = 0
	for _, seg := range segments {
		w.TotalDurationSeconds += seg.DurationSeconds
	}

	metrics, err := pmc.MetricsFromSegments(w.Efforts(), referenceFTP)
	if err != nil {
		return Workout{}, fmt.Errorf("computing planned stress: %w", err)
	}
	w.TSS = metrics.TSS
	return w, nil
}

// formatShortDuration renders a duration for workout names: whole
// minutes when even, raw seconds otherwise.
func formatShortDuration(seconds int) string {
	if seconds%60 == 0 {
		return fmt.Sprintf("%dmin", seconds/60)
	}
	return fmt.Sprintf("%ds", seconds)
}
