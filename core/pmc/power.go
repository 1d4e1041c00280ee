// Package pmc implements the training stress and performance management
// computations: normalized power, intensity factor, TSS, power zone
// classification and the ATL/CTL/TSB load recurrence. Every function is a
// pure transform over caller-owned values; the package touches no clock,
// storage or global state, so callers may run independent computations
// concurrently without coordination.
package pmc

import (
	"errors"
	"math"

	"github.com/peakform/peakform/schema"
)

// NPWindowSize is the number of samples in the normalized power rolling
// window: 30 seconds at one sample per second.
const NPWindowSize = 30

// avgPowerTSSAdjustment discounts TSS computed from average power, which
// overstates stress relative to normalized power.
const avgPowerTSSAdjustment = 0.85

// NormalizedPower computes the fourth-power weighted average of a power
// stream: a 30-sample rolling average slides one sample at a time, each
// window average is raised to the fourth power, the results are averaged
// and the fourth root is taken. Streams shorter than the window return an
// InsufficientDataError so higher layers can decide on a fallback instead
// of silently averaging a short window.
func NormalizedPower(samples []schema.PowerSample) (float64, error) {
	if len(samples) < NPWindowSize {
		return 0, &InsufficientDataError{Need: NPWindowSize, Got: len(samples)}
	}

	// Rolling sum so each window costs O(1) instead of O(window).
	var windowSum float64
	for _, s := range samples[:NPWindowSize] {
		windowSum += s.Watts
	}

	var fourthPowerSum float64
	windows := len(samples) - NPWindowSize + 1
	for i := range windows {
		if i > 0 {
			windowSum += samples[i+NPWindowSize-1].Watts - samples[i-1].Watts
		}
		avg := windowSum / NPWindowSize
		fourthPowerSum += avg * avg * avg * avg
	}

	return math.Sqrt(math.Sqrt(fourthPowerSum / float64(windows))), nil
}

// IntensityFactor returns power relative to threshold: power / ftp.
func IntensityFactor(power, ftp float64) (float64, error) {
	if ftp <= 0 {
		return 0, &InvalidArgumentError{Field: "ftp", Reason: "must be positive"}
	}
	if power < 0 {
		return 0, &InvalidArgumentError{Field: "power", Reason: "must not be negative"}
	}
	return power / ftp, nil
}

// TrainingStressScore computes TSS from a representative power value.
// One hour at FTP scores exactly 100. When usingAvgFallback is true the
// score is discounted because average power is a weaker proxy for stress
// than normalized power.
func TrainingStressScore(power, ftp, durationSeconds float64, usingAvgFallback bool) (float64, error) {
	intensity, err := IntensityFactor(power, ftp)
	if err != nil {
		return 0, err
	}
	if durationSeconds < 0 {
		return 0, &InvalidArgumentError{Field: "durationSeconds", Reason: "must not be negative"}
	}

	adjustment := 1.0
	if usingAvgFallback {
		adjustment = avgPowerTSSAdjustment
	}
	return math.Round(intensity * intensity * (durationSeconds / 3600) * 100 * adjustment), nil
}

// Kilojoules returns the mechanical work for an effort at a given average
// power: watts times seconds, scaled to kilojoules.
func Kilojoules(avgPower, durationSeconds float64) float64 {
	return avgPower * durationSeconds / 1000
}

// MetricsFromSamples derives the full stress metric set from a raw power
// stream. Samples are assumed to be regularly spaced at one per second,
// so the stream length is the effort duration. Streams shorter than the
// NP window fall back to average power and flag the result.
func MetricsFromSamples(samples []schema.PowerSample, ftp float64) (schema.ActivityStressMetrics, error) {
	if ftp <= 0 {
		return schema.ActivityStressMetrics{}, &InvalidArgumentError{Field: "ftp", Reason: "must be positive"}
	}
	if len(samples) == 0 {
		return schema.ActivityStressMetrics{}, &InvalidArgumentError{Field: "samples", Reason: "must not be empty"}
	}

	var sum float64
	for _, s := range samples {
		sum += s.Watts
	}
	avgPower := sum / float64(len(samples))
	durationSeconds := float64(len(samples))

	np, err := NormalizedPower(samples)
	usedFallback := false
	if err != nil {
		var short *InsufficientDataError
		if !errors.As(err, &short) {
			return schema.ActivityStressMetrics{}, err
		}
		np = avgPower
		usedFallback = true
	}

	intensity, err := IntensityFactor(np, ftp)
	if err != nil {
		return schema.ActivityStressMetrics{}, err
	}
	tss, err := TrainingStressScore(np, ftp, durationSeconds, usedFallback)
	if err != nil {
		return schema.ActivityStressMetrics{}, err
	}

	return schema.ActivityStressMetrics{
		AvgPower:             avgPower,
		NormalizedPower:      np,
		IntensityFactor:      intensity,
		TSS:                  tss,
		Kilojoules:           Kilojoules(avgPower, durationSeconds),
		DurationSeconds:      durationSeconds,
		SampleCount:          len(samples),
		UsedAvgPowerFallback: usedFallback,
	}, nil
}

// MetricsFromSegments approximates the stress metric set when only
// segment targets, not raw samples, are available: each segment's power
// fraction is raised to the fourth power, weighted by duration, averaged
// and rooted to estimate NP. Used for planned workouts rather than
// completed ones; no fallback discount applies because the estimate is a
// real normalized power.
func MetricsFromSegments(segments []schema.WorkoutSegment, ftp float64) (schema.ActivityStressMetrics, error) {
	if ftp <= 0 {
		return schema.ActivityStressMetrics{}, &InvalidArgumentError{Field: "ftp", Reason: "must be positive"}
	}
	if len(segments) == 0 {
		return schema.ActivityStressMetrics{}, &InvalidArgumentError{Field: "segments", Reason: "must not be empty"}
	}

	var totalSeconds, weightedFourth, weightedFraction float64
	for _, seg := range segments {
		if seg.DurationSeconds <= 0 {
			return schema.ActivityStressMetrics{}, &InvalidArgumentError{Field: "segments", Reason: "segment duration must be positive"}
		}
		if seg.PowerFraction < 0 {
			return schema.ActivityStressMetrics{}, &InvalidArgumentError{Field: "segments", Reason: "segment power must not be negative"}
		}
		frac := seg.PowerFraction
		totalSeconds += seg.DurationSeconds
		weightedFourth += frac * frac * frac * frac * seg.DurationSeconds
		weightedFraction += frac * seg.DurationSeconds
	}

	npFraction := math.Sqrt(math.Sqrt(weightedFourth / totalSeconds))
	np := npFraction * ftp
	avgPower := (weightedFraction / totalSeconds) * ftp

	tss, err := TrainingStressScore(np, ftp, totalSeconds, false)
	if err != nil {
		return schema.ActivityStressMetrics{}, err
	}

	return schema.ActivityStressMetrics{
		AvgPower:        avgPower,
		NormalizedPower: np,
		IntensityFactor: npFraction,
		TSS:             tss,
		Kilojoules:      Kilojoules(avgPower, totalSeconds),
		DurationSeconds: totalSeconds,
	}, nil
}
