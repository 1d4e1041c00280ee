package workout

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// "2 x 14' (4')" with optional "as ..." pattern tail.
	complexStructureRe = regexp.MustCompile(`(\d+)\s*x\s*(\d+)['"]\s*\((\d+)['"]\)`)
	complexAsRe        = regexp.MustCompile(`\d+\s*x\s*\d+['"]\s*\(\d+['"]\)\s*as`)
	complexFirstThenRe = regexp.MustCompile(`first\s+\d+['"]\s*@\s*\d+%.*then`)
	complexRepsThenRe  = regexp.MustCompile(`\d+\s*repetitions.*as.*@.*then`)

	simpleCountByRe  = regexp.MustCompile(`(\d+)\s*[x×]\s*(\d+)`)
	simpleTimesRe    = regexp.MustCompile(`\d+\s*times`)
	simpleIntervalRe = regexp.MustCompile(`(\d+)\s*intervals?`)
	simpleRepeatsRe  = regexp.MustCompile(`\d+\s*repeats`)

	percentRe      = regexp.MustCompile(`(\d+)%`)
	patternPieceRe = regexp.MustCompile(`(\d+)['"m]`)
	thenSplitRe    = regexp.MustCompile(`\s+then\s+`)
	hoursMinutesRe = regexp.MustCompile(`(\d+)h(\d+)m`)
	digitsRe       = regexp.MustCompile(`\d+`)
)

var totalDurationPatterns = []struct {
	re    *regexp.Regexp
	hours bool
}{
	{regexp.MustCompile(`(\d+)\s*hours?\s*(\d+)?\s*min`), true},
	{regexp.MustCompile(`(\d+)\s*h\s*(\d+)?\s*m`), true},
	{regexp.MustCompile(`(\d+)\s*minutes?`), false},
	{regexp.MustCompile(`(\d+)\s*min`), false},
	{regexp.MustCompile(`(\d+)\s*hours?`), true},
	{regexp.MustCompile(`(\d+)\s*h`), true},
}

// ParseDescription turns loose workout text into a finalized workout.
// Recognized shapes, tried in order: complex intervals
// ("2 x 14' (4') as first 2' @ 105% then 12' at 100%"), simple intervals
// ("4x5min @ 105%", "6 intervals at 110%"), and steady endurance text
// with an optional power percentage and total duration.
func ParseDescription(desc string) (Workout, error) {
	desc = strings.ToLower(strings.TrimSpace(desc))
	if desc == "" {
		return Workout{}, fmt.Errorf("workout description is empty")
	}

	switch {
	case isComplexInterval(desc):
		return parseComplexWorkout(desc)
	case isSimpleIntervals(desc):
		return parseSimpleIntervals(desc)
	default:
		return parseEndurance(desc)
	}
}

// ParseDuration converts loose duration text ("5min", "1h30m", "90'",
// "300s", a bare number of minutes) to seconds. Unparseable text falls
// back to 30 minutes; duration text inside descriptions is best-effort.
func ParseDuration(s string) int {
	s = strings.ToLower(strings.TrimSpace(s))

	if strings.Contains(s, "h") && strings.Contains(s, "m") {
		if m := hoursMinutesRe.FindStringSubmatch(s); m != nil {
			return atoi(m[1])*3600 + atoi(m[2])*60
		}
	}
	if strings.Contains(s, "hour") {
		if d := digitsRe.FindString(s); d != "" {
			return atoi(d) * 3600
		}
		return 3600
	}
	if strings.Contains(s, "min") || strings.Contains(s, "'") {
		if d := digitsRe.FindString(s); d != "" {
			return atoi(d) * 60
		}
		return 1800
	}
	if strings.Contains(s, "s") {
		if d := digitsRe.FindString(s); d != "" {
			return atoi(d)
		}
		return 300
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f) * 60
	}
	return 1800
}

func isComplexInterval(desc string) bool {
	return complexAsRe.MatchString(desc) ||
		complexFirstThenRe.MatchString(desc) ||
		complexRepsThenRe.MatchString(desc)
}

func isSimpleIntervals(desc string) bool {
	return simpleCountByRe.MatchString(desc) ||
		simpleTimesRe.MatchString(desc) ||
		simpleIntervalRe.MatchString(desc) ||
		simpleRepeatsRe.MatchString(desc)
}

func parseComplexWorkout(desc string) (Workout, error) {
	m := complexStructureRe.FindStringSubmatch(desc)
	if m == nil {
		return Workout{}, fmt.Errorf("could not parse complex interval structure from %q", desc)
	}
	reps := atoi(m[1])
	intervalSeconds := atoi(m[2]) * 60
	recoverySeconds := atoi(m[3]) * 60

	var pattern string
	if _, after, found := strings.Cut(desc, " as "); found {
		pattern = after
	}
	segments := parseComplexPattern(pattern)
	if len(segments) == 0 {
		return Workout{}, fmt.Errorf("could not parse interval pattern from %q", desc)
	}

	// Scale the pattern so its segments fill the stated interval length.
	patternSeconds := 0
	for _, seg := range segments {
		patternSeconds += seg.DurationSeconds
	}
	if patternSeconds != intervalSeconds {
		scale := float64(intervalSeconds) / float64(patternSeconds)
		for i := range segments {
			segments[i].DurationSeconds = int(float64(segments[i].DurationSeconds) * scale)
		}
	}

	expanded := expandComplex(ComplexInterval{
		Repetitions:             reps,
		Segments:                segments,
		RecoveryDurationSeconds: recoverySeconds,
		RecoveryPower:           defaultRecoveryPower,
	})
	return finalize(Workout{
		Name:        fmt.Sprintf("%d x %s' Complex Intervals", reps, m[2]),
		Description: desc,
		Type:        TypeIntervals,
		Segments:    expanded,
	})
}

// parseComplexPattern splits "first 2' @ 105% then 12' at 100%" into
// steady segments, skipping pieces missing a duration or a percentage.
func parseComplexPattern(pattern string) []Segment {
	var segments []Segment
	for _, part := range thenSplitRe.Split(pattern, -1) {
		durMatch := patternPieceRe.FindStringSubmatch(part)
		powerMatch := percentRe.FindStringSubmatch(part)
		if durMatch == nil || powerMatch == nil {
			continue
		}
		segments = append(segments, Segment{
			DurationSeconds: atoi(durMatch[1]) * 60,
			PowerStart:      float64(atoi(powerMatch[1])) / 100,
			Type:            SegmentSteadyState,
		})
	}
	return segments
}

func parseSimpleIntervals(desc string) (Workout, error) {
	var reps, workSeconds int
	if m := simpleCountByRe.FindStringSubmatch(desc); m != nil {
		reps = atoi(m[1])
		workSeconds = atoi(m[2]) * 60
	} else if m := simpleIntervalRe.FindStringSubmatch(desc); m != nil {
		reps = atoi(m[1])
		workSeconds = 300
	} else {
		return Workout{}, fmt.Errorf("could not parse interval structure from %q", desc)
	}

	power := 1.0
	if m := percentRe.FindStringSubmatch(desc); m != nil {
		power = float64(atoi(m[1])) / 100
	}

	// Two-minute recoveries and default bookends, like a hand-built set.
	return NewIntervalWorkout(reps, workSeconds, power, 120, defaultRecoveryPower, 0, 0)
}

func parseEndurance(desc string) (Workout, error) {
	var power float64
	if m := percentRe.FindStringSubmatch(desc); m != nil {
		power = float64(atoi(m[1])) / 100
	}

	w, err := NewEnduranceWorkout(extractTotalDuration(desc), power)
	if err != nil {
		return Workout{}, err
	}
	w.Description = desc
	return w, nil
}

func extractTotalDuration(desc string) int {
	for _, p := range totalDurationPatterns {
		m := p.re.FindStringSubmatch(desc)
		if m == nil {
			continue
		}
		if p.hours {
			minutes := 0
			if len(m) > 2 && m[2] != "" {
				minutes = atoi(m[2])
			}
			return atoi(m[1])*3600 + minutes*60
		}
		return atoi(m[1]) * 60
	}
	return 3600
}

// atoi is for digit runs already matched by a regexp.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
