package pmc

import "fmt"

// InvalidArgumentError reports a contract violation at the point of the
// invalid input, such as a non-positive FTP or a malformed date range.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Field, e.Reason)
}

// InsufficientDataError reports an input stream too short for a
// rolling-window computation.
type InsufficientDataError struct {
	Need int
	Got  int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: need %d samples, got %d", e.Need, e.Got)
}

// InvalidZoneModelError reports a zone coverage or ordering violation.
// It is raised at model construction, never at classification.
type InvalidZoneModelError struct {
	Model  string
	Reason string
}

func (e *InvalidZoneModelError) Error() string {
	return fmt.Sprintf("invalid zone model %q: %s", e.Model, e.Reason)
}

// NoMatchingZoneError reports a classification miss. It can only happen
// against a model that bypassed construction validation.
type NoMatchingZoneError struct {
	Fraction float64
}

func (e *NoMatchingZoneError) Error() string {
	return fmt.Sprintf("no zone matches power fraction %.3f", e.Fraction)
}
