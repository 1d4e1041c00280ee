package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/peakform/peakform/schema"
)

// Color variables for effort labels in console output.
var (
	EpicColor     = color.New(color.FgRed, color.Bold)     // epicColor marks a monument of a ride.
	HighColor     = color.New(color.FgMagenta, color.Bold) // highColor marks a demanding session.
	ModerateColor = color.New(color.FgYellow)              // moderateColor marks a solid workout, not bold.
	LowColor      = color.New(color.FgCyan)                // lowColor marks recovery-level work.
)

// Color variables for form states in console output.
var (
	RestedColor    = color.New(color.FgGreen)
	FreshColor     = color.New(color.FgCyan)
	NeutralColor   = color.New(color.FgYellow)
	TiredColor     = color.New(color.FgMagenta)
	VeryTiredColor = color.New(color.FgRed, color.Bold)
)

// GetColorEffortLabel returns a colored effort label for console output
// (table). It uses schema.GetEffortLabel to determine the string, and then
// applies the appropriate color.
func GetColorEffortLabel(tss float64) string {
	text := schema.GetEffortLabel(tss)

	switch text {
	case "Epic":
		return EpicColor.Sprint(text)
	case "High":
		return HighColor.Sprint(text)
	case "Moderate":
		return ModerateColor.Sprint(text)
	default: // "Low"
		return LowColor.Sprint(text)
	}
}

// GetColorFormLabel returns a colored form state for console output.
func GetColorFormLabel(form schema.FormState) string {
	switch form {
	case schema.FormRested:
		return RestedColor.Sprint(string(form))
	case schema.FormFresh:
		return FreshColor.Sprint(string(form))
	case schema.FormNeutral:
		return NeutralColor.Sprint(string(form))
	case schema.FormTired:
		return TiredColor.Sprint(string(form))
	case schema.FormVeryTired:
		return VeryTiredColor.Sprint(string(form))
	default:
		return string(form)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path and format type. It falls back to os.Stdout when no
// path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for the series
// result cache.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".peakform_cache.db"
	}
	return filepath.Join(homeDir, ".peakform_cache.db")
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run
// history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".peakform_history.db"
	}
	return filepath.Join(homeDir, ".peakform_history.db")
}

// TruncateText truncates text to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 to ensure there's space for both the "..." prefix
// and at least one character of content. Without this check, small maxWidth
// values could cause slice bounds errors in the truncation calculation.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
