package contract

import "fmt"

// Revalidation helpers for per-request overrides. The MCP layer clones the
// base config for each tool call and pushes request parameters through the
// same parsing and validation the CLI flags get.

// RevalidateWindow reparses window parameters onto an already validated
// config. Leaving every parameter empty keeps the existing window.
func RevalidateWindow(cfg *Config, lookback, start, end string) error {
	if lookback == "" && start == "" && end == "" {
		return nil
	}
	input := &ConfigRawInput{Lookback: lookback, Start: start, End: end}
	return processTimeWindow(cfg, input)
}

// RevalidateCompare reparses comparison window parameters onto an already
// validated config.
func RevalidateCompare(cfg *Config, baseline, baselineStart, baselineEnd, targetStart, targetEnd string) error {
	input := &ConfigRawInput{
		Baseline:      baseline,
		BaselineStart: baselineStart,
		BaselineEnd:   baselineEnd,
		TargetStart:   targetStart,
		TargetEnd:     targetEnd,
	}
	return processCompareWindows(cfg, input)
}

// RevalidateFTP applies a per-request FTP override with the standard
// bounds. Zero keeps the configured FTP.
func RevalidateFTP(cfg *Config, ftp float64) error {
	if ftp == 0 {
		return nil
	}
	if ftp < MinFTP || ftp > MaxFTP {
		return fmt.Errorf("ftp must be between %.0f and %.0f watts (received %.1f)", MinFTP, MaxFTP, ftp)
	}
	cfg.FTP = ftp
	return nil
}

// RevalidateZoneModel applies a per-request zone model override. Empty
// keeps the configured model.
func RevalidateZoneModel(cfg *Config, model string) error {
	if model == "" {
		return nil
	}
	return processZoneModel(cfg, &ConfigRawInput{ZoneModel: model})
}

// RevalidateActivitiesPath resolves and checks a per-request data file.
// Empty keeps the configured path.
func RevalidateActivitiesPath(cfg *Config, path string) error {
	if path == "" {
		return nil
	}
	return resolveActivitiesPath(cfg, &ConfigRawInput{ActivitiesPathStr: path})
}
