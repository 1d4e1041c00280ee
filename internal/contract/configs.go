package contract

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/peakform/peakform/core/pmc"
	"github.com/peakform/peakform/schema"
)

// Default values for configuration.
const (
	DefaultLookback    = "90 days"
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
	DefaultFTP         = 250.0
	MinFTP             = 50.0
	MaxFTP             = 600.0
)

// CacheGranularity defines the time granularity for caching series results.
// The load math works on calendar days, so cache keys and window alignment
// do too.
const CacheGranularity = 24 * time.Hour

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ZoneRawInput is one custom zone band from the config file.
type ZoneRawInput struct {
	Name        string  `mapstructure:"name"`
	MinFraction float64 `mapstructure:"min"`
	MaxFraction float64 `mapstructure:"max"`
	Color       string  `mapstructure:"color"`
	Description string  `mapstructure:"description"`
}

// FormRawInput holds form threshold overrides from the config file.
// Fields are pointers so an absent override is distinguishable from zero.
type FormRawInput struct {
	Rested     *float64 `mapstructure:"rested"`
	Fresh      *float64 `mapstructure:"fresh"`
	NeutralLow *float64 `mapstructure:"neutral_low"`
	TiredLow   *float64 `mapstructure:"tired_low"`
}

// ConstantsRawInput holds load time constant overrides from the config file.
type ConstantsRawInput struct {
	ATLDays *float64 `mapstructure:"atl_days"`
	CTLDays *float64 `mapstructure:"ctl_days"`
}

// PolicyRawInput holds trend policy overrides from the config file.
type PolicyRawInput struct {
	MaxWeeklyRamp *float64 `mapstructure:"max_weekly_ramp"`
	TSBFloor      *float64 `mapstructure:"tsb_floor"`
	StreakDays    *int     `mapstructure:"streak_days"`
}

// Config holds the runtime configuration for a command run.
// This struct remains the "final, validated" config.
type Config struct {
	ActivitiesPath string
	FTP            float64
	StartTime      time.Time
	EndTime        time.Time
	Lookback       time.Duration
	ResultLimit    int
	Workers        int
	Precision      int
	Output         schema.OutputMode
	OutputFile     string
	Width          int // Terminal width override (0 = auto-detect)
	UseColors      bool
	UseEmojis      bool

	ZoneModel      schema.ZoneModel
	FormThresholds schema.FormThresholds
	TimeConstants  schema.TimeConstants
	TrendPolicy    schema.TrendPolicy
	TrendWindow    int // Trend window in days (0 = engine default)

	ShowZones          bool
	ClassifyTarget     string
	WorkoutDescription string

	CompareMode   bool
	BaselineStart time.Time
	BaselineEnd   time.Time
	TargetStart   time.Time
	TargetEnd     time.Time

	// CheckThresholds is a mapping of [CheckName] = gate value
	CheckThresholds map[schema.CheckName]float64

	CacheBackend     schema.DatabaseBackend
	CacheDBConnect   string // Please use env var as this is plaintext
	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	ActivitiesPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	FTP               float64 `mapstructure:"ftp"`
	Lookback          string  `mapstructure:"lookback"`
	Start             string  `mapstructure:"start"`
	End               string  `mapstructure:"end"`
	Limit             int     `mapstructure:"limit"`
	Workers           int     `mapstructure:"workers"`
	Precision         int     `mapstructure:"precision"`
	Output            string  `mapstructure:"output"`
	OutputFile        string  `mapstructure:"output-file"`
	Width             int     `mapstructure:"width"`
	Color             string  `mapstructure:"color"`
	Emoji             string  `mapstructure:"emoji"`
	ZoneModel         string  `mapstructure:"zone-model"`
	FormThresholdsStr string  `mapstructure:"form-thresholds"`
	CacheBackend      string  `mapstructure:"cache-backend"`
	CacheConn         string  `mapstructure:"cache-conn"`
	HistoryBackend    string  `mapstructure:"history-backend"`
	HistoryConn       string  `mapstructure:"history-conn"`
	ShowZones         bool    `mapstructure:"show-zones"`

	// --- Fields from zonesCmd.Flags() ---
	Classify string `mapstructure:"classify"`

	// --- Fields from trendCmd.Flags() ---
	Window int `mapstructure:"window"`

	// --- Fields from compareCmd.Flags() ---
	Baseline      string `mapstructure:"baseline"`
	BaselineStart string `mapstructure:"baseline-start"`
	BaselineEnd   string `mapstructure:"baseline-end"`
	TargetStart   string `mapstructure:"target-start"`
	TargetEnd     string `mapstructure:"target-end"`

	// --- Fields from checkCmd.Flags() ---
	ChecksStr string `mapstructure:"checks"`

	// --- Fields from workoutCmd.Flags() ---
	Description string `mapstructure:"description"`

	// --- Sections only reachable through the config file ---
	Zones     []ZoneRawInput    `mapstructure:"zones"`
	Form      FormRawInput      `mapstructure:"form"`
	Constants ConstantsRawInput `mapstructure:"constants"`
	Policy    PolicyRawInput    `mapstructure:"policy"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.ZoneModel.Zones != nil {
		clone.ZoneModel.Zones = make([]schema.Zone, len(c.ZoneModel.Zones))
		copy(clone.ZoneModel.Zones, c.ZoneModel.Zones)
	}
	if c.CheckThresholds != nil {
		clone.CheckThresholds = make(map[schema.CheckName]float64)
		maps.Copy(clone.CheckThresholds, c.CheckThresholds)
	}
	return &clone
}

// CloneWithWindow creates a copy of the Config and sets a new time window.
func (c *Config) CloneWithWindow(start, end time.Time) *Config {
	clone := c.Clone()
	clone.StartTime = start
	clone.EndTime = end
	return clone
}

// GetWindowStart returns the window start aligned to the caching
// granularity. This keeps cache keys and series bounds consistent across
// the application and tests.
func (c *Config) GetWindowStart() time.Time {
	return schema.Day(c.StartTime)
}

// GetWindowEnd returns the window end aligned to the caching granularity.
func (c *Config) GetWindowEnd() time.Time {
	return schema.Day(c.EndTime)
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processTimeWindow(cfg, input); err != nil {
		return err
	}
	if err := processCompareWindows(cfg, input); err != nil {
		return err
	}
	if err := processZoneModel(cfg, input); err != nil {
		return err
	}
	if err := processFormThresholds(cfg, input); err != nil {
		return err
	}
	if err := processTimeConstants(cfg, input); err != nil {
		return err
	}
	if err := processTrendPolicy(cfg, input); err != nil {
		return err
	}
	if err := processCheckThresholds(cfg, input); err != nil {
		return err
	}
	return resolveActivitiesPath(cfg, input)
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using the %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using the %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates cache and history backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Cache Backend Validation ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidCacheBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheConn
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	// --- History Backend Validation ---
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if cfg.HistoryBackend != "" {
		if _, ok := schema.ValidCacheBackends[cfg.HistoryBackend]; !ok {
			return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
		}
		cfg.HistoryDBConnect = input.HistoryConn
		if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
			return err
		}

		// Cache and history must not collide on one SQLite file
		if cfg.CacheBackend == schema.SQLiteBackend && cfg.HistoryBackend == schema.SQLiteBackend {
			cacheDBPath := cfg.CacheDBConnect
			if cacheDBPath == "" {
				cacheDBPath = GetCacheDBFilePath()
			}
			historyDBPath := cfg.HistoryDBConnect
			if historyDBPath == "" {
				historyDBPath = GetHistoryDBFilePath()
			}
			if cacheDBPath == historyDBPath {
				return fmt.Errorf("cache and history storage must use different SQLite database files. Both resolve to %q", cacheDBPath)
			}
		}
	}

	return nil
}

// validateSimpleInputs processes and validates all scalar fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.ShowZones = input.ShowZones
	cfg.ClassifyTarget = strings.TrimSpace(input.Classify)
	cfg.WorkoutDescription = strings.TrimSpace(input.Description)

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. FTP Validation ---
	cfg.FTP = input.FTP
	if cfg.FTP == 0 {
		cfg.FTP = DefaultFTP
	}
	if cfg.FTP < MinFTP || cfg.FTP > MaxFTP {
		return fmt.Errorf("ftp must be between %.0f and %.0f watts (received %.1f)", MinFTP, MaxFTP, cfg.FTP)
	}

	// --- 2. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 3. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 4. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", cfg.Output)
	}

	// --- 5. Trend Window Validation ---
	if input.Window < 0 {
		return fmt.Errorf("window cannot be negative (received %d)", input.Window)
	}
	cfg.TrendWindow = input.Window

	// --- 6. Backend Validation ---
	return validateBackendConfigs(cfg, input)
}

// processTimeWindow handles lookback and absolute date parsing.
func processTimeWindow(cfg *Config, input *ConfigRawInput) error {
	now := time.Now()

	lookbackStr := input.Lookback
	if lookbackStr == "" {
		lookbackStr = DefaultLookback
	}
	lookback, err := ParseLookbackDuration(lookbackStr)
	if err != nil {
		return fmt.Errorf("invalid lookback: %w", err)
	}
	cfg.Lookback = lookback

	cfg.EndTime = now
	cfg.StartTime = now.Add(-lookback)

	// --- Process Start Time ---
	if input.Start != "" {
		t, err := parseFlexibleTime(input.Start, now)
		if err != nil {
			return fmt.Errorf("invalid start date format for '%s'. Expected RFC3339, %s or 'N [units] ago': %v", input.Start, schema.DayFormat, err)
		}
		cfg.StartTime = t
	}

	// --- Process End Time ---
	if input.End != "" {
		t, err := parseFlexibleTime(input.End, now)
		if err != nil {
			return fmt.Errorf("invalid end date format for '%s'. Expected RFC3339, %s or 'N [units] ago': %v", input.End, schema.DayFormat, err)
		}
		cfg.EndTime = t
	}

	// --- Final Validation ---
	if cfg.StartTime.After(cfg.EndTime) {
		return fmt.Errorf("start time (%s) cannot be after end time (%s)", cfg.StartTime.Format(DateTimeFormat), cfg.EndTime.Format(DateTimeFormat))
	}

	return nil
}

// parseFlexibleTime accepts RFC3339, a calendar day, or a relative
// "N [units] ago" phrase.
func parseFlexibleTime(s string, now time.Time) (time.Time, error) {
	if t, err := time.Parse(DateTimeFormat, s); err == nil {
		return t, nil
	}
	if t, err := schema.ParseDay(s); err == nil {
		return t, nil
	}
	return ParseRelativeTime(s, now)
}

// processCompareWindows handles the comparison window bounds. Either the
// --baseline shorthand carves two back-to-back windows off the end of the
// configured range, or all four explicit bounds are required.
func processCompareWindows(cfg *Config, input *ConfigRawInput) error {
	explicit := input.BaselineStart != "" || input.BaselineEnd != "" ||
		input.TargetStart != "" || input.TargetEnd != ""
	if !explicit && input.Baseline == "" {
		cfg.CompareMode = false
		return nil
	}
	cfg.CompareMode = true

	if input.Baseline != "" {
		if explicit {
			return fmt.Errorf("--baseline cannot be combined with explicit window bounds")
		}
		span, err := ParseLookbackDuration(input.Baseline)
		if err != nil {
			return fmt.Errorf("invalid baseline: %w", err)
		}
		days := int(span / CacheGranularity)
		if days < 1 {
			return fmt.Errorf("baseline window must cover at least one day")
		}
		cfg.TargetEnd = schema.Day(cfg.EndTime)
		cfg.TargetStart = cfg.TargetEnd.AddDate(0, 0, -(days - 1))
		cfg.BaselineEnd = cfg.TargetStart.AddDate(0, 0, -1)
		cfg.BaselineStart = cfg.BaselineEnd.AddDate(0, 0, -(days - 1))
		return nil
	}

	bounds := []struct {
		name  string
		value string
		dst   *time.Time
	}{
		{"--baseline-start", input.BaselineStart, &cfg.BaselineStart},
		{"--baseline-end", input.BaselineEnd, &cfg.BaselineEnd},
		{"--target-start", input.TargetStart, &cfg.TargetStart},
		{"--target-end", input.TargetEnd, &cfg.TargetEnd},
	}
	for _, b := range bounds {
		if b.value == "" {
			return fmt.Errorf("%s is required when comparing explicit windows", b.name)
		}
		day, err := schema.ParseDay(b.value)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", b.name, err)
		}
		*b.dst = day
	}

	if cfg.BaselineStart.After(cfg.BaselineEnd) {
		return fmt.Errorf("baseline window start cannot be after its end")
	}
	if cfg.TargetStart.After(cfg.TargetEnd) {
		return fmt.Errorf("target window start cannot be after its end")
	}

	return nil
}

// processZoneModel resolves the zone model: a builtin by name, or the
// custom zone list from the config file.
func processZoneModel(cfg *Config, input *ConfigRawInput) error {
	name := schema.ZoneModelName(strings.ToLower(input.ZoneModel))
	if name == "" {
		name = schema.CogganModel
	}
	if _, ok := schema.ValidZoneModelNames[name]; !ok {
		return fmt.Errorf("invalid zone model '%s'. must be coggan, polarized, custom", input.ZoneModel)
	}

	if name != schema.CustomModel {
		model, ok := schema.GetBuiltinZoneModel(name)
		if !ok {
			return fmt.Errorf("no builtin zone model named '%s'", name)
		}
		cfg.ZoneModel = model
		return nil
	}

	if len(input.Zones) == 0 {
		return fmt.Errorf("zone model 'custom' requires a zones list in the config file")
	}
	zones := make([]schema.Zone, len(input.Zones))
	for i, z := range input.Zones {
		zones[i] = schema.Zone{
			Name:        z.Name,
			MinFraction: z.MinFraction,
			MaxFraction: z.MaxFraction,
			Color:       z.Color,
			Description: z.Description,
		}
	}
	model, err := pmc.NewZoneModel(schema.CustomModel, "Custom zones from configuration", zones)
	if err != nil {
		return fmt.Errorf("invalid custom zones: %w", err)
	}
	cfg.ZoneModel = model
	return nil
}

// processFormThresholds layers form boundary overrides: defaults first,
// then the config file section, then the --form-thresholds flag.
func processFormThresholds(cfg *Config, input *ConfigRawInput) error {
	t := schema.DefaultFormThresholds()

	if input.Form.Rested != nil {
		t.Rested = *input.Form.Rested
	}
	if input.Form.Fresh != nil {
		t.Fresh = *input.Form.Fresh
	}
	if input.Form.NeutralLow != nil {
		t.NeutralLow = *input.Form.NeutralLow
	}
	if input.Form.TiredLow != nil {
		t.TiredLow = *input.Form.TiredLow
	}

	if input.FormThresholdsStr != "" {
		parsed, err := parseKeyValueFloats(input.FormThresholdsStr, []string{"rested", "fresh", "neutral", "tired"})
		if err != nil {
			return fmt.Errorf("invalid --form-thresholds format: %w", err)
		}
		for key, value := range parsed {
			switch key {
			case "rested":
				t.Rested = value
			case "fresh":
				t.Fresh = value
			case "neutral":
				t.NeutralLow = value
			case "tired":
				t.TiredLow = value
			}
		}
	}

	if t.Rested <= t.Fresh || t.Fresh < t.NeutralLow || t.NeutralLow <= t.TiredLow {
		return fmt.Errorf("form thresholds must descend: rested > fresh >= neutral > tired (received %.1f, %.1f, %.1f, %.1f)",
			t.Rested, t.Fresh, t.NeutralLow, t.TiredLow)
	}

	cfg.FormThresholds = t
	return nil
}

// processTimeConstants applies load time constant overrides.
func processTimeConstants(cfg *Config, input *ConfigRawInput) error {
	c := schema.DefaultTimeConstants()
	if input.Constants.ATLDays != nil {
		c.ATLDays = *input.Constants.ATLDays
	}
	if input.Constants.CTLDays != nil {
		c.CTLDays = *input.Constants.CTLDays
	}

	if c.ATLDays <= 0 || c.CTLDays <= 0 {
		return fmt.Errorf("time constants must be positive (received atl %.1f, ctl %.1f)", c.ATLDays, c.CTLDays)
	}
	if c.ATLDays >= c.CTLDays {
		return fmt.Errorf("the acute window must be shorter than the chronic window (received atl %.1f, ctl %.1f)", c.ATLDays, c.CTLDays)
	}

	cfg.TimeConstants = c
	return nil
}

// processTrendPolicy applies advisory flag threshold overrides.
func processTrendPolicy(cfg *Config, input *ConfigRawInput) error {
	p := schema.DefaultTrendPolicy()
	if input.Policy.MaxWeeklyRamp != nil {
		p.MaxWeeklyRamp = *input.Policy.MaxWeeklyRamp
	}
	if input.Policy.TSBFloor != nil {
		p.TSBFloor = *input.Policy.TSBFloor
	}
	if input.Policy.StreakDays != nil {
		p.StreakDays = *input.Policy.StreakDays
	}

	if p.MaxWeeklyRamp <= 0 {
		return fmt.Errorf("max weekly ramp must be positive (received %.1f)", p.MaxWeeklyRamp)
	}
	if p.StreakDays < 0 {
		return fmt.Errorf("streak days cannot be negative (received %d)", p.StreakDays)
	}

	cfg.TrendPolicy = p
	return nil
}

// processCheckThresholds merges --checks overrides into the default gates.
func processCheckThresholds(cfg *Config, input *ConfigRawInput) error {
	thresholds := schema.DefaultCheckThresholds()

	if input.ChecksStr != "" {
		parsed, err := parseKeyValueFloats(input.ChecksStr, []string{string(schema.CheckRampRate), string(schema.CheckTSBFloor)})
		if err != nil {
			return fmt.Errorf("invalid --checks format: %w", err)
		}
		for key, value := range parsed {
			thresholds[schema.CheckName(key)] = value
		}
	}

	if thresholds[schema.CheckRampRate] <= 0 {
		return fmt.Errorf("the ramp gate must be positive (received %.1f)", thresholds[schema.CheckRampRate])
	}

	cfg.CheckThresholds = thresholds
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling
// configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// resolveActivitiesPath resolves the optional activities file argument to
// an absolute path and checks that it exists. Commands without a file
// argument leave it empty.
func resolveActivitiesPath(cfg *Config, input *ConfigRawInput) error {
	if input.ActivitiesPathStr == "" {
		cfg.ActivitiesPath = ""
		return nil
	}

	absPath, err := filepath.Abs(input.ActivitiesPathStr)
	if err != nil {
		return err
	}
	absPath = filepath.Clean(absPath)

	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("activities file %q: %w", input.ActivitiesPathStr, err)
	}
	if info.IsDir() {
		return fmt.Errorf("activities path %q is a directory, expected a file", input.ActivitiesPathStr)
	}

	cfg.ActivitiesPath = absPath
	return nil
}

// parseKeyValueFloats parses a string like "ramp:8,tsb:-30" into a map,
// rejecting keys outside the valid set.
func parseKeyValueFloats(s string, validKeys []string) (map[string]float64, error) {
	values := make(map[string]float64)

	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		keyValue := strings.Split(part, ":")
		if len(keyValue) != 2 {
			return nil, fmt.Errorf("invalid entry '%s', expected 'key:value'", part)
		}

		key := strings.ToLower(strings.TrimSpace(keyValue[0]))
		if !slices.Contains(validKeys, key) {
			return nil, fmt.Errorf("invalid key '%s', must be one of %s", key, strings.Join(validKeys, ", "))
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(keyValue[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value '%s' for key %s: %w", keyValue[1], key, err)
		}

		values[key] = value
	}

	return values, nil
}
