// Package cmd defines the command-line interface for peakform.
package cmd

import (
	"github.com/peakform/peakform/internal/contract"
	"github.com/peakform/peakform/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(zonesCmd)
	rootCmd.AddCommand(workoutCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(historyCmd)

	// Add the workout subcommands to the parent workout command
	workoutCmd.AddCommand(workoutCreateCmd)
	workoutCmd.AddCommand(workoutParseCmd)
	workoutCmd.AddCommand(workoutTSSCmd)
	workoutCmd.AddCommand(workoutValidateCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Float64("ftp", 0, "Functional Threshold Power in watts (0 uses the default of 250)")
	rootCmd.PersistentFlags().String("lookback", contract.DefaultLookback, "Time duration to look back from the window end")
	rootCmd.PersistentFlags().String("start", "", "Start date in ISO8601, calendar day or time ago")
	rootCmd.PersistentFlags().String("end", "", "End date in ISO8601, calendar day or time ago")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of series rows to display")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emoji markers in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("zone-model", "", "Power zone model: coggan or polarized or custom")
	rootCmd.PersistentFlags().String("form-thresholds", "", "Form state boundaries (format: 'rested:20,fresh:5,neutral:-10,tired:-30')")
	rootCmd.PersistentFlags().Bool("show-zones", false, "Print the time-in-zones breakdown")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-conn", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("history-backend", "", "Run history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-conn", "", "Database connection string for run history (must differ from cache-conn)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of zonesCmd to Viper
	zonesCmd.Flags().String("classify", "", "Classify a power target: watts (e.g., '250') or a fraction of FTP (e.g., '0.85')")
	if err := viper.BindPFlags(zonesCmd.Flags()); err != nil {
		contract.LogFatal("Error binding zones flags", err)
	}

	// Bind all flags of trendCmd to Viper
	trendCmd.Flags().Int("window", 0, "Comparison window in days for trend deltas (0 = 7-day default)")
	if err := viper.BindPFlags(trendCmd.Flags()); err != nil {
		contract.LogFatal("Error binding trend flags", err)
	}

	// Bind all flags of compareCmd to Viper
	compareCmd.Flags().String("baseline", "", "Carve baseline and target windows of this span off the window end (e.g., '28 days')")
	compareCmd.Flags().String("baseline-start", "", "Baseline window start day (2006-01-02)")
	compareCmd.Flags().String("baseline-end", "", "Baseline window end day (2006-01-02)")
	compareCmd.Flags().String("target-start", "", "Target window start day (2006-01-02)")
	compareCmd.Flags().String("target-end", "", "Target window end day (2006-01-02)")
	if err := viper.BindPFlags(compareCmd.Flags()); err != nil {
		contract.LogFatal("Error binding compare flags", err)
	}

	// Bind all flags of checkCmd to Viper
	checkCmd.Flags().String("checks", "", "Gate thresholds for CI/CD checks (format: 'ramp:8,tsb:-30')")
	if err := viper.BindPFlags(checkCmd.Flags()); err != nil {
		contract.LogFatal("Error binding check flags", err)
	}

	// Bind the shared workout flags to Viper
	workoutCmd.PersistentFlags().String("description", "", "Inline workout description (e.g., '4x5min @ 105%')")
	if err := viper.BindPFlags(workoutCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding workout flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
