// Package main provides a performance benchmarking tool for the PeakForm CLI.
// It measures execution times across different activity history sizes and command types,
// running each test multiple times, treating the first successful run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - peakform binary installed and available in PATH
//
// Activity datasets are generated into the given directory on first use and
// reused on later runs. Generation is seeded, so repeated invocations
// benchmark identical inputs.
//
// Usage: go run benchmark/main.go [data-dir]
//
//	data-dir: Directory that holds the generated activity files
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/peakform/peakform/schema"
)

// BenchmarkResult holds the result of a benchmark run (no-cache average, cold run and average of warm runs).
type BenchmarkResult struct {
	Dataset     string
	Command     string
	NoCacheTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	DataDir     string
	Timeout     time.Duration
	Workers     int
	NoCacheRuns int
	CacheRuns   int
	Datasets    []Dataset
}

// Dataset describes one generated activity history.
type Dataset struct {
	Name    string
	Days    int
	Style   string // summary, power or samples
	Seed    int64
	RidesWk int
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [data-dir]\n", os.Args[0])
		os.Exit(1)
	}
	dataDir := os.Args[1]

	config := BenchmarkConfig{
		DataDir:     dataDir,
		Timeout:     5 * time.Minute,
		Workers:     8,
		NoCacheRuns: 3,
		CacheRuns:   4,
		Datasets: []Dataset{
			{Name: "quarter", Days: 90, Style: "summary", Seed: 11, RidesWk: 5},
			{Name: "halfyear", Days: 180, Style: "power", Seed: 23, RidesWk: 5},
			{Name: "year", Days: 365, Style: "samples", Seed: 37, RidesWk: 4},
			{Name: "twoyears", Days: 730, Style: "samples", Seed: 53, RidesWk: 5},
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	if err := generateDatasets(config); err != nil {
		fmt.Printf("Dataset generation failed: %v\n", err)
		os.Exit(1)
	}

	// Clear the series cache using peakform cache clear
	fmt.Printf("Clearing cache...\n")
	clearCmd := exec.Command("peakform", "cache", "clear")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear cache: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Cache cleared successfully\n")
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the peakform binary and data directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	// Check if peakform is available
	if _, err := exec.LookPath("peakform"); err != nil {
		return fmt.Errorf("peakform binary not found in PATH")
	}

	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return fmt.Errorf("cannot create data directory %s: %w", config.DataDir, err)
	}

	return nil
}

// generateDatasets writes any missing activity files. Existing files are
// left alone so warm-cache results stay comparable across invocations.
func generateDatasets(config BenchmarkConfig) error {
	for _, ds := range config.Datasets {
		path := datasetPath(config, ds)
		if _, err := os.Stat(path); err == nil {
			continue
		}

		fmt.Printf("Generating %s (%d days, %s)\n", ds.Name, ds.Days, ds.Style)
		records := generateActivities(ds)
		data, err := json.Marshal(records)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", ds.Name, err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

func datasetPath(config BenchmarkConfig, ds Dataset) string {
	return filepath.Join(config.DataDir, fmt.Sprintf("activities_%s.json", ds.Name))
}

// generateActivities builds a seeded ride history ending today. Summary
// datasets carry stored TSS only, power datasets carry average power, and
// sample datasets carry full 1 Hz power streams so normalized-power
// recomputation dominates the run.
func generateActivities(ds Dataset) []schema.ActivityRecord {
	rng := rand.New(rand.NewSource(ds.Seed))
	end := time.Now().UTC().Truncate(24 * time.Hour)

	var records []schema.ActivityRecord
	for i := ds.Days - 1; i >= 0; i-- {
		// Roughly RidesWk rides per week, long ride on weekends.
		if rng.Intn(7) >= ds.RidesWk {
			continue
		}
		day := end.AddDate(0, 0, -i)

		durationSec := float64(2700 + rng.Intn(2700)) // 45 to 90 minutes
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			durationSec = float64(7200 + rng.Intn(3600)) // 2 to 3 hours
		}

		rec := schema.ActivityRecord{
			Date:            day.Add(time.Duration(7+rng.Intn(10)) * time.Hour),
			Name:            fmt.Sprintf("%s ride %s", ds.Name, day.Format("2006-01-02")),
			DurationSeconds: durationSec,
		}

		switch ds.Style {
		case "summary":
			tss := 30 + rng.Float64()*90
			rec.TSS = &tss
		case "power":
			avg := 150 + rng.Float64()*70
			rec.AvgPower = &avg
		case "samples":
			rec.Samples = generateSamples(rng, int(durationSec))
		}

		records = append(records, rec)
	}
	return records
}

// generateSamples produces a 1 Hz stream with a warmup, a varying main set
// and a cooldown.
func generateSamples(rng *rand.Rand, durationSec int) []schema.PowerSample {
	samples := make([]schema.PowerSample, 0, durationSec)
	blockWatts := 180.0
	for t := 0; t < durationSec; t++ {
		switch {
		case t < 600:
			blockWatts = 140
		case t >= durationSec-600:
			blockWatts = 120
		default:
			// New target every 30 seconds inside the main set.
			if (t-600)%30 == 0 {
				blockWatts = 160 + rng.Float64()*90
			}
		}
		watts := blockWatts + rng.Float64()*10 - 5
		if watts < 0 {
			watts = 0
		}
		samples = append(samples, schema.PowerSample{OffsetSeconds: t, Watts: watts})
	}
	return samples
}

// runBenchmarks executes all benchmark tests across configured datasets
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d datasets, %v timeout, %d workers, no-cache: %d runs, cache: %d runs\n",
		len(config.Datasets), config.Timeout, config.Workers, config.NoCacheRuns, config.CacheRuns)

	for _, ds := range config.Datasets {
		fmt.Printf("Benchmarking %s\n", ds.Name)

		path := datasetPath(config, ds)
		lookback := fmt.Sprintf("--lookback \"%d days\"", ds.Days)

		// Series build
		result := runBenchmarkSuite(config, ds.Name, path, "series", "series build", lookback)
		results = append(results, result)

		// Comparison of the two most recent 28-day blocks
		desc := "compare analysis (28-day baseline)"
		result = runBenchmarkSuite(config, ds.Name, path, "compare", desc, lookback+" --baseline \"28 days\"")
		results = append(results, result)

		// Trend over a two-week window
		result = runBenchmarkSuite(config, ds.Name, path, "trend", "trend analysis (14-day window)", lookback+" --window 14")
		results = append(results, result)
	}

	return results
}

// runBenchmarkSuite runs both no-cache and cache benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, dataset, path, command, description, extraArgs string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", description, dataset)

	// Helper to run a benchmark phase
	runPhase := func(cacheBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, path, command, extraArgs, cacheBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-cache runs
	_, noCacheAvg := runPhase("none", config.NoCacheRuns, "No-cache")

	// Phase 2: Cache runs
	coldTime, warmAvg := runPhase("sqlite", config.CacheRuns, "Cache")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-cache average: %s, Cold time: %s, Warm average: %s\n", noCacheAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Dataset:     dataset,
		Command:     command,
		NoCacheTime: noCacheAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes a peakform command multiple times with the given cache backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, path, command, extraArgs, cacheBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	// Prepare command arguments
	args := []string{command, path, "--cache-backend", cacheBackend, "--workers", fmt.Sprintf("%d", config.Workers)}
	if extraArgs != "" {
		args = append(args, parseArgs(extraArgs)...)
	}

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("peakform", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output, command) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

func parseArgs(argsStr string) []string {
	var args []string
	var current strings.Builder
	inQuotes := false

	for _, r := range argsStr {
		switch r {
		case '"':
			inQuotes = !inQuotes
		case ' ':
			if !inQuotes && current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			} else if inQuotes {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte, command string) bool {
	outputStr := string(output)

	var completionPhrase string
	switch command {
	case "series":
		completionPhrase = "Series build completed in"
	case "compare":
		completionPhrase = "Comparison completed in"
	case "trend":
		completionPhrase = "Trend analysis completed in"
	default:
		completionPhrase = "completed in"
	}

	return strings.Contains(outputStr, completionPhrase)
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/peakform_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"dataset", "cmd", "no_cache_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Command, result.NoCacheTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "series", "Series Build:")
	printCommandSummary(results, "compare", "Compare Analysis:")
	printCommandSummary(results, "trend", "Trend Analysis:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-12s: No-cache: %s, Cold: %s, Warm: %s\n", result.Dataset, result.NoCacheTime, result.ColdTime, result.WarmTime)
		}
	}
}
