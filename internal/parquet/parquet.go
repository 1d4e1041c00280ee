// Package parquet provides data structures and functions for exporting run
// history data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/peakform/peakform/schema"
)

// RunRow represents a single load computation run with metadata.
// This struct maps to the peakform_runs database table.
type RunRow struct {
	// RunKey is the unique identifier for this run
	RunKey string `parquet:"run_key,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// WindowStart is the first day covered by the run
	WindowStart time.Time `parquet:"window_start,snappy"`

	// WindowEnd is the last day covered by the run
	WindowEnd time.Time `parquet:"window_end,snappy"`

	// ActivityCount is the number of activities rolled up in this run
	ActivityCount int32 `parquet:"activity_count,snappy"`

	// TotalTSS is the summed training stress across the window
	TotalTSS float64 `parquet:"total_tss,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// DailyLoadRow represents one day of computed training load in a run.
// This struct maps to the peakform_daily_loads database table.
type DailyLoadRow struct {
	// RunKey references the parent run
	RunKey string `parquet:"run_key,snappy"`

	// Date is the day this row describes (stored as TIMESTAMP with nanosecond precision)
	Date time.Time `parquet:"load_date,snappy"`

	// DailyTSS is the total training stress accumulated on this day
	DailyTSS float64 `parquet:"daily_tss,snappy"`

	// ATL is the acute training load (7-day fatigue)
	ATL float64 `parquet:"atl,snappy"`

	// CTL is the chronic training load (42-day fitness)
	CTL float64 `parquet:"ctl,snappy"`

	// TSB is the training stress balance (form)
	TSB float64 `parquet:"tsb,snappy"`

	// WeeklyTSS is the rolling 7-day total ending on this day
	WeeklyTSS float64 `parquet:"weekly_tss,snappy"`

	// Form is the classified form state label for this day
	Form string `parquet:"form,snappy"`
}

// WriteRunsParquet writes a slice of RunRow structs to a Parquet file.
func WriteRunsParquet(data []RunRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the RunRow struct tags
	writer := parquet.NewGenericWriter[RunRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteDailyLoadsParquet writes a slice of DailyLoadRow structs to a Parquet file.
func WriteDailyLoadsParquet(data []DailyLoadRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the DailyLoadRow struct tags
	writer := parquet.NewGenericWriter[DailyLoadRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// MockFetchRuns generates sample RunRow data for demonstration.
func MockFetchRuns() []RunRow {
	now := time.Now()
	windowStart := now.AddDate(0, 0, -90)

	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := startTime1.Add(1200 * time.Millisecond)
	durationMs1 := int32(endTime1.Sub(startTime1).Milliseconds())
	configParams1 := `{"ftp":250,"lookback":"90 days"}`

	startTime2 := now.Add(-24 * time.Hour)
	endTime2 := startTime2.Add(800 * time.Millisecond)
	durationMs2 := int32(endTime2.Sub(startTime2).Milliseconds())
	configParams2 := `{"ftp":245,"lookback":"60 days"}`

	startTime3 := now.Add(-10 * time.Minute)
	// Note: endTime3, durationMs3, configParams3 are nil to demonstrate nullable fields

	return []RunRow{
		{
			RunKey:        "20250601T080000-run1",
			StartTime:     startTime1,
			EndTime:       &endTime1,
			RunDurationMs: &durationMs1,
			WindowStart:   windowStart,
			WindowEnd:     now,
			ActivityCount: 42,
			TotalTSS:      3150.5,
			ConfigParams:  &configParams1,
		},
		{
			RunKey:        "20250531T080000-run2",
			StartTime:     startTime2,
			EndTime:       &endTime2,
			RunDurationMs: &durationMs2,
			WindowStart:   windowStart,
			WindowEnd:     now.AddDate(0, 0, -1),
			ActivityCount: 40,
			TotalTSS:      3010.0,
			ConfigParams:  &configParams2,
		},
		{
			RunKey:        "20250601T100000-run3",
			StartTime:     startTime3,
			EndTime:       nil, // Still running - nullable field
			RunDurationMs: nil, // Not yet calculated - nullable field
			WindowStart:   windowStart,
			WindowEnd:     now,
			ActivityCount: 0,
			TotalTSS:      0,
			ConfigParams:  nil, // No config stored - nullable field
		},
	}
}

// MockFetchDailyLoads generates sample DailyLoadRow data for demonstration.
func MockFetchDailyLoads() []DailyLoadRow {
	day := time.Now().AddDate(0, 0, -3)

	return []DailyLoadRow{
		{
			RunKey:    "20250601T080000-run1",
			Date:      day,
			DailyTSS:  95.0,
			ATL:       52.3,
			CTL:       48.1,
			TSB:       -4.2,
			WeeklyTSS: 410.0,
			Form:      "neutral",
		},
		{
			RunKey:    "20250601T080000-run1",
			Date:      day.AddDate(0, 0, 1),
			DailyTSS:  140.0,
			ATL:       64.0,
			CTL:       50.2,
			TSB:       -13.8,
			WeeklyTSS: 480.0,
			Form:      "tired",
		},
		{
			RunKey:    "20250601T080000-run1",
			Date:      day.AddDate(0, 0, 2),
			DailyTSS:  0.0,
			ATL:       55.5,
			CTL:       49.0,
			TSB:       -13.8,
			WeeklyTSS: 480.0,
			Form:      "tired",
		},
	}
}

// ConvertRunRecords converts schema.RunRecord to RunRow for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []RunRow {
	result := make([]RunRow, len(records))
	for i, record := range records {
		result[i] = RunRow{
			RunKey:        record.RunKey,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			WindowStart:   record.WindowStart,
			WindowEnd:     record.WindowEnd,
			ActivityCount: record.ActivityCount,
			TotalTSS:      record.TotalTSS,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertDailyLoadRecords converts schema.DailyLoadRecord to DailyLoadRow for Parquet export.
func ConvertDailyLoadRecords(records []schema.DailyLoadRecord) []DailyLoadRow {
	result := make([]DailyLoadRow, len(records))
	for i, record := range records {
		result[i] = DailyLoadRow{
			RunKey:    record.RunKey,
			Date:      record.Date,
			DailyTSS:  record.DailyTSS,
			ATL:       record.ATL,
			CTL:       record.CTL,
			TSB:       record.TSB,
			WeeklyTSS: record.WeeklyTSS,
			Form:      record.Form,
		}
	}
	return result
}
