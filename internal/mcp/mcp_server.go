// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/peakform/peakform/internal/contract"
)

// NewMCPServer initializes and configures the PeakForm MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"PeakForm Training Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: analyze_activity ---
	s.AddTool(mcp.NewTool("analyze_activity",
		mcp.WithDescription("Analyze a raw power sample stream and compute NP, IF, TSS and kilojoules for one ride."),
		mcp.WithString("file", mcp.Description("Path to the power samples JSON file."), mcp.Required()),
		mcp.WithNumber("ftp", mcp.Description("Functional Threshold Power in watts. Defaults to the configured FTP.")),
		mcp.WithBoolean("show_zones", mcp.Description("Include a time-in-zones breakdown.")),
		mcp.WithString("zone_model", mcp.Description("Zone model for the breakdown (coggan, polarized). Defaults to 'coggan'."), mcp.Enum("coggan", "polarized")),
	), h.handleAnalyzeActivity)

	// --- 2. Tool: build_load_series ---
	s.AddTool(mcp.NewTool("build_load_series",
		mcp.WithDescription("Build the daily training load series (TSS, ATL, CTL, TSB) from an activities file."),
		mcp.WithString("file", mcp.Description("Path to the activities JSON file."), mcp.Required()),
		mcp.WithNumber("ftp", mcp.Description("Functional Threshold Power in watts.")),
		mcp.WithString("lookback", mcp.Description("Time window for the series (e.g., '90 days', '12 weeks').")),
		mcp.WithString("start", mcp.Description("Absolute window start (YYYY-MM-DD).")),
		mcp.WithString("end", mcp.Description("Absolute window end (YYYY-MM-DD).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of days returned.")),
	), h.handleBuildLoadSeries)

	// --- 3. Tool: analyze_trend ---
	s.AddTool(mcp.NewTool("analyze_trend",
		mcp.WithDescription("Compare recent training load against the preceding stretch and raise advisory flags."),
		mcp.WithString("file", mcp.Description("Path to the activities JSON file."), mcp.Required()),
		mcp.WithNumber("ftp", mcp.Description("Functional Threshold Power in watts.")),
		mcp.WithString("lookback", mcp.Description("Time window for the underlying series.")),
		mcp.WithNumber("window", mcp.Description("Trend window in days. Defaults to the engine default.")),
	), h.handleAnalyzeTrend)

	// --- 4. Tool: compare_windows ---
	s.AddTool(mcp.NewTool("compare_windows",
		mcp.WithDescription("Compare aggregate training load between two time windows."),
		mcp.WithString("file", mcp.Description("Path to the activities JSON file."), mcp.Required()),
		mcp.WithString("baseline", mcp.Description("Baseline span shorthand (e.g., '28 days'). Carves two back-to-back windows off the end of the range.")),
		mcp.WithString("baseline_start", mcp.Description("Explicit baseline window start (YYYY-MM-DD).")),
		mcp.WithString("baseline_end", mcp.Description("Explicit baseline window end (YYYY-MM-DD).")),
		mcp.WithString("target_start", mcp.Description("Explicit target window start (YYYY-MM-DD).")),
		mcp.WithString("target_end", mcp.Description("Explicit target window end (YYYY-MM-DD).")),
		mcp.WithNumber("ftp", mcp.Description("Functional Threshold Power in watts.")),
	), h.handleCompareWindows)

	// --- 5. Tool: get_power_zones ---
	s.AddTool(mcp.NewTool("get_power_zones",
		mcp.WithDescription("List power zone watt ranges for an FTP, optionally classifying a power value."),
		mcp.WithNumber("ftp", mcp.Description("Functional Threshold Power in watts.")),
		mcp.WithString("zone_model", mcp.Description("Zone model (coggan, polarized). Defaults to 'coggan'."), mcp.Enum("coggan", "polarized")),
		mcp.WithString("classify", mcp.Description("A power value to classify: watts (e.g., '250') or a fraction of FTP (e.g., '0.85').")),
	), h.handleGetPowerZones)

	// --- 6. Tool: create_workout ---
	s.AddTool(mcp.NewTool("create_workout",
		mcp.WithDescription("Parse a structured workout description and compute its planned stress metrics."),
		mcp.WithString("description", mcp.Description("Workout description (e.g., '4x5min @ 105%')."), mcp.Required()),
		mcp.WithNumber("ftp", mcp.Description("Functional Threshold Power in watts.")),
		mcp.WithBoolean("show_zones", mcp.Description("Include a time-in-zones breakdown.")),
	), h.handleCreateWorkout)

	// --- 7. Tool: workout_tss ---
	s.AddTool(mcp.NewTool("workout_tss",
		mcp.WithDescription("Estimate planned TSS for a workout file or description."),
		mcp.WithString("file", mcp.Description("Path to the workout JSON file.")),
		mcp.WithString("description", mcp.Description("Workout description. Wins over the file when both are given.")),
		mcp.WithNumber("ftp", mcp.Description("Functional Threshold Power in watts.")),
	), h.handleWorkoutTSS)

	// --- 8. Tool: validate_workout ---
	s.AddTool(mcp.NewTool("validate_workout",
		mcp.WithDescription("Check a workout for structural problems and report errors and warnings."),
		mcp.WithString("file", mcp.Description("Path to the workout JSON file.")),
		mcp.WithString("description", mcp.Description("Workout description. Wins over the file when both are given.")),
	), h.handleValidateWorkout)

	return s
}

// StartMCPServer starts the PeakForm MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
