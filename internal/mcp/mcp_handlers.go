package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/peakform/peakform/core"
	"github.com/peakform/peakform/internal/contract"
	"github.com/peakform/peakform/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

// activityPayload is the JSON shape returned by the analyze_activity tool.
type activityPayload struct {
	Metrics schema.EnrichedActivityMetrics `json:"metrics"`
	Zones   *schema.ZoneDistribution       `json:"zones,omitempty"`
}

// applyOverrides pushes the request parameters shared across tools through
// the same validation the CLI flags get. Each helper ignores parameters
// the request does not carry.
func applyOverrides(cfg *contract.Config, request mcp.CallToolRequest) error {
	if err := contract.RevalidateActivitiesPath(cfg, request.GetString("file", "")); err != nil {
		return err
	}
	if err := contract.RevalidateFTP(cfg, request.GetFloat("ftp", 0)); err != nil {
		return err
	}
	if err := contract.RevalidateWindow(cfg,
		request.GetString("lookback", ""),
		request.GetString("start", ""),
		request.GetString("end", "")); err != nil {
		return err
	}
	return contract.RevalidateZoneModel(cfg, request.GetString("zone_model", ""))
}

func (h *toolHandler) handleAnalyzeActivity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.ShowZones = request.GetBool("show_zones", cfg.ShowZones)
	if err := applyOverrides(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	output, _, err := core.GetActivityResults(core.WithSuppressOutput(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	payload := activityPayload{Metrics: schema.EnrichActivity(output.Metrics), Zones: output.Zones}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleBuildLoadSeries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}
	if err := applyOverrides(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	series, _, err := core.GetSeriesResults(core.WithSuppressOutput(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("series build failed: %v", err)), nil
	}

	enriched := schema.EnrichSeries(series, cfg.ResultLimit)
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleAnalyzeTrend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if w := request.GetInt("window", 0); w > 0 {
		cfg.TrendWindow = w
	}
	if err := applyOverrides(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	result, _, err := core.GetTrendResults(core.WithSuppressOutput(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("trend analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCompareWindows(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := applyOverrides(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	err := contract.RevalidateCompare(cfg,
		request.GetString("baseline", ""),
		request.GetString("baseline_start", ""),
		request.GetString("baseline_end", ""),
		request.GetString("target_start", ""),
		request.GetString("target_end", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid comparison parameters: %v", err)), nil
	}

	comparisonResult, _, err := core.GetCompareResults(core.WithSuppressOutput(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(comparisonResult, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetPowerZones(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.ClassifyTarget = strings.TrimSpace(request.GetString("classify", ""))
	if err := applyOverrides(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	output, _, err := core.GetZonesResults(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("zone lookup failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(output, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCreateWorkout(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.WorkoutDescription = strings.TrimSpace(request.GetString("description", ""))
	cfg.ShowZones = request.GetBool("show_zones", cfg.ShowZones)
	if err := applyOverrides(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	report, _, err := core.GetWorkoutCreateResults(core.WithSuppressOutput(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("workout parsing failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleWorkoutTSS(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.WorkoutDescription = strings.TrimSpace(request.GetString("description", ""))
	if err := applyOverrides(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	report, _, err := core.GetWorkoutTSSResults(core.WithSuppressOutput(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("workout analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleValidateWorkout(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.WorkoutDescription = strings.TrimSpace(request.GetString("description", ""))
	if err := applyOverrides(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	report, _, err := core.GetWorkoutValidateResults(core.WithSuppressOutput(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("workout validation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
