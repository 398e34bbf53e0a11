package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/abhisek/edusense/internal/cohort"
	"github.com/abhisek/edusense/internal/playback"
	"github.com/abhisek/edusense/internal/severity"
	"github.com/abhisek/edusense/internal/signals"
)

// toolHandler holds the session every tool answers from.
type toolHandler struct {
	timeline []signals.DataPoint
	peaks    []signals.Peak
	heatmap  []signals.HeatmapBucket
	roster   []signals.StudentRecord
}

// classification is the classify_level response.
type classification struct {
	Value float64 `json:"value"`
	Scale string  `json:"scale"`
	Band  string  `json:"band"`
	Label string  `json:"label"`
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (h *toolHandler) handleGetTimeline(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	every := request.GetInt("every", 30)
	from := request.GetInt("from", 0)
	to := request.GetInt("to", playback.Duration)

	if every < signals.TimelineStep || every%signals.TimelineStep != 0 {
		return mcp.NewToolResultError(fmt.Sprintf("every must be a positive multiple of %d", signals.TimelineStep)), nil
	}
	if from < 0 || to > playback.Duration || from > to {
		return mcp.NewToolResultError(fmt.Sprintf("range must satisfy 0 <= from <= to <= %d", playback.Duration)), nil
	}

	var out []signals.DataPoint
	for _, p := range signals.Sample(h.timeline, every) {
		if p.Timestamp >= from && p.Timestamp <= to {
			out = append(out, p)
		}
	}
	return jsonResult(out)
}

func (h *toolHandler) handleGetPoint(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	at := request.GetInt("at", -1)
	if at < 0 || at > playback.Duration {
		return mcp.NewToolResultError(fmt.Sprintf("at must be between 0 and %d", playback.Duration)), nil
	}
	return jsonResult(signals.PointAt(h.timeline, at))
}

func (h *toolHandler) handleGetPeaks(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.peaks)
}

func (h *toolHandler) handleGetHeatmap(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.heatmap)
}

func (h *toolHandler) handleGetRoster(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, ok := cohort.ParseSortKey(request.GetString("sort", string(cohort.ByConfusion)))
	if !ok {
		return mcp.NewToolResultError("sort must be 'confusion' or 'frequency'"), nil
	}
	limit := request.GetInt("limit", cohort.VisibleRows)
	if limit < 1 {
		return mcp.NewToolResultError("limit must be at least 1"), nil
	}
	return jsonResult(cohort.Top(h.roster, key, limit))
}

func (h *toolHandler) handleGetOverview(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(signals.Overview(h.roster, h.heatmap, h.peaks))
}

func (h *toolHandler) handleClassifyLevel(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	value := request.GetFloat("value", -1)
	if value < 0 || value > 100 {
		return mcp.NewToolResultError("value must be between 0 and 100"), nil
	}

	scale := request.GetString("scale", "level")
	var band severity.Band
	switch scale {
	case "level":
		band = severity.Classify(value)
	case "share":
		band = severity.ClassifyShare(int(value))
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown scale %q", scale)), nil
	}

	return jsonResult(classification{
		Value: value,
		Scale: scale,
		Band:  band.Short(),
		Label: band.Label(),
	})
}
