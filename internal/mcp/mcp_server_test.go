package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcp_internal "github.com/abhisek/edusense/internal/mcp"
	"github.com/abhisek/edusense/internal/signals"
)

func call(t *testing.T, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	s := mcp_internal.NewMCPServer(signals.NewSeeded(5), "test")
	tool := s.GetTool(name)
	require.NotNil(t, tool, "tool %s should exist", name)

	res, err := tool.Handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	})
	require.NoError(t, err, "handlers report failures in the result, not as errors")
	require.NotNil(t, res)
	return res
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestGetTimeline(t *testing.T) {
	res := call(t, "get_timeline", map[string]any{"every": 60.0, "from": 1500.0, "to": 1620.0})
	require.False(t, res.IsError)

	var points []signals.DataPoint
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &points))
	require.Len(t, points, 3)
	assert.Equal(t, 1500, points[0].Timestamp)
	assert.Equal(t, 1620, points[2].Timestamp)
}

func TestGetTimeline_Defaults(t *testing.T) {
	res := call(t, "get_timeline", nil)
	require.False(t, res.IsError)

	var points []signals.DataPoint
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &points))
	assert.Len(t, points, 121)
}

func TestGetTimeline_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"bad every", map[string]any{"every": 15.0}, "multiple of 10"},
		{"inverted range", map[string]any{"from": 100.0, "to": 50.0}, "range must satisfy"},
		{"beyond lecture", map[string]any{"to": 4000.0}, "range must satisfy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := call(t, "get_timeline", tt.args)
			assert.True(t, res.IsError)
			assert.Contains(t, text(t, res), tt.want)
		})
	}
}

func TestGetPoint(t *testing.T) {
	res := call(t, "get_point", map[string]any{"at": 1552.0})
	require.False(t, res.IsError)

	var p signals.DataPoint
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &p))
	assert.Equal(t, 1550, p.Timestamp)
	assert.Equal(t, "Gradient Descent Optimization", p.Topic)
	assert.GreaterOrEqual(t, p.ConfusionLevel, 75.0)

	res = call(t, "get_point", nil)
	assert.True(t, res.IsError)
}

func TestGetPeaks(t *testing.T) {
	res := call(t, "get_peaks", nil)
	require.False(t, res.IsError)

	var peaks []signals.Peak
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &peaks))
	assert.Equal(t, signals.Peaks(), peaks)
}

func TestGetHeatmap(t *testing.T) {
	res := call(t, "get_heatmap", nil)
	require.False(t, res.IsError)

	var buckets []signals.HeatmapBucket
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &buckets))
	assert.Len(t, buckets, 36)
}

func TestGetRoster(t *testing.T) {
	res := call(t, "get_roster", map[string]any{"sort": "frequency", "limit": 5.0})
	require.False(t, res.IsError)

	var roster []signals.StudentRecord
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &roster))
	require.Len(t, roster, 5)
	for i := 1; i < len(roster); i++ {
		assert.GreaterOrEqual(t, roster[i-1].ConfusionFrequency, roster[i].ConfusionFrequency)
	}

	res = call(t, "get_roster", map[string]any{"sort": "alphabetical"})
	assert.True(t, res.IsError)

	res = call(t, "get_roster", map[string]any{"limit": 0.0})
	assert.True(t, res.IsError)
}

func TestGetOverview(t *testing.T) {
	res := call(t, "get_overview", nil)
	require.False(t, res.IsError)

	var ov signals.ClassOverview
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &ov))
	assert.Equal(t, 25, ov.TotalStudents)
	assert.Equal(t, "Activation Functions", ov.MostConfusingTopic)
}

func TestClassifyLevel(t *testing.T) {
	tests := []struct {
		args map[string]any
		band string
	}{
		{map[string]any{"value": 29.0}, "Clear"},
		{map[string]any{"value": 45.0}, "Mild"},
		{map[string]any{"value": 60.0}, "High"},
		{map[string]any{"value": 45.0, "scale": "share"}, "Mild"},
		{map[string]any{"value": 30.0, "scale": "share"}, "Clear"},
		{map[string]any{"value": 51.0, "scale": "share"}, "High"},
	}
	for _, tt := range tests {
		res := call(t, "classify_level", tt.args)
		require.False(t, res.IsError)

		var got struct {
			Band string `json:"band"`
		}
		require.NoError(t, json.Unmarshal([]byte(text(t, res)), &got))
		assert.Equal(t, tt.band, got.Band, "%v", tt.args)
	}

	res := call(t, "classify_level", map[string]any{"value": 140.0})
	assert.True(t, res.IsError)

	res = call(t, "classify_level", map[string]any{"value": 10.0, "scale": "decibels"})
	assert.True(t, res.IsError)
}
