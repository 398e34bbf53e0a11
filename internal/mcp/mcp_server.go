// Package mcp exposes the generated lecture session as Model Context Protocol
// tools over stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abhisek/edusense/internal/signals"
)

// NewMCPServer generates one session from g and registers the query tools
// without starting the server. Every tool answers from the same session.
func NewMCPServer(g *signals.Generator, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"EduSense Confusion Analytics",
		version,
		server.WithLogging(),
	)

	h := &toolHandler{
		timeline: g.Timeline(),
		peaks:    signals.Peaks(),
		heatmap:  g.Heatmap(),
		roster:   g.Roster(),
	}

	s.AddTool(mcp.NewTool("get_timeline",
		mcp.WithDescription("Return the per-student confusion timeline for the 60 minute lecture."),
		mcp.WithNumber("every", mcp.Description("Sampling interval in seconds, a multiple of 10. Defaults to 30.")),
		mcp.WithNumber("from", mcp.Description("Start of the range in seconds. Defaults to 0.")),
		mcp.WithNumber("to", mcp.Description("End of the range in seconds. Defaults to 3600.")),
	), h.handleGetTimeline)

	s.AddTool(mcp.NewTool("get_point",
		mcp.WithDescription("Return the confusion reading nearest to a playback time."),
		mcp.WithNumber("at", mcp.Description("Playback time in seconds."), mcp.Required()),
	), h.handleGetPoint)

	s.AddTool(mcp.NewTool("get_peaks",
		mcp.WithDescription("List the lecture's confusion peaks."),
	), h.handleGetPeaks)

	s.AddTool(mcp.NewTool("get_heatmap",
		mcp.WithDescription("Return the share of the class confused in each 100 second bucket."),
	), h.handleGetHeatmap)

	s.AddTool(mcp.NewTool("get_roster",
		mcp.WithDescription("Return the anonymized student roster ordered by confusion."),
		mcp.WithString("sort", mcp.Description("Sort key. Defaults to 'confusion'."), mcp.Enum("confusion", "frequency")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of students returned. Defaults to 10.")),
	), h.handleGetRoster)

	s.AddTool(mcp.NewTool("get_overview",
		mcp.WithDescription("Summarize the class: size, average confusion, hotspots and the most confusing moment."),
	), h.handleGetOverview)

	s.AddTool(mcp.NewTool("classify_level",
		mcp.WithDescription("Classify a confusion value into Clear, Mild or High."),
		mcp.WithNumber("value", mcp.Description("Confusion level or class percentage, 0 to 100."), mcp.Required()),
		mcp.WithString("scale", mcp.Description("'level' for an individual reading, 'share' for a class percentage. Defaults to 'level'."), mcp.Enum("level", "share")),
	), h.handleClassifyLevel)

	return s
}

// StartMCPServer serves the tools on stdin/stdout until the client disconnects.
func StartMCPServer(g *signals.Generator, version string) error {
	s := NewMCPServer(g, version)
	return server.ServeStdio(s)
}
