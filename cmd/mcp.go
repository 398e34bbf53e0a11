package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/edusense/internal/logger"
	"github.com/abhisek/edusense/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve session data to MCP clients over stdio",
	Long: `Start a Model Context Protocol server on stdin/stdout.

The server exposes the timeline, peaks, heatmap, roster and class overview of
one generated session, plus a severity classifier.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		g, seed := newGenerator()
		logger.Info("mcp server starting (seed %d)", seed)
		return mcp.StartMCPServer(g, version)
	},
}
