// Package main provides the entry point for the canopy CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	canopymcp "github.com/hollyoak/canopy/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run canopy as a Model Context Protocol (MCP) server over stdio.

This exposes mind-map operations as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "canopy": {
        "command": "canopy",
        "args": ["serve"]
      }
    }
  }

Available tools: export, show, status, add_node`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := canopymcp.NewServer(buildVersion(), mapPath(cmd))
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
