package main

import (
	"github.com/spf13/cobra"

	"github.com/xkazm04/refract/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP (Model Context Protocol) server for LLM tool integration",
	Long: `Starts an MCP server over stdio transport that exposes the suggestion
engine as tools that LLMs can invoke.

To use with an MCP client, add to your config:
  {
    "mcpServers": {
      "refract": {
        "command": "refract",
        "args": ["mcp"]
      }
    }
  }

Available tools:
  - suggest_refactors     Full suggestion set with remediation documents
  - list_opportunities    Simplified consumer-facing opportunity list`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	server := mcpserver.NewServer(version)
	return server.Run(cmd.Context())
}
