// Package mcpserver exposes the suggestion engine over the Model Context
// Protocol so coding agents can request refactor suggestions for a
// workspace without shelling out to the CLI.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server and registers the refract tools.
type Server struct {
	server *mcp.Server
}

// NewServer creates a new MCP server with all refract tools registered.
func NewServer(version string) *Server {
	if version == "" {
		version = "dev"
	}
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "refract",
			Version: version,
		},
		nil,
	)

	s := &Server{server: server}
	s.registerTools()
	return s
}

// Run starts the MCP server over stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "suggest_refactors",
		Description: "Scan source files for refactoring opportunities. Detects god functions, " +
			"console statement residue, weak typing, duplicated code within and across files, " +
			"high import coupling, unused imports, complex conditionals, magic numbers, and " +
			"oversized files. Returns prioritized suggestions with remediation steps and a " +
			"ready-to-use requirement document per suggestion.",
	}, handleSuggestRefactors)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "list_opportunities",
		Description: "Scan source files and return refactor opportunities in the simplified " +
			"consumer shape: UI category, impact label, and estimated time per item. Same " +
			"analysis as suggest_refactors with a lighter payload.",
	}, handleListOpportunities)
}
