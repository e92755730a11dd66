package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/xkazm04/refract/internal/corpus"
	"github.com/xkazm04/refract/pkg/config"
	"github.com/xkazm04/refract/pkg/engine"
	"github.com/xkazm04/refract/pkg/models"
)

// SuggestInput is the input for both refract tools.
type SuggestInput struct {
	Paths             []string `json:"paths,omitempty" jsonschema:"Paths to analyze. Defaults to current directory if empty."`
	SeverityThreshold string   `json:"severity_threshold,omitempty" jsonschema:"Minimum severity to include: low (default), medium, high, or critical."`
	MaxSuggestions    int      `json:"max_suggestions,omitempty" jsonschema:"Cap on returned suggestions. Default 50."`
}

func getPaths(input SuggestInput) []string {
	if len(input.Paths) == 0 {
		return []string{"."}
	}
	return input.Paths
}

// engineFor builds an engine from the tool input layered over any config
// file found in the working directory.
func engineFor(input SuggestInput) (*engine.Engine, *config.Config) {
	cfg := config.LoadOrDefault()
	ecfg := cfg.EngineConfig()
	if input.SeverityThreshold != "" {
		ecfg.SeverityThreshold = models.ParseSeverity(input.SeverityThreshold)
	}
	if input.MaxSuggestions > 0 {
		ecfg.MaxSuggestions = input.MaxSuggestions
	}
	return engine.New(engine.WithConfig(ecfg)), cfg
}

func toolResult(data any) (*mcp.CallToolResult, any, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(out)},
		},
	}, nil, nil
}

func toolError(msg string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: "Error: " + msg},
		},
		IsError: true,
	}, nil, nil
}

func runScan(ctx context.Context, input SuggestInput) (*models.Result, error) {
	eng, cfg := engineFor(input)

	loader := corpus.NewLoader(cfg)
	files, err := loader.Load(getPaths(input)...)
	if err != nil {
		return nil, err
	}

	return eng.Analyze(ctx, files)
}

func handleSuggestRefactors(ctx context.Context, req *mcp.CallToolRequest, input SuggestInput) (*mcp.CallToolResult, any, error) {
	result, err := runScan(ctx, input)
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(result)
}

func handleListOpportunities(ctx context.Context, req *mcp.CallToolRequest, input SuggestInput) (*mcp.CallToolResult, any, error) {
	result, err := runScan(ctx, input)
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(models.ToOpportunities(result.Suggestions))
}
