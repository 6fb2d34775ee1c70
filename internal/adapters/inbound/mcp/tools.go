package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/speclint/speclint/internal/adapters/outbound/config"
	"github.com/speclint/speclint/internal/adapters/outbound/gitlog"
	"github.com/speclint/speclint/internal/adapters/outbound/scanner"
	"github.com/speclint/speclint/internal/application"
	"github.com/speclint/speclint/internal/domain"
)

// registerTools registers all speclint MCP tools on the given server.
func registerTools(s *server.MCPServer, repoPath string) {
	// 1. speclint_validate
	s.AddTool(
		mcplib.NewTool("speclint_validate",
			mcplib.WithDescription("Run the full SDD structure validation and return the report as JSON"),
			mcplib.WithBoolean("strict", mcplib.Description("Treat a warnings-only run as a failure")),
		),
		handleValidate(repoPath),
	)

	// 2. speclint_secret_patterns
	s.AddTool(
		mcplib.NewTool("speclint_secret_patterns",
			mcplib.WithDescription("Return the fixed table of secret-detection heuristics (label and expression)"),
		),
		handleSecretPatterns(),
	)
}

// newService creates the standard set of outbound adapters and the service.
func newService() *application.ValidateService {
	return application.NewValidateService(scanner.New(), config.New(), gitlog.New())
}

func handleValidate(repoPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		strict, _ := request.GetArguments()["strict"].(bool)

		report, err := newService().Validate(repoPath, strict)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleSecretPatterns() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		type patternInfo struct {
			Label      string `json:"label"`
			Expression string `json:"expression"`
		}

		patterns := make([]patternInfo, 0, len(domain.SecretPatterns))
		for _, sp := range domain.SecretPatterns {
			patterns = append(patterns, patternInfo{Label: sp.Label, Expression: sp.Pattern.String()})
		}
		return jsonResult(patterns)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
