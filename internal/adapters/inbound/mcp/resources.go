package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers all speclint MCP resources on the given server.
func registerResources(s *server.MCPServer, repoPath string) {
	// speclint://report - full validation report
	s.AddResource(
		mcplib.NewResource(
			"speclint://report",
			"Validation Report",
			mcplib.WithResourceDescription("Current SDD structure validation report for the repository"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(repoPath),
	)
}

func handleReportResource(repoPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		report, err := newService().Validate(repoPath, false)
		if err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling report: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "speclint://report",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
