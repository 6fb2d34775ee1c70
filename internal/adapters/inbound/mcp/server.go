package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewSpeclintMCPServer creates a new MCP server with the speclint tools and
// resources registered. The repoPath is the root directory of the repository
// to validate.
func NewSpeclintMCPServer(repoPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"speclint",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, repoPath)
	registerResources(s, repoPath)

	return s
}
