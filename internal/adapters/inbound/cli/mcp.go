package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/speclint/speclint/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the speclint MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var repoPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start speclint MCP server (stdio)",
		Long:  "Start the speclint MCP server using stdio transport. This lets AI coding assistants run the structure validation and read the latest report.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if repoPath == "" {
				repoPath = "."
			}
			s := mcpadapter.NewSpeclintMCPServer(repoPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&repoPath, "path", "", "Repository path (defaults to current working directory)")

	return cmd
}
