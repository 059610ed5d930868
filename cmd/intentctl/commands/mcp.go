package commands

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	intentMCP "mindbet-bot/internal/intent/delivery/mcp"
)

// NewMCPCmd creates the mcp command.
func NewMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the intent pipeline to LLM agents over MCP",
		Long: `Serve the intent pipeline as an MCP (Model Context Protocol) server on stdio.

Tools: resolve_intent, list_keywords and, when an LLM provider is
configured, hot_events. Logs go to stderr so stdout stays a clean
protocol stream.`,
		Example: `  # claude_desktop_config.json
  # {
  #   "mcpServers": {
  #     "mindbet": {"command": "intentctl", "args": ["mcp"]}
  #   }
  # }`,
		Args: cobra.NoArgs,
		RunE: runMCP,
	}
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	p, err := newPipeline(ctx)
	if err != nil {
		return err
	}

	server := intentMCP.NewServer(intentMCP.New(p.l, p.uc, p.table, p.hot))

	p.l.Info(ctx, "MCP server starting on stdio", "keyword_only", p.keywordOnly)
	if err := mcpserver.ServeStdio(server); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
