package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"mindbet-bot/internal/hotspot"
	"mindbet-bot/internal/intent"
	"mindbet-bot/internal/keyword"
	"mindbet-bot/pkg/log"
)

// Handlers implements the MCP tools over the intent pipeline.
type Handlers struct {
	l     log.Logger
	uc    intent.UseCase
	table *keyword.Table
	hot   hotspot.UseCase
}

// New creates the tool handlers. hot may be nil, in which case hot_events is not registered.
func New(l log.Logger, uc intent.UseCase, table *keyword.Table, hot hotspot.UseCase) *Handlers {
	return &Handlers{
		l:     l,
		uc:    uc,
		table: table,
		hot:   hot,
	}
}

// NewServer builds an MCP server with every tool registered.
func NewServer(h *Handlers) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(ServerName, ServerVersion)
	h.Register(s)
	return s
}

// Register adds the tools to s.
func (h *Handlers) Register(s *mcpserver.MCPServer) {
	s.AddTool(mcp.Tool{
		Name:        ToolResolveIntent,
		Description: "Resolve a prediction-market chat message into an intent record {has_intent, command, args, confidence, reply}.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"message": map[string]any{
					"type":        "string",
					"description": "Chat message to interpret",
				},
			},
			Required: []string{"message"},
		},
	}, h.ResolveIntent)

	s.AddTool(mcp.Tool{
		Name:        ToolListKeywords,
		Description: "List the keyword trigger table in match order.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{},
		},
	}, h.ListKeywords)

	if h.hot != nil {
		s.AddTool(mcp.Tool{
			Name:        ToolHotEvents,
			Description: "Analyze today's hot topics and suggest prediction-market questions.",
			InputSchema: mcp.ToolInputSchema{
				Type:       "object",
				Properties: map[string]any{},
			},
		}, h.HotEvents)
	}
}
