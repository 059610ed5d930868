package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

type keywordEntry struct {
	Command string   `json:"command"`
	Phrases []string `json:"phrases"`
}

// ResolveIntent handles resolve_intent.
func (h *Handlers) ResolveIntent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil || strings.TrimSpace(message) == "" {
		return mcp.NewToolResultError("message argument is required and must be a non-empty string"), nil
	}

	record := h.uc.Resolve(ctx, message)
	h.l.Debug(ctx, "internal.intent.delivery.mcp.ResolveIntent", "command", record.CommandName(), "confidence", record.Confidence)

	return jsonResult(record)
}

// ListKeywords handles list_keywords.
func (h *Handlers) ListKeywords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries := h.table.Entries()
	out := make([]keywordEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, keywordEntry{Command: e.Command, Phrases: e.Phrases})
	}
	return jsonResult(out)
}

// HotEvents handles hot_events.
func (h *Handlers) HotEvents(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, err := h.hot.Analyze(ctx)
	if err != nil {
		h.l.Errorf(ctx, "internal.intent.delivery.mcp.HotEvents: %v", err)
		return mcp.NewToolResultError(fmt.Sprintf("hot events analysis failed: %v", err)), nil
	}
	return jsonResult(report)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
