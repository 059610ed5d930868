package mcp

const (
	ServerName    = "mindbet-intent"
	ServerVersion = "1.0.0"

	ToolResolveIntent = "resolve_intent"
	ToolListKeywords  = "list_keywords"
	ToolHotEvents     = "hot_events"
)
