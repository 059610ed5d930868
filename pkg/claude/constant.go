package claude

import "time"

const (
	// DefaultModel is the default Claude model
	DefaultModel = "claude-3-5-haiku-latest"

	// DefaultMaxTokens is used when a request does not set a limit
	DefaultMaxTokens = 1024

	// DefaultTimeout bounds a single request
	DefaultTimeout = 30 * time.Second
)
