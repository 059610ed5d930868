package claude

import (
	"fmt"
	"time"
)

// Config holds Claude client configuration
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("claude: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// claudeImpl is the internal implementation of IClient
type claudeImpl struct {
	model    string
	messages MessagesAPI
}

// Request represents a messages request
type Request struct {
	System      string
	Turns       []Turn
	Temperature float64
	MaxTokens   int
}

// Turn is one conversation message
type Turn struct {
	FromAssistant bool
	Text          string
}

// Response represents a messages response
type Response struct {
	Text         string
	InputTokens  int
	OutputTokens int
}
