package openaicompat

import (
	"fmt"
	"net/http"
	"time"

	goopenai "github.com/sashabaranov/go-openai"
)

// Config holds client configuration
type Config struct {
	Kind       string
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate validates the configuration and fills in per-kind defaults
func (c *Config) Validate() error {
	if c.Kind == "" {
		c.Kind = KindOpenAI
	}
	base, known := defaultBaseURLs[c.Kind]
	if !known {
		return fmt.Errorf("openaicompat: unknown kind %q", c.Kind)
	}
	if c.APIKey == "" {
		return fmt.Errorf("openaicompat: APIKey is required")
	}
	if c.Model == "" {
		c.Model = defaultModels[c.Kind]
	}
	if c.BaseURL == "" {
		c.BaseURL = base
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// clientImpl is the internal implementation of IClient
type clientImpl struct {
	kind   string
	model  string
	client *goopenai.Client
}

// Request represents a chat completion request
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message represents one chat turn
type Message struct {
	Role    string
	Content string
}

// Response represents a chat completion response
type Response struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
