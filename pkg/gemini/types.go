package gemini

import (
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"
)

// Config holds Gemini client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("gemini: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// geminiImpl is the internal implementation of IClient
type geminiImpl struct {
	model  string
	client *genai.Client
}

// Request represents a generation request
type Request struct {
	System      string
	Turns       []Turn
	Temperature float64
	MaxTokens   int
}

// Turn is one conversation message
type Turn struct {
	FromModel bool
	Text      string
}

// Response represents a generation response
type Response struct {
	Text         string
	PromptTokens int
	OutputTokens int
}
