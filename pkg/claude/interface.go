package claude

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// IClient defines the interface for the Claude messages client.
// Implementations are safe for concurrent use.
type IClient interface {
	// Send sends a messages request
	Send(ctx context.Context, req Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// MessagesAPI is the subset of the Anthropic SDK used by the client
type MessagesAPI interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// New creates a new Claude client with the given configuration
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClaudeImpl(cfg), nil
}

// NewWithMessages creates a client around an existing messages service
func NewWithMessages(model string, messages MessagesAPI) IClient {
	if model == "" {
		model = DefaultModel
	}
	return &claudeImpl{model: model, messages: messages}
}
