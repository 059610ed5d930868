package claude

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// ErrEmptyResponse is returned when the reply holds no text block
var ErrEmptyResponse = errors.New("claude: response has no text content")

var _ MessagesAPI = (*anthropic.MessageService)(nil)

// newClaudeImpl creates a new SDK-backed implementation
func newClaudeImpl(cfg Config) *claudeImpl {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(cfg.Timeout),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	client := anthropic.NewClient(opts...)
	return &claudeImpl{model: cfg.Model, messages: &client.Messages}
}

// Send sends a messages request and joins the text blocks of the reply
func (c *claudeImpl) Send(ctx context.Context, req Request) (*Response, error) {
	maxTokens := int64(DefaultMaxTokens)
	if req.MaxTokens > 0 {
		maxTokens = int64(req.MaxTokens)
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(req.Temperature),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	for _, turn := range req.Turns {
		block := anthropic.NewTextBlock(turn.Text)
		if turn.FromAssistant {
			params.Messages = append(params.Messages, anthropic.NewAssistantMessage(block))
		} else {
			params.Messages = append(params.Messages, anthropic.NewUserMessage(block))
		}
	}

	message, err := c.messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("claude: messages request failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return nil, ErrEmptyResponse
	}

	return &Response{
		Text:         sb.String(),
		InputTokens:  int(message.Usage.InputTokens),
		OutputTokens: int(message.Usage.OutputTokens),
	}, nil
}

// Model returns the model being used
func (c *claudeImpl) Model() string {
	return c.model
}
