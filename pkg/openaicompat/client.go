package openaicompat

import (
	"context"
	"errors"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"
)

// ErrNoChoices is returned when the endpoint answers without any choice
var ErrNoChoices = errors.New("openaicompat: response has no choices")

// newClientImpl creates a new implementation
func newClientImpl(cfg Config) *clientImpl {
	oc := goopenai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = cfg.BaseURL
	oc.HTTPClient = cfg.HTTPClient

	return &clientImpl{
		kind:   cfg.Kind,
		model:  cfg.Model,
		client: goopenai.NewClientWithConfig(oc),
	}
}

// Chat sends a chat completion request
func (c *clientImpl) Chat(ctx context.Context, req Request) (*Response, error) {
	resp, err := c.client.CreateChatCompletion(ctx, c.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("%s: chat completion failed: %w", c.kind, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s: %w", c.kind, ErrNoChoices)
	}

	return &Response{
		Content:          resp.Choices[0].Message.Content,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}, nil
}

// Model returns the model being used
func (c *clientImpl) Model() string {
	return c.model
}

// transformRequest converts a request to the go-openai shape
func (c *clientImpl) transformRequest(req Request) goopenai.ChatCompletionRequest {
	messages := make([]goopenai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, goopenai.ChatCompletionMessage{
			Role:    goopenai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, m := range req.Messages {
		role := goopenai.ChatMessageRoleUser
		if m.Role == goopenai.ChatMessageRoleAssistant {
			role = goopenai.ChatMessageRoleAssistant
		}
		messages = append(messages, goopenai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	return goopenai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	}
}
