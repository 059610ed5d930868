package llmprovider

import (
	"context"

	"mindbet-bot/pkg/claude"
	"mindbet-bot/pkg/gemini"
	"mindbet-bot/pkg/openaicompat"
)

// OpenAICompatAdapter serves every OpenAI-compatible endpoint (OpenAI, Hunyuan, DeepSeek, Qwen).
type OpenAICompatAdapter struct {
	kind   string
	client openaicompat.IClient
}

func NewOpenAICompatAdapter(kind string, client openaicompat.IClient) *OpenAICompatAdapter {
	return &OpenAICompatAdapter{kind: kind, client: client}
}

func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := openaicompat.Request{
		System:      req.SystemInstruction,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	for _, m := range req.Messages {
		chatReq.Messages = append(chatReq.Messages, openaicompat.Message{Role: m.Role, Content: m.Content})
	}

	resp, err := a.client.Chat(ctx, chatReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      resp.Content,
		ProviderName: a.kind,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.PromptTokens,
			OutputTokens: resp.CompletionTokens,
			TotalTokens:  resp.TotalTokens,
		},
	}, nil
}

func (a *OpenAICompatAdapter) Name() string  { return a.kind }
func (a *OpenAICompatAdapter) Model() string { return a.client.Model() }

// GeminiAdapter wraps the Gemini client.
type GeminiAdapter struct {
	client gemini.IClient
}

func NewGeminiAdapter(client gemini.IClient) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	genReq := gemini.Request{
		System:      req.SystemInstruction,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	for _, m := range req.Messages {
		genReq.Turns = append(genReq.Turns, gemini.Turn{FromModel: m.Role == RoleAssistant, Text: m.Content})
	}

	resp, err := a.client.Generate(ctx, genReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      resp.Text,
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.PromptTokens,
			OutputTokens: resp.OutputTokens,
			TotalTokens:  resp.PromptTokens + resp.OutputTokens,
		},
	}, nil
}

func (a *GeminiAdapter) Name() string  { return "gemini" }
func (a *GeminiAdapter) Model() string { return a.client.Model() }

// ClaudeAdapter wraps the Anthropic Messages client.
type ClaudeAdapter struct {
	client claude.IClient
}

func NewClaudeAdapter(client claude.IClient) *ClaudeAdapter {
	return &ClaudeAdapter{client: client}
}

func (a *ClaudeAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgReq := claude.Request{
		System:      req.SystemInstruction,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	for _, m := range req.Messages {
		msgReq.Turns = append(msgReq.Turns, claude.Turn{FromAssistant: m.Role == RoleAssistant, Text: m.Content})
	}

	resp, err := a.client.Send(ctx, msgReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      resp.Text,
		ProviderName: "anthropic",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.InputTokens,
			OutputTokens: resp.OutputTokens,
			TotalTokens:  resp.InputTokens + resp.OutputTokens,
		},
	}, nil
}

func (a *ClaudeAdapter) Name() string  { return "anthropic" }
func (a *ClaudeAdapter) Model() string { return a.client.Model() }
