package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrNoCandidates is returned when the API answers without any candidate
var ErrNoCandidates = errors.New("gemini: response has no candidates")

// newGeminiImpl creates a new genai-backed implementation
func newGeminiImpl(ctx context.Context, cfg Config) (*geminiImpl, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}

	return &geminiImpl{model: cfg.Model, client: client}, nil
}

// Generate sends a generation request through the genai models service
func (g *geminiImpl) Generate(ctx context.Context, req Request) (*Response, error) {
	contents := make([]*genai.Content, 0, len(req.Turns))
	for _, turn := range req.Turns {
		var role genai.Role = genai.RoleUser
		if turn.FromModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(req.Temperature)),
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content failed: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return nil, ErrNoCandidates
	}

	out := &Response{Text: resp.Text()}
	if resp.UsageMetadata != nil {
		out.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		out.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}
	return out, nil
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}
