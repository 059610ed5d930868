package gemini

import "context"

// IClient defines the interface for the Gemini generation client.
// Implementations are safe for concurrent use.
type IClient interface {
	// Generate sends a generation request
	Generate(ctx context.Context, req Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Gemini client with the given configuration
func New(ctx context.Context, cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(ctx, cfg)
}
