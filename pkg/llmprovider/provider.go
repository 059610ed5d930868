package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a chat completion request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "hunyuan", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Request represents a normalized chat completion request
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Message represents a conversation turn
type Message struct {
	Role    string
	Content string
}

// Response represents a normalized chat completion response
type Response struct {
	Content      string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// UserPrompt builds a single-turn request.
func UserPrompt(system, text string, temperature float64, maxTokens int) *Request {
	return &Request{
		SystemInstruction: system,
		Messages:          []Message{{Role: RoleUser, Content: text}},
		Temperature:       temperature,
		MaxTokens:         maxTokens,
	}
}
