package router

import (
	"context"
	"time"

	"mindbet-bot/pkg/llmprovider"
)

// Generator is the chat-completion capability used by the classifier.
// *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config tunes the classifier call.
type Config struct {
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// recordSchema decodes model output field by field; nil means absent or null.
type recordSchema struct {
	HasIntent  *bool     `json:"has_intent"`
	Command    *string   `json:"command"`
	Args       *[]string `json:"args"`
	Confidence *float64  `json:"confidence"`
	Reply      *string   `json:"reply"`
}
