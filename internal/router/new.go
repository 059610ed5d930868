package router

import (
	"context"

	"mindbet-bot/internal/model"
	"mindbet-bot/pkg/log"
)

// Classifier is the interface for LLM intent classification
type Classifier interface {
	Classify(ctx context.Context, text string) (model.IntentRecord, error)
}

// IntentClassifier classifies free text into an IntentRecord using an LLM
type IntentClassifier struct {
	llm Generator
	l   log.Logger
	cfg Config
}

// Ensure IntentClassifier implements Classifier interface
var _ Classifier = (*IntentClassifier)(nil)

// New creates a new IntentClassifier. Zero config values take the defaults.
func New(llm Generator, l log.Logger, cfg Config) *IntentClassifier {
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &IntentClassifier{
		llm: llm,
		l:   l,
		cfg: cfg,
	}
}
