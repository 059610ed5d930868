package usecase

import (
	"mindbet-bot/internal/intent"
	"mindbet-bot/internal/keyword"
	"mindbet-bot/internal/router"
	pkgLog "mindbet-bot/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	matcher    keyword.Matcher
	classifier router.Classifier
	chat       intent.ChatResponder
	registry   *intent.CommandRegistry
	threshold  float64
}

var _ intent.UseCase = (*implUseCase)(nil)

// New creates a new intent UseCase instance.
// classifier may be nil, in which case resolution is keyword-only.
// chat may be nil, in which case Handle never asks the LLM for a free-form answer.
func New(
	l pkgLog.Logger,
	matcher keyword.Matcher,
	classifier router.Classifier,
	chat intent.ChatResponder,
	registry *intent.CommandRegistry,
	cfg Config,
) *implUseCase {
	threshold := cfg.ConfidenceThreshold
	if threshold == 0 {
		threshold = DefaultConfidenceThreshold
	}
	return &implUseCase{
		l:          l,
		matcher:    matcher,
		classifier: classifier,
		chat:       chat,
		registry:   registry,
		threshold:  threshold,
	}
}
