package usecase

import (
	"context"

	"mindbet-bot/internal/advisor"
	"mindbet-bot/pkg/llmprovider"
	pkgLog "mindbet-bot/pkg/log"
)

// Generator is the chat-completion capability behind the advisor.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l   pkgLog.Logger
	llm Generator
}

var _ advisor.UseCase = (*implUseCase)(nil)

// New creates a new advisor UseCase. llm may be nil; every call then fails with advisor.ErrNoGenerator.
func New(l pkgLog.Logger, llm Generator) *implUseCase {
	return &implUseCase{l: l, llm: llm}
}
