package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"mindbet-bot/internal/hotspot"
	"mindbet-bot/pkg/llmprovider"
	pkgLog "mindbet-bot/pkg/log"
)

// Generator is the chat-completion capability used for the analysis.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      Generator
	location *time.Location
	cache    *expirable.LRU[string, hotspot.Report]
	now      func() time.Time
}

var _ hotspot.UseCase = (*implUseCase)(nil)

// New creates a new hotspot UseCase. Reports are cached per calendar day in loc for ttl.
// llm may be nil; Analyze then fails with hotspot.ErrNoGenerator.
func New(l pkgLog.Logger, llm Generator, loc *time.Location, ttl time.Duration) *implUseCase {
	if loc == nil {
		loc = time.UTC
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implUseCase{
		l:        l,
		llm:      llm,
		location: loc,
		cache:    expirable.NewLRU[string, hotspot.Report](cacheCapacity, nil, ttl),
		now:      time.Now,
	}
}
