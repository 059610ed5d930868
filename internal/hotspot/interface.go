package hotspot

import "context"

// UseCase produces the daily hot-topic analysis.
type UseCase interface {
	// Analyze asks the LLM for today's hot topics and prediction-market questions.
	Analyze(ctx context.Context) (Report, error)
}
