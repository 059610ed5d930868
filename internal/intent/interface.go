package intent

import (
	"context"

	"mindbet-bot/internal/model"
)

// UseCase defines the intent-resolution pipeline.
type UseCase interface {
	// Resolve turns free text into an IntentRecord. The keyword matcher runs first; the LLM classifier is consulted only on a miss.
	Resolve(ctx context.Context, text string) model.IntentRecord

	// Dispatch applies the confidence gate and routes an actionable record to its registered handler.
	Dispatch(ctx context.Context, record model.IntentRecord, caller Caller) (Outcome, error)

	// Handle composes Resolve and Dispatch for a chat message.
	Handle(ctx context.Context, text string, caller Caller) (model.IntentRecord, Outcome, error)

	// Execute runs an explicit slash command without the confidence gate.
	Execute(ctx context.Context, command string, args []string, caller Caller) (Outcome, error)
}

// ChatResponder answers free text that resolved to neither a command nor a canned reply.
type ChatResponder interface {
	Chat(ctx context.Context, text string, name string) (string, error)
}

// Handler performs one bot command.
type Handler interface {
	Handle(ctx context.Context, inv Invocation) (Reply, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, inv Invocation) (Reply, error)

// Handle calls f(ctx, inv).
func (f HandlerFunc) Handle(ctx context.Context, inv Invocation) (Reply, error) {
	return f(ctx, inv)
}
