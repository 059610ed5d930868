package advisor

import "context"

// UseCase answers free-form prediction questions and comments on a user's record.
type UseCase interface {
	// Chat answers a message that carried no command with a short analysis and a YES/NO estimate.
	Chat(ctx context.Context, text string, name string) (string, error)

	// Feedback writes an encouraging comment on a wallet's betting statistics.
	Feedback(ctx context.Context, stats Stats) (string, error)
}
