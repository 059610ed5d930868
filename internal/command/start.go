package command

import (
	"context"

	"mindbet-bot/internal/intent"
)

// Start answers /start and /help with the welcome text and the command list.
func (h *Handlers) Start(ctx context.Context, inv intent.Invocation) (intent.Reply, error) {
	return markdown(msgWelcome,
		row(callbackButton("📊 查看市场", CallbackMarkets)),
		row(callbackButton("🔥 今日热点", CallbackHot)),
	), nil
}
