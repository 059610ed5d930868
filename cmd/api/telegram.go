package main

import (
	"context"
	"fmt"

	"mindbet-bot/config"
	"mindbet-bot/internal/intent"
	tgDelivery "mindbet-bot/internal/intent/delivery/telegram"
	"mindbet-bot/pkg/log"
	"mindbet-bot/pkg/telegram"
)

const webhookPath = "/webhook/telegram"

// telegramRuntime is what the chat transport contributes to the process.
type telegramRuntime struct {
	// webhook is set when the HTTP server should expose the webhook route.
	webhook tgDelivery.Handler
	// poller is set when updates are pulled with getUpdates.
	poller *tgDelivery.Poller
}

// startTelegram identifies the bot and chooses how updates arrive.
// In "both" mode the webhook is preferred and polling is the fallback when no public URL is usable.
func startTelegram(ctx context.Context, logger log.Logger, cfg config.TelegramConfig, uc intent.UseCase, callbacks tgDelivery.Callbacks) (telegramRuntime, error) {
	var rt telegramRuntime
	if cfg.BotToken == "" {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
		return rt, nil
	}

	bot := telegram.NewBot(cfg.BotToken)
	me, err := bot.GetMe(ctx)
	if err != nil {
		return rt, fmt.Errorf("telegram getMe: %w", err)
	}
	logger.Infof(ctx, "Telegram bot @%s (id %d)", me.Username, me.ID)

	handler := tgDelivery.New(logger, uc, callbacks, bot, tgDelivery.Config{
		BotID:           me.ID,
		BotUsername:     me.Username,
		SecretToken:     cfg.SecretToken,
		AllowedIPs:      cfg.AllowedIPs,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})

	webhookActive := false
	if cfg.UsesWebhook() {
		webhookActive = registerWebhook(ctx, logger, bot, cfg)
		rt.webhook = handler
	}

	if cfg.Mode == config.TelegramModePolling || (cfg.Mode == config.TelegramModeBoth && !webhookActive) {
		// getUpdates is rejected while a webhook is set.
		if err := bot.DeleteWebhook(ctx); err != nil {
			logger.Warnf(ctx, "Failed to delete Telegram webhook before polling: %v", err)
		}
		rt.poller = tgDelivery.NewPoller(logger, bot, handler, tgDelivery.PollerConfig{
			Timeout:        cfg.PollTimeout,
			MaxConcurrency: int64(cfg.MaxConcurrency),
		})
		logger.Info(ctx, "Telegram updates via long polling")
	}

	return rt, nil
}

// registerWebhook sets the webhook from config or a detected ngrok tunnel and reports success.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) bool {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPIURL != "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPIURL)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		} else {
			webhookURL = ngrokURL + webhookPath
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}

	if webhookURL == "" {
		logger.Warn(ctx, "Telegram webhook URL unknown: set telegram.webhook_url")
		return false
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.SecretToken); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return false
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
	return true
}
