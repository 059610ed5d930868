package telegram

import (
	"context"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"

	"mindbet-bot/internal/intent"
	pkgLog "mindbet-bot/pkg/log"
	pkgTelegram "mindbet-bot/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
	ProcessUpdate(ctx context.Context, update pkgTelegram.Update) error
}

// Callbacks are the button actions that are not plain commands.
type Callbacks interface {
	BetHistory(ctx context.Context, address string) (intent.Reply, error)
	CancelUnbind(ctx context.Context, caller intent.Caller) intent.Reply
	ConfirmUnbind(ctx context.Context, caller intent.Caller) (intent.Reply, error)
}

type handler struct {
	l              pkgLog.Logger
	uc             intent.UseCase
	callbacks      Callbacks
	bot            *pkgTelegram.Bot
	security       *SecurityValidator
	botID          int64
	botUsername    string
	mention        *regexp.Regexp
	processTimeout time.Duration
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc intent.UseCase, callbacks Callbacks, bot *pkgTelegram.Bot, cfg Config) Handler {
	if cfg.ProcessTimeout <= 0 {
		cfg.ProcessTimeout = DefaultProcessTimeout
	}

	h := &handler{
		l:              l,
		uc:             uc,
		callbacks:      callbacks,
		bot:            bot,
		security:       NewSecurityValidator(cfg.SecretToken, cfg.AllowedIPs, cfg.RateLimitPerMin),
		botID:          cfg.BotID,
		botUsername:    cfg.BotUsername,
		processTimeout: cfg.ProcessTimeout,
	}
	if cfg.BotUsername != "" {
		h.mention = regexp.MustCompile(`(?i)@` + regexp.QuoteMeta(cfg.BotUsername) + `\b`)
	}
	return h
}
