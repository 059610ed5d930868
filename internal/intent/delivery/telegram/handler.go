package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mindbet-bot/internal/intent"
	pkgLog "mindbet-bot/pkg/log"
	pkgResponse "mindbet-bot/pkg/response"
	pkgTelegram "mindbet-bot/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the update in a background goroutine,
// since a classifier call plus backend lookups can outlast Telegram's webhook deadline.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.ValidateSecretToken(c.GetHeader(pkgTelegram.SecretTokenHeader)); err != nil {
		h.l.Warnf(ctx, "%s: %v", LogPrefixWebhook, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid secret token"})
		return
	}
	if err := h.security.ValidateIPAddress(c.ClientIP()); err != nil {
		h.l.Warnf(ctx, "%s: %v", LogPrefixWebhook, err)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "%s: failed to parse update: %v", LogPrefixWebhook, err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Polls, channel posts, edits and the like
	if update.Message == nil && update.CallbackQuery == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	go func() {
		// Detach from the request context, which is cancelled once we answer
		bgCtx := pkgLog.WithRequestID(context.Background(), uuid.NewString())
		bgCtx, cancel := context.WithTimeout(bgCtx, h.processTimeout)
		defer cancel()

		if err := h.ProcessUpdate(bgCtx, update); err != nil {
			h.l.Errorf(bgCtx, "%s: background ProcessUpdate failed: %v", LogPrefixWebhook, err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// ProcessUpdate handles one update synchronously. It is shared by the webhook and the poller.
func (h *handler) ProcessUpdate(ctx context.Context, update pkgTelegram.Update) error {
	switch {
	case update.CallbackQuery != nil:
		return h.processCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		return h.processMessage(ctx, update.Message)
	default:
		return nil
	}
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" || msg.Chat == nil || msg.From == nil || msg.From.IsBot {
		return nil
	}
	caller := callerFrom(msg.From, msg.Chat)

	// Slash commands skip the classifier and the confidence gate
	if strings.HasPrefix(text, "/") {
		command, args, ok := h.parseCommand(text)
		if !ok {
			return nil
		}
		if err := h.security.CheckRateLimit(chatKey(msg.Chat.ID)); err != nil {
			h.l.Warnf(ctx, "%s: %v", LogPrefixMessage, err)
			return h.bot.SendMessage(ctx, msg.Chat.ID, msgRateLimited)
		}

		h.l.Infof(ctx, "%s: command /%s from %d in %s chat", LogPrefixMessage, command, caller.TelegramID, msg.Chat.Type)
		outcome, err := h.uc.Execute(ctx, command, args, caller)
		if err != nil {
			return h.sendError(ctx, msg.Chat.ID, err)
		}
		return h.sendReply(ctx, msg.Chat.ID, outcome.Reply)
	}

	if msg.Chat.IsGroup() && !h.addressedToBot(msg) {
		return nil
	}
	text = h.stripMention(text)
	if text == "" {
		return nil
	}

	if err := h.security.CheckRateLimit(chatKey(msg.Chat.ID)); err != nil {
		h.l.Warnf(ctx, "%s: %v", LogPrefixMessage, err)
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgRateLimited)
	}

	record, outcome, err := h.uc.Handle(ctx, text, caller)
	h.l.Infof(ctx, "%s: intent has_intent=%t command=%q confidence=%.2f outcome=%s",
		LogPrefixMessage, record.HasIntent, record.CommandName(), record.Confidence, outcome.Kind)
	if err != nil {
		return h.sendError(ctx, msg.Chat.ID, err)
	}
	return h.sendReply(ctx, msg.Chat.ID, outcome.Reply)
}

// parseCommand splits "/cmd[@bot] args..." and rejects commands addressed to another bot.
func (h *handler) parseCommand(text string) (string, []string, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", nil, false
	}

	head := strings.TrimPrefix(fields[0], "/")
	if i := strings.IndexByte(head, '@'); i >= 0 {
		target := head[i+1:]
		head = head[:i]
		if h.botUsername != "" && !strings.EqualFold(target, h.botUsername) {
			return "", nil, false
		}
	}

	command := strings.ToLower(head)
	if command == "" {
		return "", nil, false
	}
	return command, fields[1:], true
}

// addressedToBot reports whether a group message mentions the bot or replies to it.
func (h *handler) addressedToBot(msg *pkgTelegram.Message) bool {
	if h.mention != nil && h.mention.MatchString(msg.Text) {
		return true
	}

	reply := msg.ReplyToMessage
	if reply == nil || reply.From == nil {
		return false
	}
	if h.botID != 0 && reply.From.ID == h.botID {
		return true
	}
	return h.botUsername != "" && strings.EqualFold(reply.From.Username, h.botUsername)
}

func (h *handler) stripMention(text string) string {
	if h.mention == nil {
		return text
	}
	return strings.TrimSpace(h.mention.ReplaceAllString(text, ""))
}

func (h *handler) sendReply(ctx context.Context, chatID int64, reply intent.Reply) error {
	if reply.Text == "" {
		return nil
	}
	return h.bot.Send(ctx, pkgTelegram.SendMessageRequest{
		ChatID:      chatID,
		Text:        reply.Text,
		ParseMode:   reply.ParseMode,
		ReplyMarkup: toKeyboard(reply.Buttons),
	})
}

func (h *handler) sendError(ctx context.Context, chatID int64, err error) error {
	h.l.Errorf(ctx, "%s: handler failed: %v", LogPrefixMessage, err)
	return h.bot.SendMessage(ctx, chatID, fmt.Sprintf(msgHandlerError, err))
}
