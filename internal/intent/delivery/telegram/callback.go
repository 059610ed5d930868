package telegram

import (
	"context"
	"strings"

	"mindbet-bot/internal/command"
	"mindbet-bot/internal/intent"
	"mindbet-bot/internal/model"
	pkgTelegram "mindbet-bot/pkg/telegram"
)

// processCallback answers an inline button press and runs the action it names.
func (h *handler) processCallback(ctx context.Context, q *pkgTelegram.CallbackQuery) error {
	if q.Message == nil || q.Message.Chat == nil || q.From == nil {
		return h.bot.AnswerCallbackQuery(ctx, q.ID, "")
	}
	chatID := q.Message.Chat.ID

	if err := h.security.CheckRateLimit(chatKey(chatID)); err != nil {
		h.l.Warnf(ctx, "%s: %v", LogPrefixCallback, err)
		return h.bot.AnswerCallbackQuery(ctx, q.ID, msgRateLimited)
	}
	if err := h.bot.AnswerCallbackQuery(ctx, q.ID, ""); err != nil {
		h.l.Warnf(ctx, "%s: failed to answer callback %s: %v", LogPrefixCallback, q.ID, err)
	}

	caller := callerFrom(q.From, q.Message.Chat)
	reply, edit, err := h.routeCallback(ctx, q.Data, caller)
	if err != nil {
		return h.sendError(ctx, chatID, err)
	}
	if reply.Text == "" {
		return nil
	}
	if !edit {
		return h.sendReply(ctx, chatID, reply)
	}

	return h.bot.EditMessageText(ctx, pkgTelegram.EditMessageTextRequest{
		ChatID:      chatID,
		MessageID:   q.Message.MessageID,
		Text:        reply.Text,
		ParseMode:   reply.ParseMode,
		ReplyMarkup: toKeyboard(reply.Buttons),
	})
}

// routeCallback maps callback data to a reply; edit reports whether it replaces the pressed message.
func (h *handler) routeCallback(ctx context.Context, data string, caller intent.Caller) (reply intent.Reply, edit bool, err error) {
	switch {
	case data == command.CallbackMarkets:
		return h.execute(ctx, model.CommandMarkets, nil, caller, false)
	case data == command.CallbackHot:
		return h.execute(ctx, model.CommandHot, nil, caller, true)
	case data == command.CallbackMyBets:
		return h.execute(ctx, model.CommandMyBets, nil, caller, false)
	case data == command.CallbackRefreshBalance:
		return h.execute(ctx, model.CommandBalance, nil, caller, false)
	case data == command.CallbackCancelUnbind:
		return h.callbacks.CancelUnbind(ctx, caller), true, nil
	case data == command.CallbackConfirmUnbind:
		reply, err = h.callbacks.ConfirmUnbind(ctx, caller)
		return reply, true, err
	case strings.HasPrefix(data, command.CallbackPrefixMarket):
		hash := strings.TrimPrefix(data, command.CallbackPrefixMarket)
		return h.execute(ctx, model.CommandMarket, []string{hash}, caller, true)
	case strings.HasPrefix(data, command.CallbackPrefixBets):
		reply, err = h.callbacks.BetHistory(ctx, strings.TrimPrefix(data, command.CallbackPrefixBets))
		return reply, true, err
	case strings.HasPrefix(data, command.CallbackPrefixBetYes):
		hash := strings.TrimPrefix(data, command.CallbackPrefixBetYes)
		return h.execute(ctx, model.CommandBet, []string{hash, "yes", command.QuickBetAmount}, caller, false)
	case strings.HasPrefix(data, command.CallbackPrefixBetNo):
		hash := strings.TrimPrefix(data, command.CallbackPrefixBetNo)
		return h.execute(ctx, model.CommandBet, []string{hash, "no", command.QuickBetAmount}, caller, false)
	case strings.HasPrefix(data, command.CallbackPrefixClaim):
		hash := strings.TrimPrefix(data, command.CallbackPrefixClaim)
		return h.execute(ctx, model.CommandClaim, []string{hash}, caller, false)
	case strings.HasPrefix(data, command.CallbackPrefixRefund):
		hash := strings.TrimPrefix(data, command.CallbackPrefixRefund)
		return h.execute(ctx, model.CommandRefund, []string{hash}, caller, false)
	default:
		h.l.Warnf(ctx, "%s: unknown callback data %q", LogPrefixCallback, data)
		return intent.Reply{}, false, nil
	}
}

func (h *handler) execute(ctx context.Context, cmd string, args []string, caller intent.Caller, edit bool) (intent.Reply, bool, error) {
	outcome, err := h.uc.Execute(ctx, cmd, args, caller)
	if err != nil {
		return intent.Reply{}, false, err
	}
	return outcome.Reply, edit, nil
}
