package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mindbet-bot/internal/advisor"
	"mindbet-bot/internal/intent"
	"mindbet-bot/pkg/backend"
)

// walletOf returns the caller's bound wallet, or "" when none is bound.
func (h *Handlers) walletOf(ctx context.Context, telegramID int64) (string, error) {
	b, err := h.backend.GetBinding(ctx, telegramID)
	if err != nil {
		if errors.Is(err, backend.ErrUnsuccessful) {
			return "", nil
		}
		return "", err
	}
	return b.WalletAddress, nil
}

// Login sends the Mini App wallet-binding link.
func (h *Handlers) Login(ctx context.Context, inv intent.Invocation) (intent.Reply, error) {
	return markdown(msgLogin, row(urlButton("🔗 点击绑定钱包", h.bindLink(inv.Caller)))), nil
}

// Logout asks the caller to confirm unbinding the current wallet.
func (h *Handlers) Logout(ctx context.Context, inv intent.Invocation) (intent.Reply, error) {
	wallet, err := h.walletOf(ctx, inv.Caller.TelegramID)
	if err != nil {
		return intent.Reply{}, fmt.Errorf("%s: %w", LogPrefixAccount, err)
	}
	if wallet == "" {
		return plain(msgNotBound), nil
	}

	return markdown(fmt.Sprintf(msgUnbindConfirm, shortAddress(wallet)),
		row(
			callbackButton("取消", CallbackCancelUnbind),
			callbackButton("确认解绑", CallbackConfirmUnbind),
		),
	), nil
}

// CancelUnbind answers the cancel_unbind button.
func (h *Handlers) CancelUnbind(ctx context.Context, caller intent.Caller) intent.Reply {
	return plain(msgUnbindCancel)
}

// ConfirmUnbind deletes the caller's binding. Backend refusals are rendered, transport errors returned.
func (h *Handlers) ConfirmUnbind(ctx context.Context, caller intent.Caller) (intent.Reply, error) {
	err := h.backend.Unbind(ctx, caller.TelegramID)
	if err == nil {
		h.l.Infof(ctx, "%s: telegram user %d unbound", LogPrefixCallback, caller.TelegramID)
		return plain(msgUnbindDone), nil
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return plain(fmt.Sprintf(msgUnbindFailed, orDefault(apiErr.Message, msgUnknownError))), nil
	}
	if errors.Is(err, backend.ErrUnsuccessful) {
		return plain(fmt.Sprintf(msgUnbindFailed, msgUnknownError)), nil
	}
	return intent.Reply{}, fmt.Errorf("%s: %w", LogPrefixCallback, err)
}

// Profile shows betting statistics for the bound wallet, or for an explicit 0x address argument.
func (h *Handlers) Profile(ctx context.Context, inv intent.Invocation) (intent.Reply, error) {
	wallet := inv.Arg(0)
	if !strings.HasPrefix(wallet, "0x") {
		var err error
		wallet, err = h.walletOf(ctx, inv.Caller.TelegramID)
		if err != nil {
			return intent.Reply{}, fmt.Errorf("%s: %w", LogPrefixAccount, err)
		}
		if wallet == "" {
			return plain(msgBindFirst), nil
		}
	}

	p, err := h.backend.GetProfile(ctx, wallet)
	if err != nil {
		if errors.Is(err, backend.ErrUnsuccessful) {
			return plain(msgProfileNotFound), nil
		}
		return intent.Reply{}, fmt.Errorf("%s: %w", LogPrefixAccount, err)
	}

	var winRate float64
	if p.TotalBets > 0 {
		winRate = float64(p.WinBets) / float64(p.TotalBets) * 100
	}
	pnl := p.TotalPnL.Tokens()
	pnlEmoji := "📈"
	if pnl < 0 {
		pnlEmoji = "📉"
	}

	var b strings.Builder
	b.WriteString("👤 **用户资料**\n\n")
	fmt.Fprintf(&b, "📍 钱包地址: `%s`\n\n", shortAddress(wallet))
	b.WriteString("📊 **统计数据:**\n")
	fmt.Fprintf(&b, "• 总下注次数: %d\n", p.TotalBets)
	fmt.Fprintf(&b, "• 获胜次数: %d\n", p.WinBets)
	fmt.Fprintf(&b, "• 胜率: %.1f%%\n", winRate)
	fmt.Fprintf(&b, "• 总交易量: %s %s\n\n", amount(p.TotalVolume), Currency)
	fmt.Fprintf(&b, "%s **盈亏:** %+.4f %s", pnlEmoji, pnl, Currency)
	if feedback := h.profileFeedback(ctx, wallet, p.TotalBets, p.WinBets, pnl); feedback != "" {
		b.WriteString(msgFeedbackPrefix)
		b.WriteString(feedback)
	}

	return markdown(b.String(),
		row(callbackButton("📊 查看下注历史", CallbackPrefixBets+wallet)),
		row(urlButton("🌐 查看完整资料", h.siteURL+"/profile/"+wallet)),
	), nil
}

// profileFeedback asks the advisor to comment on the record. Any failure yields "".
func (h *Handlers) profileFeedback(ctx context.Context, wallet string, total, wins uint64, pnl float64) string {
	if h.advisor == nil {
		return ""
	}

	stats := advisor.Stats{Address: wallet, TotalBets: total, WinBets: wins, TotalPnL: pnl}
	page, err := h.backend.ListUserBets(ctx, wallet, 1, feedbackRecent)
	if err != nil {
		h.l.Warnf(ctx, "%s: recent bets for %s: %v", LogPrefixProfile, wallet, err)
	} else {
		for _, tx := range page.List {
			if len(stats.RecentResults) == feedbackRecent {
				break
			}
			stats.RecentResults = append(stats.RecentResults,
				fmt.Sprintf("%s %s %s %s", txTypeLabel(tx.TxType), outcomeLabel(tx.Outcome), amount(tx.Amount), Currency))
		}
	}

	feedback, err := h.advisor.Feedback(ctx, stats)
	if err != nil {
		h.l.Warnf(ctx, "%s: feedback for %s: %v", LogPrefixProfile, wallet, err)
		return ""
	}
	return feedback
}

// Balance shows the native balance of the bound wallet.
func (h *Handlers) Balance(ctx context.Context, inv intent.Invocation) (intent.Reply, error) {
	bal, err := h.backend.GetBalance(ctx, inv.Caller.TelegramID)
	if err != nil {
		if errors.Is(err, backend.ErrUnsuccessful) {
			return plain(msgBindFirst), nil
		}
		return intent.Reply{}, fmt.Errorf("%s: %w", LogPrefixAccount, err)
	}

	var b strings.Builder
	b.WriteString("💰 **钱包余额**\n\n")
	fmt.Fprintf(&b, "📍 钱包地址: `%s`\n\n", shortAddress(bal.WalletAddress))
	fmt.Fprintf(&b, "💎 **%s 余额:**\n", Currency)
	fmt.Fprintf(&b, "• 可用余额: %s %s\n\n", orDefault(bal.Balance, "0"), Currency)
	b.WriteString("📊 **最近交易:**\n")
	b.WriteString("• 查看完整交易记录请使用 /mybets")

	return markdown(b.String(),
		row(callbackButton("📊 查看我的下注", CallbackMyBets)),
		row(callbackButton("🔄 刷新", CallbackRefreshBalance)),
	), nil
}

// MyBets lists the latest transactions of the bound wallet.
func (h *Handlers) MyBets(ctx context.Context, inv intent.Invocation) (intent.Reply, error) {
	wallet, err := h.walletOf(ctx, inv.Caller.TelegramID)
	if err != nil {
		return intent.Reply{}, fmt.Errorf("%s: %w", LogPrefixAccount, err)
	}
	if wallet == "" {
		return plain(msgBindFirst), nil
	}

	page, err := h.backend.ListUserBets(ctx, wallet, 1, historyShown)
	if err != nil {
		if errors.Is(err, backend.ErrUnsuccessful) {
			return plain(msgBetsFailed), nil
		}
		return intent.Reply{}, fmt.Errorf("%s: %w", LogPrefixAccount, err)
	}
	if len(page.List) == 0 {
		return plain(msgBetsEmpty), nil
	}

	var b strings.Builder
	b.WriteString(msgMyBetsHeader)
	for i, tx := range page.List {
		if i == historyShown {
			break
		}
		fmt.Fprintf(&b, "📌 %s: %s %s %s\n", txTypeLabel(tx.TxType), outcomeLabel(tx.Outcome), amount(tx.Amount), Currency)
	}

	return markdown(b.String(), row(callbackButton("📊 查看所有市场", CallbackMarkets))), nil
}

// BetHistory answers the bets_<address> button with the wallet's latest transactions.
func (h *Handlers) BetHistory(ctx context.Context, address string) (intent.Reply, error) {
	page, err := h.backend.ListUserBets(ctx, address, 1, historyShown)
	if err != nil {
		if errors.Is(err, backend.ErrUnsuccessful) {
			return plain(msgBetsFailed), nil
		}
		return intent.Reply{}, fmt.Errorf("%s: %w", LogPrefixCallback, err)
	}

	var b strings.Builder
	b.WriteString(msgBetHistoryHeader)
	for i, tx := range page.List {
		if i == historyShown {
			break
		}
		fmt.Fprintf(&b, "• %s: %s %s %s\n", txTypeLabel(tx.TxType), outcomeLabel(tx.Outcome), amount(tx.Amount), Currency)
	}
	return markdown(b.String()), nil
}
