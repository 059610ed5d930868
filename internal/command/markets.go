package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mindbet-bot/internal/intent"
	"mindbet-bot/internal/model"
	"mindbet-bot/pkg/backend"
)

// Markets lists the first open markets with a detail button each.
func (h *Handlers) Markets(ctx context.Context, inv intent.Invocation) (intent.Reply, error) {
	open := model.MarketStatusOpen
	page, err := h.backend.ListMarkets(ctx, backend.ListMarketsOptions{Status: &open, Page: 1, PageSize: backend.DefaultPageSize})
	if err != nil {
		if errors.Is(err, backend.ErrUnsuccessful) {
			return plain(msgMarketsFailed), nil
		}
		return intent.Reply{}, fmt.Errorf("%s: %w", LogPrefixMarkets, err)
	}
	if len(page.List) == 0 {
		return plain(msgMarketsEmpty), nil
	}

	var b strings.Builder
	b.WriteString(msgMarketsHeader)
	rows := make([][]intent.Button, 0, marketsShown)
	for i, m := range page.List {
		if i == marketsShown {
			break
		}
		short := truncate(m.ContentHash, hashShort)
		fmt.Fprintf(&b, "🟢 **#%s** %s\n", short, truncate(orDefault(m.Title, "N/A"), 40))
		fmt.Fprintf(&b, "   💰 YES: %s | NO: %s %s\n", amount(m.TotalYesPool), amount(m.TotalNoPool), Currency)
		fmt.Fprintf(&b, "   ⏰ 截止: %s\n\n", h.deadline(m.Deadline, "01-02 15:04"))

		rows = append(rows, row(callbackButton(
			fmt.Sprintf("#%s %s...", short, truncate(m.Title, 25)),
			CallbackPrefixMarket+m.ContentHash,
		)))
	}
	b.WriteString(msgMarketsFooter)

	return markdown(b.String(), rows...), nil
}

// Market shows one market with pools, odds and bet buttons.
func (h *Handlers) Market(ctx context.Context, inv intent.Invocation) (intent.Reply, error) {
	hash := inv.Arg(0)
	if hash == "" {
		return plain(msgMarketUsage), nil
	}

	m, err := h.backend.GetMarket(ctx, hash)
	if err != nil {
		if errors.Is(err, backend.ErrUnsuccessful) {
			return plain(msgMarketNotFound), nil
		}
		return intent.Reply{}, fmt.Errorf("%s: %w", LogPrefixMarket, err)
	}

	yes, no := m.TotalYesPool.Tokens(), m.TotalNoPool.Tokens()
	yesOdds := 50.0
	if total := yes + no; total > 0 {
		yesOdds = yes / total * 100
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 **市场 #%s**\n\n", truncate(hash, hashShort))
	fmt.Fprintf(&b, "**%s**\n\n", orDefault(m.Title, "N/A"))
	fmt.Fprintf(&b, "📝 %s\n\n", truncate(orDefault(m.Description, "暂无描述"), descriptionRunes))
	fmt.Fprintf(&b, "**状态:** %s\n", statusLabel(m.Status))
	fmt.Fprintf(&b, "**分类:** %s\n", orDefault(m.Category, "General"))
	fmt.Fprintf(&b, "**截止时间:** %s", h.deadline(m.Deadline, "2006-01-02 15:04"))
	if m.Status == model.MarketStatusResolved {
		fmt.Fprintf(&b, "\n**结果:** %s", resultLabel(m.Result))
	}
	b.WriteString("\n\n💰 **奖池:**\n")
	fmt.Fprintf(&b, "• YES: %.4f %s (%.1f%%)\n", yes, Currency, yesOdds)
	fmt.Fprintf(&b, "• NO: %.4f %s (%.1f%%)\n\n", no, Currency, 100-yesOdds)
	fmt.Fprintf(&b, "📍 创建者: `%s...`", truncate(m.CreatorAddress, hashShort))

	return markdown(b.String(),
		row(
			callbackButton("🎯 下注 YES", CallbackPrefixBetYes+hash),
			callbackButton("🎯 下注 NO", CallbackPrefixBetNo+hash),
		),
		row(callbackButton("📊 查看所有市场", CallbackMarkets)),
	), nil
}

// Claimable lists resolved markets where the caller has winnings to claim.
func (h *Handlers) Claimable(ctx context.Context, inv intent.Invocation) (intent.Reply, error) {
	markets, err := h.backend.ListClaimable(ctx, inv.Caller.TelegramID)
	if err != nil {
		if errors.Is(err, backend.ErrUnsuccessful) {
			return plain(msgBindFirst), nil
		}
		return intent.Reply{}, fmt.Errorf("%s: %w", LogPrefixMarkets, err)
	}
	if len(markets) == 0 {
		return plain(msgClaimableEmpty), nil
	}

	var b strings.Builder
	b.WriteString(msgClaimableHeader)
	rows := make([][]intent.Button, 0, len(markets))
	for _, m := range markets {
		short := truncate(m.ContentHash, hashShort)
		fmt.Fprintf(&b, "🟢 #%s %s\n   [💰 领取奖金]\n\n", short, truncate(orDefault(m.Title, "N/A"), 30))
		rows = append(rows, row(callbackButton(fmt.Sprintf("💰 #%s 领取", short), CallbackPrefixClaim+m.ContentHash)))
	}
	return markdown(b.String(), rows...), nil
}

// Refundable lists cancelled markets where the caller can take a refund.
func (h *Handlers) Refundable(ctx context.Context, inv intent.Invocation) (intent.Reply, error) {
	markets, err := h.backend.ListRefundable(ctx, inv.Caller.TelegramID)
	if err != nil {
		if errors.Is(err, backend.ErrUnsuccessful) {
			return plain(msgBindFirst), nil
		}
		return intent.Reply{}, fmt.Errorf("%s: %w", LogPrefixMarkets, err)
	}
	if len(markets) == 0 {
		return plain(msgRefundableEmpty), nil
	}

	var b strings.Builder
	b.WriteString(msgRefundableHeader)
	rows := make([][]intent.Button, 0, len(markets))
	for _, m := range markets {
		short := truncate(m.ContentHash, hashShort)
		fmt.Fprintf(&b, "🔴 #%s %s\n   [💰 领取退款]\n\n", short, truncate(orDefault(m.Title, "N/A"), 30))
		rows = append(rows, row(callbackButton(fmt.Sprintf("💰 #%s 退款", short), CallbackPrefixRefund+m.ContentHash)))
	}
	return markdown(b.String(), rows...), nil
}

// Resolved lists recently settled markets with their results.
func (h *Handlers) Resolved(ctx context.Context, inv intent.Invocation) (intent.Reply, error) {
	page, err := h.backend.ListResolved(ctx, 1, backend.DefaultPageSize)
	if err != nil {
		if errors.Is(err, backend.ErrUnsuccessful) {
			return plain(msgResolvedFailed), nil
		}
		return intent.Reply{}, fmt.Errorf("%s: %w", LogPrefixMarkets, err)
	}
	if len(page.List) == 0 {
		return plain(msgResolvedEmpty), nil
	}

	var b strings.Builder
	b.WriteString(msgResolvedHeader)
	rows := make([][]intent.Button, 0, len(page.List))
	for _, m := range page.List {
		short := truncate(m.ContentHash, hashShort)
		fmt.Fprintf(&b, "🟢 #%s %s\n   结果: %s\n\n", short, truncate(orDefault(m.Title, "N/A"), 30), resultLabel(m.Result))
		rows = append(rows, row(callbackButton("#"+short, CallbackPrefixMarket+m.ContentHash)))
	}
	return markdown(b.String(), rows...), nil
}
