package command

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"mindbet-bot/internal/intent"
	"mindbet-bot/internal/model"
	"mindbet-bot/pkg/backend"
)

// tradeTarget resolves the caller's wallet and the market for a sign-link command.
// A non-empty reply means the flow stops there.
func (h *Handlers) tradeTarget(ctx context.Context, inv intent.Invocation, hash string) (string, *model.Market, string, error) {
	wallet, err := h.walletOf(ctx, inv.Caller.TelegramID)
	if err != nil {
		return "", nil, "", fmt.Errorf("%s: %w", LogPrefixTrade, err)
	}
	if wallet == "" {
		return "", nil, msgBindFirst, nil
	}

	m, err := h.backend.GetMarket(ctx, hash)
	if err != nil {
		if errors.Is(err, backend.ErrUnsuccessful) {
			return "", nil, msgMarketNotFound, nil
		}
		return "", nil, "", fmt.Errorf("%s: %w", LogPrefixTrade, err)
	}
	return wallet, m, "", nil
}

// Bet validates a stake and sends the Mini App signing link.
func (h *Handlers) Bet(ctx context.Context, inv intent.Invocation) (intent.Reply, error) {
	if len(inv.Args) < 3 {
		return plain(msgBetUsage), nil
	}

	hash := inv.Arg(0)
	direction := strings.ToLower(inv.Arg(1))
	if direction != "yes" && direction != "no" {
		return plain(msgBetDirection), nil
	}
	stake := inv.Arg(2)
	value, err := strconv.ParseFloat(stake, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return plain(msgBetAmount), nil
	}

	wallet, m, stop, err := h.tradeTarget(ctx, inv, hash)
	if err != nil || stop != "" {
		return plain(stop), err
	}

	var b strings.Builder
	b.WriteString("📋 **下注确认**\n\n")
	fmt.Fprintf(&b, "市场: #%s... %s\n", truncate(hash, hashShort), truncate(orDefault(m.Title, "N/A"), 30))
	fmt.Fprintf(&b, "方向: %s\n", strings.ToUpper(direction))
	fmt.Fprintf(&b, "金额: %s %s\n\n", stake, Currency)
	fmt.Fprintf(&b, "预计 Gas 费: ~%.3f %s\n", estimatedGas, Currency)
	fmt.Fprintf(&b, "总计: %.6f %s", value+estimatedGas, Currency)

	signURL := h.signLink("bet",
		"market_id", hash,
		"bet_type", direction,
		"amount", stake,
		"wallet", wallet,
	)
	return markdown(b.String(), row(urlButton("🔐 点击确认下注", signURL))), nil
}

// Claim sends the signing link for collecting winnings on a resolved market.
func (h *Handlers) Claim(ctx context.Context, inv intent.Invocation) (intent.Reply, error) {
	hash := inv.Arg(0)
	if hash == "" {
		return plain(msgClaimUsage), nil
	}

	wallet, m, stop, err := h.tradeTarget(ctx, inv, hash)
	if err != nil || stop != "" {
		return plain(stop), err
	}
	if m.Status != model.MarketStatusResolved {
		return plain(msgClaimNotResolved), nil
	}

	text := fmt.Sprintf("💰 **领奖确认**\n\n市场: #%s... %s\n结果: %s\n\n点击下方按钮领取奖金。",
		truncate(hash, hashShort), truncate(orDefault(m.Title, "N/A"), 30), resultLabel(m.Result))
	signURL := h.signLink("claim", "market_id", hash, "wallet", wallet)
	return markdown(text, row(urlButton("🔐 点击领取奖金", signURL))), nil
}

// Refund sends the signing link for reclaiming a stake on a cancelled market.
func (h *Handlers) Refund(ctx context.Context, inv intent.Invocation) (intent.Reply, error) {
	hash := inv.Arg(0)
	if hash == "" {
		return plain(msgRefundUsage), nil
	}

	wallet, m, stop, err := h.tradeTarget(ctx, inv, hash)
	if err != nil || stop != "" {
		return plain(stop), err
	}
	if m.Status != model.MarketStatusCancelled {
		return plain(msgRefundNotCanceled), nil
	}

	text := fmt.Sprintf("🔄 **退款确认**\n\n市场: #%s... %s\n状态: 已取消\n\n点击下方按钮领取退款。",
		truncate(hash, hashShort), truncate(orDefault(m.Title, "N/A"), 30))
	signURL := h.signLink("refund", "market_id", hash, "wallet", wallet)
	return markdown(text, row(urlButton("🔐 点击领取退款", signURL))), nil
}
