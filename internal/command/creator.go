package command

import (
	"context"
	"fmt"
	"strings"

	"mindbet-bot/internal/intent"
)

// Create explains how to open a market from the Mini App.
func (h *Handlers) Create(ctx context.Context, inv intent.Invocation) (intent.Reply, error) {
	text := fmt.Sprintf(msgCreateGuide, Currency)
	if h.miniAppURL == "" {
		return markdown(text), nil
	}
	return markdown(text, row(urlButton("📝 去创建议题", h.miniAppURL))), nil
}

// Resolve sends the creator's signing link for settling a market.
// The contract rejects callers other than the creator, so no ownership check happens here.
func (h *Handlers) Resolve(ctx context.Context, inv intent.Invocation) (intent.Reply, error) {
	if len(inv.Args) < 2 {
		return plain(msgResolveUsage), nil
	}
	hash := inv.Arg(0)
	result := strings.ToLower(inv.Arg(1))
	if result != "yes" && result != "no" {
		return plain(msgResolveDirection), nil
	}

	signURL := h.signLink("resolve", "market_id", hash, "result", result)
	return markdown(fmt.Sprintf(msgResolveConfirm, truncate(hash, hashShort), strings.ToUpper(result)),
		row(urlButton("🔐 点击确认结算", signURL)),
	), nil
}

// Cancel sends the creator's signing link for cancelling a market.
func (h *Handlers) Cancel(ctx context.Context, inv intent.Invocation) (intent.Reply, error) {
	hash := inv.Arg(0)
	if hash == "" {
		return plain(msgCancelUsage), nil
	}

	signURL := h.signLink("cancel", "market_id", hash)
	return markdown(fmt.Sprintf(msgCancelConfirm, truncate(hash, hashShort)),
		row(urlButton("🔐 点击确认取消", signURL)),
	), nil
}
