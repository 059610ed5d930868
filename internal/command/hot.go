package command

import (
	"context"
	"fmt"

	"mindbet-bot/internal/intent"
)

// Hot shows today's LLM hot-topic analysis. Analysis failures become a retry hint.
func (h *Handlers) Hot(ctx context.Context, inv intent.Invocation) (intent.Reply, error) {
	if h.hot == nil {
		return plain(msgHotFailed), nil
	}

	report, err := h.hot.Analyze(ctx)
	if err != nil {
		h.l.Warnf(ctx, "%s: analyze failed: %v", LogPrefixHot, err)
		return plain(msgHotFailed), nil
	}

	text := fmt.Sprintf("🔥 **今日热点话题**\n\n%s\n\n%s\n\n访问网站查看基于这些话题的预测市场！",
		orDefault(report.Title, "热点事件"), truncate(report.Summary, hotSummaryRunes))
	return markdown(text,
		row(callbackButton("📊 查看相关市场", CallbackMarkets)),
		row(urlButton("🌐 访问网站", h.siteURL)),
	), nil
}
