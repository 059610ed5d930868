package command

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"mindbet-bot/internal/intent"
	"mindbet-bot/internal/model"
)

var statusLabels = map[model.MarketStatus]string{
	model.MarketStatusOpen:      "🟢 进行中",
	model.MarketStatusClosed:    "🔴 已封盘",
	model.MarketStatusResolved:  "✅ 已结算",
	model.MarketStatusCancelled: "❌ 已取消",
}

var txTypeLabels = map[model.TxType]string{
	model.TxTypeCreateMarket:  "创建",
	model.TxTypeBet:           "下注",
	model.TxTypeClaim:         "领奖",
	model.TxTypeDepositRefund: "押金退款",
	model.TxTypeRefund:        "退款",
}

func statusLabel(s model.MarketStatus) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return "未知"
}

func txTypeLabel(t model.TxType) string {
	if l, ok := txTypeLabels[t]; ok {
		return l
	}
	return "其他"
}

func resultLabel(r model.MarketResult) string {
	if r == model.MarketResultYes {
		return "YES ✅"
	}
	return "NO ❌"
}

func outcomeLabel(outcome *int) string {
	if outcome != nil && *outcome == 1 {
		return "YES"
	}
	return "NO"
}

// truncate keeps the first n runes of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// shortAddress renders 0x1234567890...abcdef12.
func shortAddress(addr string) string {
	if len(addr) <= hashShort+addrTail {
		return addr
	}
	return addr[:hashShort] + "..." + addr[len(addr)-addrTail:]
}

func amount(w model.Wei) string {
	return fmt.Sprintf("%.4f", w.Tokens())
}

func (h *Handlers) deadline(unix int64, layout string) string {
	return time.Unix(unix, 0).In(h.location).Format(layout)
}

func markdown(text string, rows ...[]intent.Button) intent.Reply {
	return intent.Reply{Text: text, ParseMode: intent.ParseModeMarkdown, Buttons: rows}
}

func plain(text string) intent.Reply {
	return intent.Reply{Text: text}
}

func callbackButton(text, data string) intent.Button {
	return intent.Button{Text: text, CallbackData: data}
}

func urlButton(text, link string) intent.Button {
	return intent.Button{Text: text, URL: link}
}

func row(buttons ...intent.Button) []intent.Button {
	return buttons
}

// link appends ordered query pairs to base+path.
func link(base, path string, pairs ...string) string {
	var b strings.Builder
	b.WriteString(base)
	b.WriteString(path)
	for i := 0; i+1 < len(pairs); i += 2 {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(pairs[i])
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pairs[i+1]))
	}
	return b.String()
}

func (h *Handlers) bindLink(caller intent.Caller) string {
	return link(h.miniAppURL, "/bind",
		"telegram_id", fmt.Sprint(caller.TelegramID),
		"username", caller.Username,
	)
}

func (h *Handlers) signLink(action string, pairs ...string) string {
	return link(h.miniAppURL, "/sign", append([]string{"action", action}, pairs...)...)
}
