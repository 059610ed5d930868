package command

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"mindbet-bot/internal/advisor"
	"mindbet-bot/internal/hotspot"
	"mindbet-bot/internal/intent"
	"mindbet-bot/internal/model"
	"mindbet-bot/pkg/backend"
	"mindbet-bot/pkg/log"
)

const (
	testWallet = "0x1234567890abcdef1234567890abcdef12345678"
	testHash   = "0xabcdef0123456789"
)

var testCaller = intent.Caller{TelegramID: 42, Username: "alice bob", FirstName: "Alice", ChatID: 42, ChatType: "private"}

func newTestHandlers(be *mockBackend, hot hotspot.UseCase) *Handlers {
	return newAdvisedHandlers(be, hot, nil)
}

func newAdvisedHandlers(be *mockBackend, hot hotspot.UseCase, adv advisor.UseCase) *Handlers {
	return New(log.NewNop(), be, hot, adv, Config{
		MiniAppURL: "https://app.mindbet.io/",
		Location:   time.UTC,
	})
}

func invoke(cmd string, args ...string) intent.Invocation {
	return intent.Invocation{Command: cmd, Args: args, Caller: testCaller}
}

func openMarket() *model.Market {
	return &model.Market{
		ContentHash:    testHash,
		Title:          "Will BTC reach 100k?",
		Category:       "Crypto",
		Deadline:       time.Date(2026, 12, 31, 16, 0, 0, 0, time.UTC).Unix(),
		CreatorAddress: testWallet,
		Status:         model.MarketStatusOpen,
		TotalYesPool:   "3000000000000000000",
		TotalNoPool:    "1000000000000000000",
	}
}

func allButtons(r intent.Reply) []intent.Button {
	var out []intent.Button
	for _, row := range r.Buttons {
		out = append(out, row...)
	}
	return out
}

func findButton(t *testing.T, r intent.Reply, text string) intent.Button {
	t.Helper()
	for _, b := range allButtons(r) {
		if b.Text == text {
			return b
		}
	}
	t.Fatalf("button %q not found in %+v", text, r.Buttons)
	return intent.Button{}
}

func TestEntries(t *testing.T) {
	h := newTestHandlers(&mockBackend{}, nil)
	entries := h.Entries()

	want := len(model.IntentCommands) + len(model.SlashCommands)
	if len(entries) != want {
		t.Fatalf("expected %d entries, got %d", want, len(entries))
	}
	for i, name := range model.IntentCommands {
		if entries[i].Command != name || entries[i].SlashOnly {
			t.Errorf("entry %d: expected intent command %s, got %+v", i, name, entries[i])
		}
	}
	for i, name := range model.SlashCommands {
		e := entries[len(model.IntentCommands)+i]
		if e.Command != name || !e.SlashOnly || e.Handler == nil {
			t.Errorf("entry %d: expected slash-only %s, got %+v", len(model.IntentCommands)+i, name, e)
		}
	}

	reg, err := intent.NewCommandRegistry(entries...)
	if err != nil {
		t.Fatalf("entries should build a registry: %v", err)
	}
	if _, ok := reg.LookupIntent(model.CommandResolve); ok {
		t.Error("resolve must not be reachable from a classified intent")
	}
	if _, ok := reg.Lookup(model.CommandResolve); !ok {
		t.Error("resolve must be reachable as a slash command")
	}
}

func TestStart(t *testing.T) {
	h := newTestHandlers(&mockBackend{}, nil)
	reply, err := h.Start(context.Background(), invoke("start"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(reply.Text, "🎰 **欢迎来到 MindBet!**") || reply.ParseMode != intent.ParseModeMarkdown {
		t.Errorf("unexpected welcome: %+v", reply)
	}
	if findButton(t, reply, "📊 查看市场").CallbackData != CallbackMarkets {
		t.Error("markets button should carry markets callback")
	}
	if findButton(t, reply, "🔥 今日热点").CallbackData != CallbackHot {
		t.Error("hot button should carry hot callback")
	}
}

func TestLogin(t *testing.T) {
	h := newTestHandlers(&mockBackend{}, nil)
	reply, _ := h.Login(context.Background(), invoke("login"))

	btn := findButton(t, reply, "🔗 点击绑定钱包")
	want := "https://app.mindbet.io/bind?telegram_id=42&username=alice+bob"
	if btn.URL != want {
		t.Errorf("expected %s, got %s", want, btn.URL)
	}
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("not bound", func(t *testing.T) {
		reply, err := newTestHandlers(&mockBackend{}, nil).Logout(ctx, invoke("logout"))
		if err != nil || reply.Text != "您还未绑定钱包。" {
			t.Errorf("unexpected reply %q err %v", reply.Text, err)
		}
	})

	t.Run("bound", func(t *testing.T) {
		be := &mockBackend{binding: &model.Binding{WalletAddress: testWallet}}
		reply, err := newTestHandlers(be, nil).Logout(ctx, invoke("logout"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(reply.Text, "`0x12345678...12345678`") {
			t.Errorf("expected short wallet, got %q", reply.Text)
		}
		if len(reply.Buttons) != 1 || len(reply.Buttons[0]) != 2 {
			t.Fatalf("expected one row with two buttons, got %+v", reply.Buttons)
		}
		if reply.Buttons[0][0].CallbackData != CallbackCancelUnbind || reply.Buttons[0][1].CallbackData != CallbackConfirmUnbind {
			t.Errorf("unexpected buttons: %+v", reply.Buttons[0])
		}
	})

	t.Run("transport error", func(t *testing.T) {
		be := &mockBackend{bindingErr: errors.New("connection refused")}
		if _, err := newTestHandlers(be, nil).Logout(ctx, invoke("logout")); err == nil {
			t.Error("expected transport error to be returned")
		}
	})
}

func TestConfirmUnbind(t *testing.T) {
	ctx := context.Background()

	be := &mockBackend{}
	reply, err := newTestHandlers(be, nil).ConfirmUnbind(ctx, testCaller)
	if err != nil || reply.Text != "✅ 钱包已解绑\n\n使用 /login 重新绑定钱包" {
		t.Errorf("unexpected reply %q err %v", reply.Text, err)
	}
	if len(be.unbound) != 1 || be.unbound[0] != 42 {
		t.Errorf("expected unbind for 42, got %v", be.unbound)
	}

	be = &mockBackend{unbindErr: &backend.APIError{Message: "not bound"}}
	reply, err = newTestHandlers(be, nil).ConfirmUnbind(ctx, testCaller)
	if err != nil || reply.Text != "解绑失败: not bound" {
		t.Errorf("unexpected reply %q err %v", reply.Text, err)
	}

	be = &mockBackend{unbindErr: &backend.APIError{}}
	reply, _ = newTestHandlers(be, nil).ConfirmUnbind(ctx, testCaller)
	if reply.Text != "解绑失败: 未知错误" {
		t.Errorf("unexpected reply %q", reply.Text)
	}

	if got := newTestHandlers(be, nil).CancelUnbind(ctx, testCaller); got.Text != "已取消解绑。" {
		t.Errorf("unexpected cancel reply %q", got.Text)
	}
}

func TestMarkets(t *testing.T) {
	ctx := context.Background()

	t.Run("lists first five", func(t *testing.T) {
		page := &model.MarketPage{}
		for i := 0; i < 7; i++ {
			m := openMarket()
			m.ContentHash = strings.Repeat(string(rune('a'+i)), 12)
			page.List = append(page.List, *m)
		}
		be := &mockBackend{markets: page}
		reply, err := newTestHandlers(be, nil).Markets(ctx, invoke("markets"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if be.lastList.Status == nil || *be.lastList.Status != model.MarketStatusOpen {
			t.Error("expected open status filter")
		}
		if len(reply.Buttons) != 5 {
			t.Errorf("expected 5 buttons, got %d", len(reply.Buttons))
		}
		if reply.Buttons[0][0].CallbackData != "market_aaaaaaaaaaaa" {
			t.Errorf("unexpected callback %s", reply.Buttons[0][0].CallbackData)
		}
		for _, want := range []string{"📊 **活跃市场**", "🟢 **#aaaaaaaaaa**", "💰 YES: 3.0000 | NO: 1.0000 MON", "⏰ 截止: 12-31 16:00", "/market <content_hash>"} {
			if !strings.Contains(reply.Text, want) {
				t.Errorf("expected %q in %q", want, reply.Text)
			}
		}
	})

	t.Run("empty", func(t *testing.T) {
		reply, _ := newTestHandlers(&mockBackend{}, nil).Markets(ctx, invoke("markets"))
		if reply.Text != "暂无活跃的市场。" {
			t.Errorf("unexpected reply %q", reply.Text)
		}
	})

	t.Run("unsuccessful", func(t *testing.T) {
		be := &mockBackend{marketsErr: &backend.APIError{Message: "db down"}}
		reply, err := newTestHandlers(be, nil).Markets(ctx, invoke("markets"))
		if err != nil || reply.Text != "获取市场失败，请稍后重试。" {
			t.Errorf("unexpected reply %q err %v", reply.Text, err)
		}
	})

	t.Run("transport error", func(t *testing.T) {
		be := &mockBackend{marketsErr: &backend.StatusError{StatusCode: 502}}
		if _, err := newTestHandlers(be, nil).Markets(ctx, invoke("markets")); err == nil {
			t.Error("expected error")
		}
	})
}

func TestMarket(t *testing.T) {
	ctx := context.Background()

	t.Run("usage", func(t *testing.T) {
		reply, _ := newTestHandlers(&mockBackend{}, nil).Market(ctx, invoke("market"))
		if reply.Text != "请提供市场内容哈希。用法: /market <content_hash>" {
			t.Errorf("unexpected reply %q", reply.Text)
		}
	})

	t.Run("not found", func(t *testing.T) {
		reply, err := newTestHandlers(&mockBackend{}, nil).Market(ctx, invoke("market", "0xmissing"))
		if err != nil || reply.Text != "市场不存在。" {
			t.Errorf("unexpected reply %q err %v", reply.Text, err)
		}
	})

	t.Run("detail with odds", func(t *testing.T) {
		be := &mockBackend{market: map[string]*model.Market{testHash: openMarket()}}
		reply, err := newTestHandlers(be, nil).Market(ctx, invoke("market", testHash))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{
			"📊 **市场 #0xabcdef01**",
			"📝 暂无描述",
			"**状态:** 🟢 进行中",
			"**分类:** Crypto",
			"**截止时间:** 2026-12-31 16:00",
			"• YES: 3.0000 MON (75.0%)",
			"• NO: 1.0000 MON (25.0%)",
			"📍 创建者: `0x12345678...`",
		} {
			if !strings.Contains(reply.Text, want) {
				t.Errorf("expected %q in %q", want, reply.Text)
			}
		}
		if strings.Contains(reply.Text, "**结果:**") {
			t.Error("open market should not show a result")
		}
		if findButton(t, reply, "🎯 下注 YES").CallbackData != "bet_yes_"+testHash {
			t.Error("unexpected bet yes callback")
		}
		if findButton(t, reply, "🎯 下注 NO").CallbackData != "bet_no_"+testHash {
			t.Error("unexpected bet no callback")
		}
	})

	t.Run("resolved empty pools", func(t *testing.T) {
		m := openMarket()
		m.Status = model.MarketStatusResolved
		m.Result = model.MarketResultNo
		m.TotalYesPool, m.TotalNoPool = "", "0"
		be := &mockBackend{market: map[string]*model.Market{testHash: m}}
		reply, _ := newTestHandlers(be, nil).Market(ctx, invoke("market", testHash))

		for _, want := range []string{"**结果:** NO ❌", "(50.0%)", "✅ 已结算"} {
			if !strings.Contains(reply.Text, want) {
				t.Errorf("expected %q in %q", want, reply.Text)
			}
		}
	})
}

func TestBet(t *testing.T) {
	ctx := context.Background()
	bound := func() *mockBackend {
		return &mockBackend{
			binding: &model.Binding{WalletAddress: testWallet},
			market:  map[string]*model.Market{testHash: openMarket()},
		}
	}

	tests := []struct {
		name string
		be   *mockBackend
		args []string
		want string
	}{
		{name: "usage", be: bound(), args: []string{testHash, "yes"}, want: "用法: /bet <market_id> <yes/no> <amount>\n示例: /bet abc123... yes 0.5"},
		{name: "bad direction", be: bound(), args: []string{testHash, "maybe", "1"}, want: "方向必须是 yes 或 no"},
		{name: "bad amount", be: bound(), args: []string{testHash, "yes", "-1"}, want: "金额必须是大于 0 的数字"},
		{name: "NaN amount", be: bound(), args: []string{testHash, "yes", "NaN"}, want: "金额必须是大于 0 的数字"},
		{name: "infinite amount", be: bound(), args: []string{testHash, "yes", "Inf"}, want: "金额必须是大于 0 的数字"},
		{name: "signed infinite amount", be: bound(), args: []string{testHash, "no", "+Inf"}, want: "金额必须是大于 0 的数字"},
		{name: "not bound", be: &mockBackend{}, args: []string{testHash, "yes", "1"}, want: "请先绑定钱包：/login"},
		{name: "missing market", be: bound(), args: []string{"0xnope", "yes", "1"}, want: "市场不存在。"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := newTestHandlers(tt.be, nil).Bet(ctx, invoke("bet", tt.args...))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if reply.Text != tt.want {
				t.Errorf("expected %q, got %q", tt.want, reply.Text)
			}
		})
	}

	t.Run("confirmation", func(t *testing.T) {
		reply, err := newTestHandlers(bound(), nil).Bet(ctx, invoke("bet", testHash, "YES", "0.5"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"📋 **下注确认**", "方向: YES", "金额: 0.5 MON", "总计: 0.503000 MON"} {
			if !strings.Contains(reply.Text, want) {
				t.Errorf("expected %q in %q", want, reply.Text)
			}
		}
		want := "https://app.mindbet.io/sign?action=bet&market_id=" + testHash + "&bet_type=yes&amount=0.5&wallet=" + testWallet
		if got := findButton(t, reply, "🔐 点击确认下注").URL; got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})
}

func TestClaimAndRefund(t *testing.T) {
	ctx := context.Background()
	withStatus := func(s model.MarketStatus) *mockBackend {
		m := openMarket()
		m.Status = s
		m.Result = model.MarketResultYes
		return &mockBackend{
			binding: &model.Binding{WalletAddress: testWallet},
			market:  map[string]*model.Market{testHash: m},
		}
	}

	reply, _ := newTestHandlers(withStatus(model.MarketStatusOpen), nil).Claim(ctx, invoke("claim", testHash))
	if reply.Text != "该市场尚未结算。" {
		t.Errorf("unexpected reply %q", reply.Text)
	}

	reply, _ = newTestHandlers(withStatus(model.MarketStatusResolved), nil).Claim(ctx, invoke("claim", testHash))
	if !strings.Contains(reply.Text, "结果: YES ✅") {
		t.Errorf("unexpected reply %q", reply.Text)
	}
	if got := findButton(t, reply, "🔐 点击领取奖金").URL; !strings.Contains(got, "action=claim&market_id="+testHash) {
		t.Errorf("unexpected sign link %s", got)
	}

	reply, _ = newTestHandlers(withStatus(model.MarketStatusResolved), nil).Refund(ctx, invoke("refund", testHash))
	if reply.Text != "该市场未被取消。" {
		t.Errorf("unexpected reply %q", reply.Text)
	}

	reply, _ = newTestHandlers(withStatus(model.MarketStatusCancelled), nil).Refund(ctx, invoke("refund", testHash))
	if !strings.Contains(reply.Text, "状态: 已取消") {
		t.Errorf("unexpected reply %q", reply.Text)
	}
	if got := findButton(t, reply, "🔐 点击领取退款").URL; !strings.Contains(got, "action=refund") {
		t.Errorf("unexpected sign link %s", got)
	}

	reply, _ = newTestHandlers(&mockBackend{}, nil).Claim(ctx, invoke("claim"))
	if reply.Text != "用法: /claim <market_id>\n示例: /claim abc123..." {
		t.Errorf("unexpected reply %q", reply.Text)
	}
	reply, _ = newTestHandlers(&mockBackend{}, nil).Refund(ctx, invoke("refund"))
	if reply.Text != "用法: /refund <market_id>\n示例: /refund abc123..." {
		t.Errorf("unexpected reply %q", reply.Text)
	}
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	profile := &model.Profile{TotalBets: 4, WinBets: 3, TotalPnL: "-1500000000000000000", TotalVolume: "2000000000000000000"}

	reply, _ := newTestHandlers(&mockBackend{}, nil).Profile(ctx, invoke("profile"))
	if reply.Text != "请先绑定钱包：/login" {
		t.Errorf("unexpected reply %q", reply.Text)
	}

	be := &mockBackend{binding: &model.Binding{WalletAddress: testWallet}, profile: profile}
	reply, err := newTestHandlers(be, nil).Profile(ctx, invoke("profile"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"• 胜率: 75.0%", "• 总交易量: 2.0000 MON", "📉 **盈亏:** -1.5000 MON"} {
		if !strings.Contains(reply.Text, want) {
			t.Errorf("expected %q in %q", want, reply.Text)
		}
	}
	if findButton(t, reply, "📊 查看下注历史").CallbackData != "bets_"+testWallet {
		t.Error("unexpected bets callback")
	}

	be = &mockBackend{profile: profile}
	if reply, _ := newTestHandlers(be, nil).Profile(ctx, invoke("profile", testWallet)); !strings.Contains(reply.Text, "👤 **用户资料**") {
		t.Errorf("explicit address should skip binding, got %q", reply.Text)
	}

	be = &mockBackend{binding: &model.Binding{WalletAddress: testWallet}, profileErr: backend.ErrNotFound}
	if reply, _ := newTestHandlers(be, nil).Profile(ctx, invoke("profile")); reply.Text != "用户资料不存在。" {
		t.Errorf("unexpected reply %q", reply.Text)
	}
}

func TestProfileFeedback(t *testing.T) {
	ctx := context.Background()
	yes := 1
	be := &mockBackend{
		binding: &model.Binding{WalletAddress: testWallet},
		profile: &model.Profile{TotalBets: 4, WinBets: 3, TotalPnL: "1500000000000000000"},
		bets: &model.TransactionPage{List: []model.Transaction{
			{TxType: model.TxTypeBet, Outcome: &yes, Amount: "500000000000000000"},
			{TxType: model.TxTypeClaim, Amount: "1000000000000000000"},
		}},
	}

	adv := &mockAdvisor{feedback: "手气不错，继续保持！"}
	reply, err := newAdvisedHandlers(be, nil, adv).Profile(ctx, invoke("profile"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(reply.Text, "📈 **盈亏:** +1.5000 MON\n\n💬 手气不错，继续保持！") {
		t.Errorf("feedback should follow the stats, got %q", reply.Text)
	}
	want := advisor.Stats{
		Address:       testWallet,
		TotalBets:     4,
		WinBets:       3,
		TotalPnL:      1.5,
		RecentResults: []string{"下注 YES 0.5000 MON", "领奖 NO 1.0000 MON"},
	}
	if len(adv.stats) != 1 || !reflect.DeepEqual(adv.stats[0], want) {
		t.Errorf("unexpected stats %+v", adv.stats)
	}

	failing := &mockAdvisor{err: errors.New("provider down")}
	reply, err = newAdvisedHandlers(be, nil, failing).Profile(ctx, invoke("profile"))
	if err != nil {
		t.Fatalf("advisor failure must not fail the profile: %v", err)
	}
	if strings.Contains(reply.Text, "💬") {
		t.Errorf("failed feedback should be omitted, got %q", reply.Text)
	}

	be.betsErr = errors.New("timeout")
	adv = &mockAdvisor{feedback: "加油"}
	reply, _ = newAdvisedHandlers(be, nil, adv).Profile(ctx, invoke("profile"))
	if !strings.HasSuffix(reply.Text, "💬 加油") || len(adv.stats) != 1 || adv.stats[0].RecentResults != nil {
		t.Errorf("history failure should still ask for feedback, got %q %+v", reply.Text, adv.stats)
	}
}

func TestCreatorCommands(t *testing.T) {
	ctx := context.Background()
	h := newTestHandlers(&mockBackend{}, nil)

	reply, _ := h.Create(ctx, invoke("create"))
	if !strings.HasPrefix(reply.Text, "📝 **创建议题指南**") || !strings.Contains(reply.Text, "支付押金(1 MON)") {
		t.Errorf("unexpected guide %q", reply.Text)
	}
	if findButton(t, reply, "📝 去创建议题").URL != "https://app.mindbet.io" {
		t.Error("guide should link the mini app")
	}
	bare := New(log.NewNop(), &mockBackend{}, nil, nil, Config{})
	if reply, _ := bare.Create(ctx, invoke("create")); len(reply.Buttons) != 0 {
		t.Errorf("no mini app means no button, got %+v", reply.Buttons)
	}

	tests := []struct {
		name string
		run  func() (intent.Reply, error)
		text string
		url  string
	}{
		{
			name: "resolve usage",
			run:  func() (intent.Reply, error) { return h.Resolve(ctx, invoke("resolve", testHash)) },
			text: "用法: /resolve <market_id> <yes/no>\n\n只有创建者可以结算议题。",
		},
		{
			name: "resolve bad result",
			run:  func() (intent.Reply, error) { return h.Resolve(ctx, invoke("resolve", testHash, "maybe")) },
			text: "结果必须是 yes 或 no",
		},
		{
			name: "resolve link",
			run:  func() (intent.Reply, error) { return h.Resolve(ctx, invoke("resolve", testHash, "YES")) },
			text: "✅ **结算议题**\n\n市场: #0xabcdef01...\n结果: YES\n\n只有创建者可以结算议题。",
			url:  "https://app.mindbet.io/sign?action=resolve&market_id=0xabcdef0123456789&result=yes",
		},
		{
			name: "cancel usage",
			run:  func() (intent.Reply, error) { return h.Cancel(ctx, invoke("cancel")) },
			text: "用法: /cancel <market_id>\n\n只有创建者可以取消议题。",
		},
		{
			name: "cancel link",
			run:  func() (intent.Reply, error) { return h.Cancel(ctx, invoke("cancel", testHash)) },
			text: "❌ **取消议题**\n\n市场: #0xabcdef01...\n\n只有创建者可以取消议题。取消后押金退还，所有下注退款。",
			url:  "https://app.mindbet.io/sign?action=cancel&market_id=0xabcdef0123456789",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := tt.run()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if reply.Text != tt.text {
				t.Errorf("expected %q, got %q", tt.text, reply.Text)
			}
			buttons := allButtons(reply)
			if tt.url == "" {
				if len(buttons) != 0 {
					t.Errorf("expected no buttons, got %+v", buttons)
				}
				return
			}
			if len(buttons) != 1 || buttons[0].URL != tt.url {
				t.Errorf("expected link %s, got %+v", tt.url, buttons)
			}
		})
	}
}

func TestBalance(t *testing.T) {
	ctx := context.Background()

	be := &mockBackend{balance: &model.WalletBalance{WalletAddress: testWallet, Balance: "12.5"}}
	reply, err := newTestHandlers(be, nil).Balance(ctx, invoke("balance"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply.Text, "• 可用余额: 12.5 MON") {
		t.Errorf("unexpected reply %q", reply.Text)
	}
	if findButton(t, reply, "🔄 刷新").CallbackData != CallbackRefreshBalance {
		t.Error("unexpected refresh callback")
	}

	be = &mockBackend{balanceErr: &backend.APIError{Message: "not bound"}}
	if reply, _ := newTestHandlers(be, nil).Balance(ctx, invoke("balance")); reply.Text != "请先绑定钱包：/login" {
		t.Errorf("unexpected reply %q", reply.Text)
	}
}

func TestMyBetsAndHistory(t *testing.T) {
	ctx := context.Background()
	yes := 1
	bets := &model.TransactionPage{List: []model.Transaction{
		{TxType: model.TxTypeBet, Outcome: &yes, Amount: "500000000000000000"},
		{TxType: model.TxType(9), Amount: "1000000000000000000"},
	}}

	be := &mockBackend{binding: &model.Binding{WalletAddress: testWallet}, bets: bets}
	reply, err := newTestHandlers(be, nil).MyBets(ctx, invoke("mybets"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if be.betsFor != testWallet {
		t.Errorf("expected bets for bound wallet, got %s", be.betsFor)
	}
	for _, want := range []string{"📊 **我的下注**", "📌 下注: YES 0.5000 MON", "📌 其他: NO 1.0000 MON"} {
		if !strings.Contains(reply.Text, want) {
			t.Errorf("expected %q in %q", want, reply.Text)
		}
	}

	be = &mockBackend{binding: &model.Binding{WalletAddress: testWallet}}
	if reply, _ := newTestHandlers(be, nil).MyBets(ctx, invoke("mybets")); reply.Text != "您还没有下注记录。" {
		t.Errorf("unexpected reply %q", reply.Text)
	}

	be = &mockBackend{bets: bets}
	reply, err = newTestHandlers(be, nil).BetHistory(ctx, "0xother")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if be.betsFor != "0xother" || !strings.Contains(reply.Text, "• 下注: YES 0.5000 MON") {
		t.Errorf("unexpected history %q for %s", reply.Text, be.betsFor)
	}
}

func TestClaimableRefundableResolved(t *testing.T) {
	ctx := context.Background()
	m := *openMarket()
	m.Result = model.MarketResultYes

	be := &mockBackend{claimable: []model.Market{m}, refundable: []model.Market{m}, resolved: &model.MarketPage{List: []model.Market{m}}}
	h := newTestHandlers(be, nil)

	reply, _ := h.Claimable(ctx, invoke("claimable"))
	if !strings.Contains(reply.Text, "🟢 #0xabcdef01 Will BTC reach 100k?\n   [💰 领取奖金]") {
		t.Errorf("unexpected claimable %q", reply.Text)
	}
	if findButton(t, reply, "💰 #0xabcdef01 领取").CallbackData != "claim_"+testHash {
		t.Error("unexpected claim callback")
	}

	reply, _ = h.Refundable(ctx, invoke("refundable"))
	if findButton(t, reply, "💰 #0xabcdef01 退款").CallbackData != "refund_"+testHash {
		t.Error("unexpected refund callback")
	}

	reply, _ = h.Resolved(ctx, invoke("resolved"))
	if !strings.Contains(reply.Text, "结果: YES ✅") {
		t.Errorf("unexpected resolved %q", reply.Text)
	}
	if findButton(t, reply, "#0xabcdef01").CallbackData != "market_"+testHash {
		t.Error("unexpected market callback")
	}

	empty := newTestHandlers(&mockBackend{}, nil)
	for name, fn := range map[string]intent.HandlerFunc{
		"暂无可领奖的议题。": empty.Claimable,
		"暂无可退款的议题。": empty.Refundable,
		"暂无已结算的市场。": empty.Resolved,
	} {
		if reply, _ := fn(ctx, invoke("x")); reply.Text != name {
			t.Errorf("expected %q, got %q", name, reply.Text)
		}
	}

	unbound := newTestHandlers(&mockBackend{listErr: &backend.APIError{}}, nil)
	if reply, _ := unbound.Claimable(ctx, invoke("claimable")); reply.Text != "请先绑定钱包：/login" {
		t.Errorf("unexpected reply %q", reply.Text)
	}
}

func TestHot(t *testing.T) {
	ctx := context.Background()

	hot := &mockHotspot{report: hotspot.Report{Title: "今日热点", Summary: "BTC 突破新高"}}
	reply, err := newTestHandlers(&mockBackend{}, hot).Hot(ctx, invoke("hot"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply.Text, "🔥 **今日热点话题**\n\n今日热点\n\nBTC 突破新高") {
		t.Errorf("unexpected reply %q", reply.Text)
	}
	if findButton(t, reply, "🌐 访问网站").URL != DefaultSiteURL {
		t.Error("expected default site url")
	}

	failing := &mockHotspot{err: errors.New("llm down")}
	if reply, err := newTestHandlers(&mockBackend{}, failing).Hot(ctx, invoke("hot")); err != nil || reply.Text != "获取热点失败，请稍后重试。" {
		t.Errorf("unexpected reply %q err %v", reply.Text, err)
	}
	if reply, _ := newTestHandlers(&mockBackend{}, nil).Hot(ctx, invoke("hot")); reply.Text != "获取热点失败，请稍后重试。" {
		t.Errorf("unexpected reply %q", reply.Text)
	}
}
