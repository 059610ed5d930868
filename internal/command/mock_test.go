package command

import (
	"context"

	"mindbet-bot/internal/advisor"
	"mindbet-bot/internal/hotspot"
	"mindbet-bot/internal/model"
	"mindbet-bot/pkg/backend"
)

type mockBackend struct {
	binding    *model.Binding
	bindingErr error
	unbindErr  error
	unbound    []int64

	markets    *model.MarketPage
	marketsErr error
	lastList   backend.ListMarketsOptions

	market    map[string]*model.Market
	marketErr error

	profile    *model.Profile
	profileErr error

	bets    *model.TransactionPage
	betsErr error
	betsFor string

	claimable  []model.Market
	refundable []model.Market
	listErr    error

	balance    *model.WalletBalance
	balanceErr error

	resolved    *model.MarketPage
	resolvedErr error
}

func (m *mockBackend) ListMarkets(ctx context.Context, opt backend.ListMarketsOptions) (*model.MarketPage, error) {
	m.lastList = opt
	if m.marketsErr != nil {
		return nil, m.marketsErr
	}
	if m.markets == nil {
		return &model.MarketPage{}, nil
	}
	return m.markets, nil
}

func (m *mockBackend) GetMarket(ctx context.Context, contentHash string) (*model.Market, error) {
	if m.marketErr != nil {
		return nil, m.marketErr
	}
	if mk, ok := m.market[contentHash]; ok {
		return mk, nil
	}
	return nil, backend.ErrNotFound
}

func (m *mockBackend) GetProfile(ctx context.Context, address string) (*model.Profile, error) {
	if m.profileErr != nil {
		return nil, m.profileErr
	}
	return m.profile, nil
}

func (m *mockBackend) ListUserBets(ctx context.Context, address string, page, pageSize int) (*model.TransactionPage, error) {
	m.betsFor = address
	if m.betsErr != nil {
		return nil, m.betsErr
	}
	if m.bets == nil {
		return &model.TransactionPage{}, nil
	}
	return m.bets, nil
}

func (m *mockBackend) GetBinding(ctx context.Context, telegramID int64) (*model.Binding, error) {
	if m.bindingErr != nil {
		return nil, m.bindingErr
	}
	if m.binding == nil {
		return nil, &backend.APIError{Message: "binding not found"}
	}
	return m.binding, nil
}

func (m *mockBackend) Unbind(ctx context.Context, telegramID int64) error {
	if m.unbindErr != nil {
		return m.unbindErr
	}
	m.unbound = append(m.unbound, telegramID)
	return nil
}

func (m *mockBackend) ListClaimable(ctx context.Context, telegramID int64) ([]model.Market, error) {
	return m.claimable, m.listErr
}

func (m *mockBackend) ListRefundable(ctx context.Context, telegramID int64) ([]model.Market, error) {
	return m.refundable, m.listErr
}

func (m *mockBackend) GetBalance(ctx context.Context, telegramID int64) (*model.WalletBalance, error) {
	if m.balanceErr != nil {
		return nil, m.balanceErr
	}
	return m.balance, nil
}

func (m *mockBackend) ListResolved(ctx context.Context, page, pageSize int) (*model.MarketPage, error) {
	if m.resolvedErr != nil {
		return nil, m.resolvedErr
	}
	if m.resolved == nil {
		return &model.MarketPage{}, nil
	}
	return m.resolved, nil
}

type mockHotspot struct {
	report hotspot.Report
	err    error
}

func (m *mockHotspot) Analyze(ctx context.Context) (hotspot.Report, error) {
	return m.report, m.err
}

type mockAdvisor struct {
	feedback string
	err      error
	stats    []advisor.Stats
}

func (m *mockAdvisor) Chat(ctx context.Context, text string, name string) (string, error) {
	return "", m.err
}

func (m *mockAdvisor) Feedback(ctx context.Context, stats advisor.Stats) (string, error) {
	m.stats = append(m.stats, stats)
	return m.feedback, m.err
}
