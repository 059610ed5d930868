package backend

import (
	"context"

	"mindbet-bot/internal/model"
)

// IClient defines the interface for the MindBet backend REST API.
// Implementations are safe for concurrent use.
type IClient interface {
	ListMarkets(ctx context.Context, opt ListMarketsOptions) (*model.MarketPage, error)
	GetMarket(ctx context.Context, contentHash string) (*model.Market, error)
	GetProfile(ctx context.Context, address string) (*model.Profile, error)
	ListUserBets(ctx context.Context, address string, page, pageSize int) (*model.TransactionPage, error)

	GetBinding(ctx context.Context, telegramID int64) (*model.Binding, error)
	Unbind(ctx context.Context, telegramID int64) error
	ListClaimable(ctx context.Context, telegramID int64) ([]model.Market, error)
	ListRefundable(ctx context.Context, telegramID int64) ([]model.Market, error)
	GetBalance(ctx context.Context, telegramID int64) (*model.WalletBalance, error)
	ListResolved(ctx context.Context, page, pageSize int) (*model.MarketPage, error)
}

// New creates a new backend client with the given configuration
func New(cfg Config) IClient {
	cfg.setDefaults()
	return newClientImpl(cfg)
}
