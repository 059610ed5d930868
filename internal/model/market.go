package model

// MarketStatus mirrors the on-chain market state.
type MarketStatus int

const (
	MarketStatusOpen      MarketStatus = 0
	MarketStatusClosed    MarketStatus = 1
	MarketStatusResolved  MarketStatus = 2
	MarketStatusCancelled MarketStatus = 3
)

// MarketResult is the resolved outcome of a market.
type MarketResult int

const (
	MarketResultNone MarketResult = 0
	MarketResultYes  MarketResult = 1
	MarketResultNo   MarketResult = 2
)

// TxType classifies ledger transactions.
type TxType int

const (
	TxTypeCreateMarket  TxType = 1
	TxTypeBet           TxType = 2
	TxTypeClaim         TxType = 3
	TxTypeDepositRefund TxType = 4
	TxTypeRefund        TxType = 5
)

// Market is a prediction market as returned by the backend. Pools are in wei.
type Market struct {
	ID             uint64       `json:"id"`
	ContentHash    string       `json:"content_hash"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Category       string       `json:"category"`
	Deadline       int64        `json:"deadline"`
	CreatorAddress string       `json:"creator_address"`
	Status         MarketStatus `json:"status"`
	Result         MarketResult `json:"result"`
	TotalYesPool   Wei          `json:"total_yes_pool"`
	TotalNoPool    Wei          `json:"total_no_pool"`
}

// MarketPage is a paginated list of markets.
type MarketPage struct {
	List     []Market `json:"list"`
	Total    int64    `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
}

// Profile holds a wallet's betting statistics. Amounts are in wei.
type Profile struct {
	Address     string `json:"address"`
	TotalBets   uint64 `json:"total_bets"`
	WinBets     uint64 `json:"win_bets"`
	TotalPnL    Wei    `json:"total_pnl"`
	TotalVolume Wei    `json:"total_volume"`
}

// Transaction is a ledger entry for a wallet.
type Transaction struct {
	TxHash      string `json:"tx_hash"`
	ContentHash string `json:"content_hash"`
	UserAddress string `json:"user_address"`
	Amount      Wei    `json:"amount"`
	Outcome     *int   `json:"outcome"`
	TxType      TxType `json:"tx_type"`
}

// TransactionPage is a paginated list of transactions.
type TransactionPage struct {
	List  []Transaction `json:"list"`
	Total int64         `json:"total"`
}

// Binding links a Telegram account to a wallet.
type Binding struct {
	TelegramID    int64  `json:"telegram_id"`
	WalletAddress string `json:"wallet_address"`
	Username      string `json:"username"`
}

// WalletBalance is the native-token balance of a bound wallet.
type WalletBalance struct {
	WalletAddress string `json:"wallet_address"`
	Balance       string `json:"balance"`
}
