package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"mindbet-bot/internal/model"
)

// newClientImpl creates a new implementation
func newClientImpl(cfg Config) *clientImpl {
	return &clientImpl{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}

// ListMarkets calls GET /api/v1/markets.
func (c *clientImpl) ListMarkets(ctx context.Context, opt ListMarketsOptions) (*model.MarketPage, error) {
	q := pageQuery(opt.Page, opt.PageSize)
	if opt.Status != nil {
		q.Set("status", strconv.Itoa(int(*opt.Status)))
	}

	var page model.MarketPage
	if err := c.do(ctx, http.MethodGet, pathMarkets, q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetMarket calls GET /api/v1/markets/{hash}.
func (c *clientImpl) GetMarket(ctx context.Context, contentHash string) (*model.Market, error) {
	var m model.Market
	if err := c.do(ctx, http.MethodGet, pathMarkets+"/"+url.PathEscape(contentHash), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// GetProfile calls GET /api/v1/users/{addr}/profile.
func (c *clientImpl) GetProfile(ctx context.Context, address string) (*model.Profile, error) {
	var p model.Profile
	if err := c.do(ctx, http.MethodGet, pathUsers+"/"+url.PathEscape(address)+"/profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListUserBets calls GET /api/v1/users/{addr}/bets.
func (c *clientImpl) ListUserBets(ctx context.Context, address string, page, pageSize int) (*model.TransactionPage, error) {
	var txs model.TransactionPage
	path := pathUsers + "/" + url.PathEscape(address) + "/bets"
	if err := c.do(ctx, http.MethodGet, path, pageQuery(page, pageSize), &txs); err != nil {
		return nil, err
	}
	return &txs, nil
}

// GetBinding calls GET /api/v1/telegram/binding.
func (c *clientImpl) GetBinding(ctx context.Context, telegramID int64) (*model.Binding, error) {
	var b model.Binding
	if err := c.do(ctx, http.MethodGet, pathBinding, telegramQuery(telegramID), &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Unbind calls DELETE /api/v1/telegram/binding.
func (c *clientImpl) Unbind(ctx context.Context, telegramID int64) error {
	return c.do(ctx, http.MethodDelete, pathBinding, telegramQuery(telegramID), nil)
}

// ListClaimable calls GET /api/v1/telegram/claimable.
func (c *clientImpl) ListClaimable(ctx context.Context, telegramID int64) ([]model.Market, error) {
	var out marketList
	if err := c.do(ctx, http.MethodGet, pathClaimable, telegramQuery(telegramID), &out); err != nil {
		return nil, err
	}
	return out.List, nil
}

// ListRefundable calls GET /api/v1/telegram/refundable.
func (c *clientImpl) ListRefundable(ctx context.Context, telegramID int64) ([]model.Market, error) {
	var out marketList
	if err := c.do(ctx, http.MethodGet, pathRefundable, telegramQuery(telegramID), &out); err != nil {
		return nil, err
	}
	return out.List, nil
}

// GetBalance calls GET /api/v1/telegram/balance.
func (c *clientImpl) GetBalance(ctx context.Context, telegramID int64) (*model.WalletBalance, error) {
	var b model.WalletBalance
	if err := c.do(ctx, http.MethodGet, pathBalance, telegramQuery(telegramID), &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// ListResolved calls GET /api/v1/telegram/resolved.
func (c *clientImpl) ListResolved(ctx context.Context, page, pageSize int) (*model.MarketPage, error) {
	var out model.MarketPage
	if err := c.do(ctx, http.MethodGet, pathResolved, pageQuery(page, pageSize), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one request and unwraps the {success, data, error} envelope into out.
func (c *clientImpl) do(ctx context.Context, method, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("backend: failed to build %s %s request: %w", method, path, err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("backend: failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("backend: failed to decode %s %s response: %w", method, path, err)
	}
	if !env.Success {
		return &APIError{Method: method, Path: path, Message: env.Error}
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("backend: failed to decode %s %s data: %w", method, path, err)
	}
	return nil
}

func pageQuery(page, pageSize int) url.Values {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	return q
}

func telegramQuery(telegramID int64) url.Values {
	q := url.Values{}
	q.Set("telegram_id", strconv.FormatInt(telegramID, 10))
	return q
}
