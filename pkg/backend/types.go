package backend

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"mindbet-bot/internal/model"
)

// Config holds backend client configuration
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

func (c *Config) setDefaults() {
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
}

// ListMarketsOptions filters the market list.
type ListMarketsOptions struct {
	Status   *model.MarketStatus
	Page     int
	PageSize int
}

// clientImpl is the internal implementation of IClient
type clientImpl struct {
	baseURL    string
	httpClient *http.Client
}

// envelope is the backend response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// marketList is the data shape of list endpoints that only carry markets
type marketList struct {
	List []model.Market `json:"list"`
}
