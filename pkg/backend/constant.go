package backend

import "time"

const (
	// DefaultBaseURL is the default backend API endpoint
	DefaultBaseURL = "http://localhost:8080"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second

	// DefaultPageSize is used when a list call passes no page size
	DefaultPageSize = 10
)

const (
	pathMarkets    = "/api/v1/markets"
	pathUsers      = "/api/v1/users"
	pathBinding    = "/api/v1/telegram/binding"
	pathClaimable  = "/api/v1/telegram/claimable"
	pathRefundable = "/api/v1/telegram/refundable"
	pathBalance    = "/api/v1/telegram/balance"
	pathResolved   = "/api/v1/telegram/resolved"
)
