package middleware

const (
	// RequestIDHeader is read from inbound requests and echoed on responses.
	RequestIDHeader = "X-Request-ID"

	maxRequestIDLen = 128
)
