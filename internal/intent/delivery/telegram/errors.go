package telegram

import "errors"

var (
	ErrInvalidSecretToken = errors.New("invalid webhook secret token")
	ErrIPNotAllowed       = errors.New("source IP not allowed")
	ErrRateLimited        = errors.New("rate limit exceeded")
)
