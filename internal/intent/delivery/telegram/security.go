package telegram

import (
	"crypto/subtle"
	"fmt"
	"net"
	"strings"

	"mindbet-bot/pkg/ratelimit"
)

// SecurityValidator guards the webhook endpoint and throttles chats.
type SecurityValidator struct {
	secretToken string
	allowedIPs  []string
	rateLimiter *ratelimit.KeyedLimiter
}

func NewSecurityValidator(secretToken string, allowedIPs []string, requestsPerMin int) *SecurityValidator {
	return &SecurityValidator{
		secretToken: secretToken,
		allowedIPs:  allowedIPs,
		rateLimiter: ratelimit.New(requestsPerMin),
	}
}

// ValidateSecretToken compares the webhook header with the configured token.
// No token configured means no check.
func (v *SecurityValidator) ValidateSecretToken(token string) error {
	if v.secretToken == "" {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(v.secretToken)) != 1 {
		return ErrInvalidSecretToken
	}
	return nil
}

// ValidateIPAddress checks the client IP against the allowlist.
// ip must come from the engine's trusted-proxy resolution, not raw headers.
func (v *SecurityValidator) ValidateIPAddress(ip string) error {
	if len(v.allowedIPs) == 0 {
		return nil
	}

	for _, allowedIP := range v.allowedIPs {
		if ip == allowedIP {
			return nil
		}

		if strings.Contains(allowedIP, "/") {
			_, ipNet, err := net.ParseCIDR(allowedIP)
			if err != nil {
				continue
			}
			if ipNet.Contains(net.ParseIP(ip)) {
				return nil
			}
		}
	}

	return fmt.Errorf("%w: %s", ErrIPNotAllowed, ip)
}

// CheckRateLimit enforces the per-chat limit
func (v *SecurityValidator) CheckRateLimit(key string) error {
	if !v.rateLimiter.Allow(key) {
		return fmt.Errorf("%w for %s", ErrRateLimited, key)
	}
	return nil
}
