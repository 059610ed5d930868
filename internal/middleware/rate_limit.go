package middleware

import (
	"github.com/gin-gonic/gin"

	"mindbet-bot/pkg/ratelimit"
	"mindbet-bot/pkg/response"
)

// RateLimit throttles each client IP to requestsPerMin; zero or less disables it.
func (m Middleware) RateLimit(requestsPerMin int) gin.HandlerFunc {
	limiter := ratelimit.New(requestsPerMin)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.Allow(ip) {
			m.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: %s exceeded %d/min on %s", ip, requestsPerMin, c.Request.URL.Path)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
