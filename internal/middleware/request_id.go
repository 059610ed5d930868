package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mindbet-bot/pkg/log"
)

// RequestID attaches a request ID to the request context, reusing a sane inbound X-Request-ID.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// AccessLog logs one line per request after it completes.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)
		path := c.Request.URL.Path

		switch {
		case status >= 500:
			m.l.Error(ctx, "http request", "method", c.Request.Method, "path", path, "status", status, "latency", latency)
		case status >= 400:
			m.l.Warn(ctx, "http request", "method", c.Request.Method, "path", path, "status", status, "latency", latency)
		default:
			m.l.Debug(ctx, "http request", "method", c.Request.Method, "path", path, "status", status, "latency", latency)
		}
	}
}
