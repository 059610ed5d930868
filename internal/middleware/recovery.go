package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"mindbet-bot/pkg/response"
)

// Recovery turns a panic into a 500 {success:false, error} envelope.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		m.l.Errorf(c.Request.Context(), "internal.middleware.Recovery: panic recovered: %v", recovered)
		response.InternalError(c, fmt.Errorf("%v", recovered))
		c.Abort()
	})
}
