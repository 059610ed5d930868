package http

import (
	"mindbet-bot/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the AI endpoints under rg (normally /api/v1/ai).
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.Recovery())
	rg.POST("/intent", h.Resolve)
	rg.GET("/hot-events", h.HotEvents)
}
