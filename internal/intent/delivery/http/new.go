package http

import (
	"github.com/gin-gonic/gin"

	"mindbet-bot/internal/hotspot"
	"mindbet-bot/internal/intent"
	"mindbet-bot/pkg/log"
)

// Handler is the HTTP delivery of the intent pipeline.
type Handler interface {
	Resolve(c *gin.Context)
	HotEvents(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  intent.UseCase
	hot hotspot.UseCase
}

// New creates the intent HTTP handler. hot may be nil when no LLM is configured.
func New(l log.Logger, uc intent.UseCase, hot hotspot.UseCase) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		hot: hot,
	}
}
