package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	intentHTTP "mindbet-bot/internal/intent/delivery/http"
	tgDelivery "mindbet-bot/internal/intent/delivery/telegram"
	"mindbet-bot/internal/middleware"
	"mindbet-bot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin          *gin.Engine
	l            log.Logger
	port         int
	mode         string
	environment  string
	apiRateLimit int
	mw           middleware.Middleware

	// Intent domain
	telegramHandler tgDelivery.Handler
	intentHandler   intentHTTP.Handler
	keywordOnly     bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	// TrustedProxies may set X-Forwarded-For; empty trusts none.
	TrustedProxies []string
	// APIRateLimitPerMin throttles /api/v1/ai per client IP; zero disables it.
	APIRateLimitPerMin int

	// TelegramHandler is nil when updates arrive by polling only.
	TelegramHandler tgDelivery.Handler
	IntentHandler   intentHTTP.Handler

	// KeywordOnly is reported by /ready when no LLM provider is configured.
	KeywordOnly bool
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		apiRateLimit:    cfg.APIRateLimitPerMin,
		mw:              middleware.New(logger),
		telegramHandler: cfg.TelegramHandler,
		intentHandler:   cfg.IntentHandler,
		keywordOnly:     cfg.KeywordOnly,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.intentHandler == nil {
		return errors.New("intent handler is required")
	}
	return nil
}
