package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"mindbet-bot/config"
	_ "mindbet-bot/docs" // Swagger docs
	"mindbet-bot/internal/advisor"
	advisorUC "mindbet-bot/internal/advisor/usecase"
	"mindbet-bot/internal/command"
	"mindbet-bot/internal/hotspot"
	hotspotUC "mindbet-bot/internal/hotspot/usecase"
	"mindbet-bot/internal/httpserver"
	"mindbet-bot/internal/intent"
	intentHTTP "mindbet-bot/internal/intent/delivery/http"
	intentUC "mindbet-bot/internal/intent/usecase"
	"mindbet-bot/internal/keyword"
	"mindbet-bot/internal/router"
	"mindbet-bot/pkg/backend"
	"mindbet-bot/pkg/llmprovider"
	"mindbet-bot/pkg/log"
)

// @title       MindBet Bot API
// @description Intent resolution for the MindBet prediction-market chat bot.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Errorf(ctx, "Server stopped with error: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	logger.Info(ctx, "Starting MindBet bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.URL)

	loc := cfg.Location()

	// 3. LLM capability (optional)
	var (
		classifier router.Classifier
		hot        hotspot.UseCase
		adv        advisor.UseCase
	)
	manager, err := llmprovider.NewManagerFromConfig(&cfg.LLM, logger)
	switch {
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		logger.Warn(ctx, "No LLM provider configured: intents resolve by keyword only, /hot and chat replies are unavailable")
	case err != nil:
		return fmt.Errorf("init llm providers: %w", err)
	default:
		logger.Infof(ctx, "LLM providers (by priority): %v", manager.Providers())
		classifier = router.New(manager, logger, router.Config{
			Temperature: cfg.Intent.Temperature,
			MaxTokens:   cfg.Intent.MaxTokens,
			Timeout:     cfg.Intent.ClassifierTimeout,
		})
		hot = hotspotUC.New(logger, manager, loc, cfg.Hotspot.CacheTTL)
		adv = advisorUC.New(logger, manager)
	}

	// 4. Commands and the intent pipeline
	be := backend.New(backend.Config{
		BaseURL: cfg.Backend.URL,
		Timeout: cfg.Backend.Timeout,
	})
	commands := command.New(logger, be, hot, adv, command.Config{
		MiniAppURL: cfg.MiniApp.URL,
		SiteURL:    cfg.Site.URL,
		Location:   loc,
	})
	registry, err := intent.NewCommandRegistry(commands.Entries()...)
	if err != nil {
		return fmt.Errorf("build command registry: %w", err)
	}
	uc := intentUC.New(
		logger,
		keyword.New(keyword.DefaultTable(), ""),
		classifier,
		adv,
		registry,
		intentUC.Config{ConfidenceThreshold: cfg.Intent.ConfidenceThreshold},
	)

	g, gctx := errgroup.WithContext(ctx)

	// 5. Chat transport
	tg, err := startTelegram(ctx, logger, cfg.Telegram, uc, commands)
	if err != nil {
		return err
	}
	if tg.poller != nil {
		g.Go(func() error { return tg.poller.Run(gctx) })
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		TrustedProxies:     cfg.HTTPServer.TrustedProxies,
		APIRateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		TelegramHandler:    tg.webhook,
		IntentHandler:      intentHTTP.New(logger, uc, hot),
		KeywordOnly:        classifier == nil,
	})
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}
	g.Go(func() error { return httpServer.Run(gctx) })

	// 7. Run until a signal or the first failure
	return g.Wait()
}
