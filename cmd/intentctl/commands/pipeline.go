package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"mindbet-bot/config"
	"mindbet-bot/internal/hotspot"
	hotspotUC "mindbet-bot/internal/hotspot/usecase"
	"mindbet-bot/internal/intent"
	intentUC "mindbet-bot/internal/intent/usecase"
	"mindbet-bot/internal/keyword"
	"mindbet-bot/internal/model"
	"mindbet-bot/internal/router"
	"mindbet-bot/pkg/llmprovider"
	"mindbet-bot/pkg/log"
)

// pipeline is the intent stack the subcommands run against.
type pipeline struct {
	l           log.Logger
	uc          intent.UseCase
	table       *keyword.Table
	hot         hotspot.UseCase
	keywordOnly bool
}

// newPipeline is replaced in tests.
var newPipeline = loadPipeline

func loadPipeline(ctx context.Context) (*pipeline, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level := "error"
	if verbose {
		level = "debug"
	}
	logger := log.Init(log.ZapConfig{
		Level:    level,
		Mode:     log.ModeDevelopment,
		Encoding: log.EncodingConsole,
		Output:   os.Stderr,
	})

	var (
		classifier router.Classifier
		hot        hotspot.UseCase
	)
	manager, err := llmprovider.NewManagerFromConfig(&cfg.LLM, logger)
	switch {
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		logger.Warn(ctx, "No LLM provider configured: keyword-only resolution")
	case err != nil:
		return nil, fmt.Errorf("initializing llm providers: %w", err)
	default:
		classifier = router.New(manager, logger, router.Config{
			Temperature: cfg.Intent.Temperature,
			MaxTokens:   cfg.Intent.MaxTokens,
			Timeout:     cfg.Intent.ClassifierTimeout,
		})
		hot = hotspotUC.New(logger, manager, cfg.Location(), cfg.Hotspot.CacheTTL)
	}

	return assemble(logger, classifier, hot, cfg.Intent.ConfidenceThreshold)
}

// assemble wires the resolver with a dry-run registry: dispatch reports what would run without touching the backend.
func assemble(logger log.Logger, classifier router.Classifier, hot hotspot.UseCase, threshold float64) (*pipeline, error) {
	registry, err := intent.NewCommandRegistry(dryRunEntries()...)
	if err != nil {
		return nil, err
	}

	table := keyword.DefaultTable()
	uc := intentUC.New(logger, keyword.New(table, ""), classifier, nil, registry, intentUC.Config{
		ConfidenceThreshold: threshold,
	})

	return &pipeline{
		l:           logger,
		uc:          uc,
		table:       table,
		hot:         hot,
		keywordOnly: classifier == nil,
	}, nil
}

func dryRunEntries() []intent.Entry {
	entries := make([]intent.Entry, 0, len(model.IntentCommands))
	for _, name := range model.IntentCommands {
		entries = append(entries, intent.Entry{
			Command: name,
			Handler: intent.HandlerFunc(func(ctx context.Context, inv intent.Invocation) (intent.Reply, error) {
				text := "/" + inv.Command
				if len(inv.Args) > 0 {
					text += " " + strings.Join(inv.Args, " ")
				}
				return intent.Reply{Text: text}, nil
			}),
		})
	}
	return entries
}
