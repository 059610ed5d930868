package telegram

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	pkgLog "mindbet-bot/pkg/log"
	pkgTelegram "mindbet-bot/pkg/telegram"
)

// Updater fetches updates with getUpdates.
type Updater interface {
	GetUpdates(ctx context.Context, req pkgTelegram.GetUpdatesRequest) ([]pkgTelegram.Update, error)
}

// UpdateProcessor handles one update.
type UpdateProcessor interface {
	ProcessUpdate(ctx context.Context, update pkgTelegram.Update) error
}

// Poller long-polls getUpdates and fans updates out to a bounded set of workers.
type Poller struct {
	l    pkgLog.Logger
	bot  Updater
	proc UpdateProcessor
	cfg  PollerConfig
	sem  *semaphore.Weighted
}

// NewPoller creates a Poller. Use it instead of the webhook when no public URL is available.
func NewPoller(l pkgLog.Logger, bot Updater, proc UpdateProcessor, cfg PollerConfig) *Poller {
	cfg.setDefaults()
	return &Poller{
		l:    l,
		bot:  bot,
		proc: proc,
		cfg:  cfg,
		sem:  semaphore.NewWeighted(cfg.MaxConcurrency),
	}
}

// Run polls until ctx is cancelled, then waits for in-flight updates to finish.
func (p *Poller) Run(ctx context.Context) error {
	runID := uuid.NewString()
	p.l.Infof(ctx, "%s: run %s started (timeout=%s, workers=%d)", LogPrefixPoller, runID, p.cfg.Timeout, p.cfg.MaxConcurrency)

	var (
		g       errgroup.Group
		offset  int64
		backoff = p.cfg.MinBackoff
	)

poll:
	for ctx.Err() == nil {
		updates, err := p.fetch(ctx, offset)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			p.l.Warnf(ctx, "%s: getUpdates failed, retrying in %s: %v", LogPrefixPoller, backoff, err)
			select {
			case <-ctx.Done():
				break poll
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, p.cfg.MaxBackoff)
			continue
		}
		backoff = p.cfg.MinBackoff

		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			if err := p.sem.Acquire(ctx, 1); err != nil {
				break poll
			}

			g.Go(func() error {
				defer p.sem.Release(1)
				p.process(ctx, update)
				return nil
			})
		}
	}

	_ = g.Wait()
	p.l.Infof(context.WithoutCancel(ctx), "%s: run %s stopped at offset %d", LogPrefixPoller, runID, offset)
	return nil
}

func (p *Poller) fetch(ctx context.Context, offset int64) ([]pkgTelegram.Update, error) {
	// Bound the long poll so a dead connection cannot hang the loop
	fetchCtx, cancel := context.WithTimeout(ctx, p.cfg.Timeout+10*time.Second)
	defer cancel()

	return p.bot.GetUpdates(fetchCtx, pkgTelegram.GetUpdatesRequest{
		Offset:         offset,
		Timeout:        int(p.cfg.Timeout / time.Second),
		AllowedUpdates: pkgTelegram.DefaultAllowedUpdates,
	})
}

func (p *Poller) process(parent context.Context, update pkgTelegram.Update) {
	// In-flight updates finish even when polling stops
	ctx := pkgLog.WithRequestID(context.WithoutCancel(parent), uuid.NewString())
	ctx, cancel := context.WithTimeout(ctx, p.cfg.ProcessTimeout)
	defer cancel()

	if err := p.proc.ProcessUpdate(ctx, update); err != nil {
		p.l.Errorf(ctx, "%s: update %d failed: %v", LogPrefixPoller, update.UpdateID, err)
	}
}
