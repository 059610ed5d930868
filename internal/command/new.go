package command

import (
	"strings"
	"time"

	"mindbet-bot/internal/advisor"
	"mindbet-bot/internal/hotspot"
	"mindbet-bot/internal/intent"
	"mindbet-bot/internal/model"
	"mindbet-bot/pkg/backend"
	pkgLog "mindbet-bot/pkg/log"
)

// Handlers implements every bot command against the MindBet backend.
type Handlers struct {
	l          pkgLog.Logger
	backend    backend.IClient
	hot        hotspot.UseCase
	advisor    advisor.UseCase
	miniAppURL string
	siteURL    string
	location   *time.Location
}

// New creates the command handlers. hot and adv may be nil when no LLM provider is configured.
func New(l pkgLog.Logger, be backend.IClient, hot hotspot.UseCase, adv advisor.UseCase, cfg Config) *Handlers {
	if cfg.SiteURL == "" {
		cfg.SiteURL = DefaultSiteURL
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Handlers{
		l:          l,
		backend:    be,
		hot:        hot,
		advisor:    adv,
		miniAppURL: strings.TrimRight(cfg.MiniAppURL, "/"),
		siteURL:    strings.TrimRight(cfg.SiteURL, "/"),
		location:   cfg.Location,
	}
}

// Entries returns the registry entries: the intent command set in order, then the slash-only creator commands.
func (h *Handlers) Entries() []intent.Entry {
	byName := map[string]intent.HandlerFunc{
		model.CommandLogin:      h.Login,
		model.CommandLogout:     h.Logout,
		model.CommandMarkets:    h.Markets,
		model.CommandMarket:     h.Market,
		model.CommandBet:        h.Bet,
		model.CommandClaim:      h.Claim,
		model.CommandRefund:     h.Refund,
		model.CommandProfile:    h.Profile,
		model.CommandBalance:    h.Balance,
		model.CommandMyBets:     h.MyBets,
		model.CommandClaimable:  h.Claimable,
		model.CommandRefundable: h.Refundable,
		model.CommandResolved:   h.Resolved,
		model.CommandHelp:       h.Start,
		model.CommandHot:        h.Hot,
	}

	slashOnly := map[string]intent.HandlerFunc{
		model.CommandStart:   h.Start,
		model.CommandCreate:  h.Create,
		model.CommandResolve: h.Resolve,
		model.CommandCancel:  h.Cancel,
	}

	entries := make([]intent.Entry, 0, len(model.IntentCommands)+len(model.SlashCommands))
	for _, name := range model.IntentCommands {
		if fn, ok := byName[name]; ok {
			entries = append(entries, intent.Entry{Command: name, Handler: fn})
		}
	}
	for _, name := range model.SlashCommands {
		entries = append(entries, intent.Entry{Command: name, Handler: slashOnly[name], SlashOnly: true})
	}
	return entries
}
