package telegram

import "time"

// Config holds the chat transport settings.
type Config struct {
	// BotID and BotUsername identify the bot for group mentions and replies.
	BotID       int64
	BotUsername string

	// SecretToken, when set, must match the X-Telegram-Bot-Api-Secret-Token header.
	SecretToken string
	// AllowedIPs optionally restricts webhook sources (plain IPs or CIDRs).
	AllowedIPs []string

	// RateLimitPerMin caps requests per chat; 0 disables the limit.
	RateLimitPerMin int
	ProcessTimeout  time.Duration
}

// PollerConfig holds long-polling settings.
type PollerConfig struct {
	Timeout        time.Duration
	MaxConcurrency int64
	ProcessTimeout time.Duration
	MinBackoff     time.Duration
	MaxBackoff     time.Duration
}

func (c *PollerConfig) setDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = DefaultPollTimeout
	}
	if c.MaxConcurrency <= 0 {
		c.MaxConcurrency = DefaultMaxConcurrency
	}
	if c.ProcessTimeout <= 0 {
		c.ProcessTimeout = DefaultProcessTimeout
	}
	if c.MinBackoff <= 0 {
		c.MinBackoff = DefaultMinBackoff
	}
	if c.MaxBackoff < c.MinBackoff {
		c.MaxBackoff = max(DefaultMaxBackoff, c.MinBackoff)
	}
}
