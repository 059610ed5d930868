package telegram

import "time"

const (
	LogPrefixWebhook  = "internal.intent.delivery.telegram.HandleWebhook"
	LogPrefixMessage  = "internal.intent.delivery.telegram.processMessage"
	LogPrefixCallback = "internal.intent.delivery.telegram.processCallback"
	LogPrefixPoller   = "internal.intent.delivery.telegram.Poller"
)

const (
	DefaultProcessTimeout  = 60 * time.Second
	DefaultPollTimeout     = 30 * time.Second
	DefaultMaxConcurrency  = 16
	DefaultMinBackoff      = time.Second
	DefaultMaxBackoff      = 30 * time.Second
	DefaultRateLimitPerMin = 20
)

const (
	msgRateLimited  = "请求过于频繁，请稍后再试。"
	msgHandlerError = "处理消息时出错: %v\n\n请稍后重试，或输入 /help 查看可用命令。"
)
