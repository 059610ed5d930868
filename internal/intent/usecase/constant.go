package usecase

// Log prefixes
const (
	LogPrefixResolve  = "internal.intent.usecase.Resolve"
	LogPrefixDispatch = "internal.intent.usecase.Dispatch"
	LogPrefixHandle   = "internal.intent.usecase.Handle"
)

// DefaultConfidenceThreshold is the exclusive lower bound for an actionable record.
const DefaultConfidenceThreshold = 0.6

// Reply templates
const (
	unsupportedTemplate = "识别到命令 `%s`，但该命令暂不支持。\n\n输入 /help 查看可用命令。"

	greetingTemplate = "你好 %s！我是 MindBet 预测市场助手。\n\n" +
		"你可以用自然语言和我交流，例如：\n" +
		"• \"我要登录\"\n" +
		"• \"有什么市场\"\n" +
		"• \"查看余额\"\n\n" +
		"输入 /help 查看所有可用命令。"
)

// Callback data shared with the chat transport
const (
	callbackMarkets = "markets"
	callbackHot     = "hot"
)
