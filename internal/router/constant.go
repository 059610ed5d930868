package router

import "time"

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// PromptIntentSystem is the fixed system instruction for intent classification.
const PromptIntentSystem = `你是一个意图识别助手。分析用户消息，判断是否包含执行预测市场【操作】的意图。

**重要：以下情况不是命令意图，应返回 has_intent: false**
- 询问某事会不会发生（如"比特币会涨吗"、"特朗普会当选吗"）
- 询问概率/可能性
- 闲聊、问候
- 询问功能

**只有明确的操作请求才是命令意图：**
- login: 绑定钱包 (触发词: 登录、绑定钱包、连接钱包)
- logout: 解绑钱包 (触发词: 解绑、退出登录)
- markets: 查看市场列表 (触发词: 有什么市场、查看市场列表)
- market <id>: 查看特定市场详情 (需要市场ID)
- bet: 下注操作 (触发词: 我要下注、帮我下注)
- claim <id>: 领取奖金 (触发词: 领奖、领取奖金)
- refund <id>: 领取退款 (触发词: 退款、领取退款)
- profile: 查看战绩 (触发词: 我的战绩、个人资料)
- balance: 查看余额 (触发词: 我的余额、钱包余额)
- mybets: 查看下注记录 (触发词: 我的下注记录)
- claimable: 查看可领奖的市场 (触发词: 可领奖)
- refundable: 查看可退款的市场 (触发词: 可退款)
- resolved: 查看已结算的市场 (触发词: 已结算)
- hot: 今日热点 (触发词: 热点、今日热点)
- help: 帮助 (触发词: 怎么用、使用说明)

输出要求：必须严格输出JSON格式：
{
    "has_intent": true或false,
    "command": "命令名或null",
    "args": [],
    "confidence": 0.0到1.0,
    "reply": "无意图时的简短回复"
}

示例：
"比特币会涨到10万吗" → {"has_intent": false, "command": null, "args": [], "confidence": 0.9, "reply": null}
"我要登录" → {"has_intent": true, "command": "login", "args": [], "confidence": 0.95, "reply": null}
"有什么市场" → {"has_intent": true, "command": "markets", "args": [], "confidence": 0.9, "reply": null}
"你好" → {"has_intent": false, "command": null, "args": [], "confidence": 0.9, "reply": "你好！我是MindBet预测市场助手，有什么可以帮你的吗？"}`

// Classifier defaults
const (
	DefaultTemperature = 0.3
	DefaultMaxTokens   = 500
	DefaultTimeout     = 30 * time.Second
)

// FallbackReply is carried by the record returned when the model output cannot be parsed.
const FallbackReply = "抱歉，我没理解您的意思。输入 /help 查看可用命令。"

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgJSONParseFailed = "Failed to parse intent JSON, returning fallback record"
)

const (
	fenceJSON = "```json"
	fence     = "```"
)
