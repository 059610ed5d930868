package usecase

import "time"

const (
	LogPrefixAnalyze = "internal.hotspot.usecase.Analyze"
)

const (
	promptAnalystSystem = "你是一个专业的热点事件分析师。请分析当前的热点话题，并生成适合预测市场的问题。\n" +
		"输出格式要求：\n" +
		"1. 标题：简短概括热点\n" +
		"2. 摘要：100字以内的摘要\n" +
		"3. 预测问题：3个可以用于预测市场的二元问题（是/否类型）"

	promptAnalystUser = "请分析今天的热点事件，重点关注：加密货币、体育赛事、科技新闻、国际政治等领域。"
)

const (
	reportTitle   = "今日热点"
	summaryRunes  = 200
	temperature   = 0.7
	maxTokens     = 2000
	DefaultTTL    = 30 * time.Minute
	cacheCapacity = 8
)
