package command

const (
	LogPrefixMarkets  = "internal.command.Markets"
	LogPrefixMarket   = "internal.command.Market"
	LogPrefixAccount  = "internal.command.Account"
	LogPrefixTrade    = "internal.command.Trade"
	LogPrefixHot      = "internal.command.Hot"
	LogPrefixCallback = "internal.command.Callback"
	LogPrefixProfile  = "internal.command.Profile"
)

const (
	// Currency is the native token symbol amounts are shown in.
	Currency = "MON"

	// DefaultSiteURL is the public website.
	DefaultSiteURL = "https://mindbet.io"

	// QuickBetAmount is the stake used by the bet_yes_/bet_no_ buttons.
	QuickBetAmount = "0.001"

	estimatedGas     = 0.003
	marketsShown     = 5
	historyShown     = 10
	feedbackRecent   = 5
	hashShort        = 10
	addrTail         = 8
	hotSummaryRunes  = 500
	descriptionRunes = 200
)

// Callback data understood by the chat transport.
const (
	CallbackMarkets        = "markets"
	CallbackHot            = "hot"
	CallbackMyBets         = "mybets"
	CallbackRefreshBalance = "refresh_balance"
	CallbackCancelUnbind   = "cancel_unbind"
	CallbackConfirmUnbind  = "confirm_unbind"

	CallbackPrefixMarket = "market_"
	CallbackPrefixBets   = "bets_"
	CallbackPrefixBetYes = "bet_yes_"
	CallbackPrefixBetNo  = "bet_no_"
	CallbackPrefixClaim  = "claim_"
	CallbackPrefixRefund = "refund_"
)

const (
	msgWelcome = "🎰 **欢迎来到 MindBet!**\n\n" +
		"MindBet 是基于 Monad 链的去中心化预测市场平台，使用 MON 代币进行交易。\n\n" +
		"**快速开始:**\n" +
		"1️⃣ 绑定钱包: /login\n" +
		"2️⃣ 查看市场: /markets\n" +
		"3️⃣ 开始下注: /bet <id> <yes/no> <金额>\n\n" +
		"**可用命令:**\n" +
		"/help - 查看所有命令\n" +
		"/markets - 查看活跃市场\n" +
		"/market <id> - 查看市场详情\n" +
		"/mybets - 查看我的下注\n" +
		"/claimable - 查看可领奖议题\n" +
		"/refundable - 查看可退款议题\n" +
		"/resolved - 查看已结算议题\n" +
		"/bet <id> <yes/no> <amount> - 下注\n" +
		"/claim <id> - 领取奖金\n" +
		"/refund <id> - 领取退款\n" +
		"/profile - 查看我的战绩\n" +
		"/balance - 查询钱包余额\n" +
		"/hot - 获取今日热点话题\n" +
		"/login - 绑定钱包\n" +
		"/logout - 解绑钱包\n\n" +
		"**创建者命令:**\n" +
		"/create - 创建议题指南\n" +
		"/resolve <id> <yes/no> - 结算议题\n" +
		"/cancel <id> - 取消议题\n\n" +
		"也可以直接用自然语言告诉我你想做什么，例如「看看市场」。\n\n" +
		"开始预测吧！ 🎯"

	msgLogin = "🔐 **绑定钱包**\n\n" +
		"请点击下方按钮连接钱包并绑定到您的 Telegram 账号。\n\n" +
		"绑定后即可使用 Bot 进行交易！"

	msgNotBound      = "您还未绑定钱包。"
	msgBindFirst     = "请先绑定钱包：/login"
	msgUnbindConfirm = "⚠️ **确认解绑钱包？**\n\n当前绑定: `%s`\n\n解绑后需要重新绑定才能使用交易功能。"
	msgUnbindDone    = "✅ 钱包已解绑\n\n使用 /login 重新绑定钱包"
	msgUnbindFailed  = "解绑失败: %s"
	msgUnbindCancel  = "已取消解绑。"
	msgUnknownError  = "未知错误"

	msgMarketsFailed  = "获取市场失败，请稍后重试。"
	msgMarketsEmpty   = "暂无活跃的市场。"
	msgMarketsHeader  = "📊 **活跃市场**\n\n"
	msgMarketsFooter  = "\n点击下方按钮查看详情，或使用 /market <content_hash>"
	msgMarketUsage    = "请提供市场内容哈希。用法: /market <content_hash>"
	msgMarketNotFound = "市场不存在。"

	msgBetsFailed        = "获取下注记录失败。"
	msgBetsEmpty         = "您还没有下注记录。"
	msgMyBetsHeader      = "📊 **我的下注**\n\n"
	msgBetHistoryHeader  = "📊 **下注历史**\n\n"
	msgClaimableEmpty    = "暂无可领奖的议题。"
	msgClaimableHeader   = "💰 **可领奖议题**\n\n"
	msgRefundableEmpty   = "暂无可退款的议题。"
	msgRefundableHeader  = "🔄 **可退款议题**\n\n"
	msgResolvedFailed    = "获取已结算市场失败。"
	msgResolvedEmpty     = "暂无已结算的市场。"
	msgResolvedHeader    = "✅ **已结算议题**\n\n"
	msgProfileNotFound   = "用户资料不存在。"
	msgBetUsage          = "用法: /bet <market_id> <yes/no> <amount>\n示例: /bet abc123... yes 0.5"
	msgBetDirection      = "方向必须是 yes 或 no"
	msgBetAmount         = "金额必须是大于 0 的数字"
	msgClaimUsage        = "用法: /claim <market_id>\n示例: /claim abc123..."
	msgClaimNotResolved  = "该市场尚未结算。"
	msgRefundUsage       = "用法: /refund <market_id>\n示例: /refund abc123..."
	msgRefundNotCanceled = "该市场未被取消。"
	msgHotFailed         = "获取热点失败，请稍后重试。"

	msgCreateGuide = "📝 **创建议题指南**\n\n" +
		"创建议题需要通过网页端操作:\n\n" +
		"1. 访问首页连接钱包\n" +
		"2. 点击\"创建议题\"\n" +
		"3. 填写议题信息: 标题、描述、截止时间、分类\n" +
		"4. 支付押金(1 %s)\n" +
		"5. 确认交易\n\n" +
		"创建者可在议题结算后取回押金。\n" +
		"如果议题被取消，押金将退还。\n\n" +
		"开始创建你的预测议题吧! 🎯"
	msgResolveUsage     = "用法: /resolve <market_id> <yes/no>\n\n只有创建者可以结算议题。"
	msgResolveDirection = "结果必须是 yes 或 no"
	msgResolveConfirm   = "✅ **结算议题**\n\n市场: #%s...\n结果: %s\n\n只有创建者可以结算议题。"
	msgCancelUsage      = "用法: /cancel <market_id>\n\n只有创建者可以取消议题。"
	msgCancelConfirm    = "❌ **取消议题**\n\n市场: #%s...\n\n只有创建者可以取消议题。取消后押金退还，所有下注退款。"

	msgFeedbackPrefix = "\n\n💬 "
)
