package keyword

import "mindbet-bot/internal/model"

// MatchConfidence is the fixed confidence of every keyword hit.
const MatchConfidence = 0.8

// HelpReply is the canned reply returned when no trigger phrase matches.
const HelpReply = "你好！我是 MindBet 预测市场助手。\n\n" +
	"你可以用自然语言和我交流，例如：\n" +
	"• \"我要登录\"\n" +
	"• \"有什么市场\"\n" +
	"• \"查看余额\"\n\n" +
	"输入 /help 查看所有可用命令。"

// defaultEntries is the production trigger table. Order is significant:
// the first command with a matching phrase wins.
var defaultEntries = []Entry{
	{Command: model.CommandLogin, Phrases: []string{"登录", "绑定钱包", "连接钱包", "我要登录", "login", "绑定"}},
	{Command: model.CommandLogout, Phrases: []string{"解绑", "退出登录", "注销", "logout", "解除绑定"}},
	{Command: model.CommandMarkets, Phrases: []string{"市场", "有什么市场", "查看市场", "市场列表", "markets", "看市场"}},
	{Command: model.CommandMarket, Phrases: []string{"市场详情", "查看某个市场", "market"}},
	{Command: model.CommandBet, Phrases: []string{"下注", "我要下注", "投注", "bet", "买"}},
	{Command: model.CommandClaim, Phrases: []string{"领奖", "领取奖金", "claim", "领钱"}},
	{Command: model.CommandRefund, Phrases: []string{"退款", "领取退款", "refund"}},
	{Command: model.CommandProfile, Phrases: []string{"战绩", "我的战绩", "个人资料", "我的数据", "profile", "个人信息"}},
	{Command: model.CommandBalance, Phrases: []string{"余额", "我的余额", "钱包余额", "balance", "查余额"}},
	{Command: model.CommandMyBets, Phrases: []string{"我的下注", "下注记录", "历史记录", "mybets", "投注记录"}},
	{Command: model.CommandClaimable, Phrases: []string{"可领奖", "能领奖的", "claimable"}},
	{Command: model.CommandRefundable, Phrases: []string{"可退款", "能退款的", "refundable"}},
	{Command: model.CommandResolved, Phrases: []string{"已结算", "结算了的", "resolved"}},
	{Command: model.CommandHelp, Phrases: []string{"帮助", "怎么用", "使用说明", "help", "教程"}},
	{Command: model.CommandHot, Phrases: []string{"热点", "今日热点", "热门", "hot"}},
}
