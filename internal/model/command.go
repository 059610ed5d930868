package model

// Command names understood by the bot.
const (
	CommandStart      = "start"
	CommandLogin      = "login"
	CommandLogout     = "logout"
	CommandMarkets    = "markets"
	CommandMarket     = "market"
	CommandBet        = "bet"
	CommandClaim      = "claim"
	CommandRefund     = "refund"
	CommandProfile    = "profile"
	CommandBalance    = "balance"
	CommandMyBets     = "mybets"
	CommandClaimable  = "claimable"
	CommandRefundable = "refundable"
	CommandResolved   = "resolved"
	CommandHelp       = "help"
	CommandHot        = "hot"
	CommandCreate     = "create"
	CommandResolve    = "resolve"
	CommandCancel     = "cancel"
)

// SlashCommands are reachable only as explicit slash commands, in definition order.
var SlashCommands = []string{
	CommandStart,
	CommandCreate,
	CommandResolve,
	CommandCancel,
}

// IntentCommands is the closed command set an intent may name, in definition order.
var IntentCommands = []string{
	CommandLogin,
	CommandLogout,
	CommandMarkets,
	CommandMarket,
	CommandBet,
	CommandClaim,
	CommandRefund,
	CommandProfile,
	CommandBalance,
	CommandMyBets,
	CommandClaimable,
	CommandRefundable,
	CommandResolved,
	CommandHelp,
	CommandHot,
}
