package intent

// Caller identifies who sent a message and where.
type Caller struct {
	TelegramID int64
	Username   string
	FirstName  string
	ChatID     int64
	ChatType   string
}

// DisplayName is the first name, or "用户" when unknown.
func (c Caller) DisplayName() string {
	if c.FirstName == "" {
		return "用户"
	}
	return c.FirstName
}

// Invocation is a command call handed to a Handler.
type Invocation struct {
	Command string
	Args    []string
	Caller  Caller
}

// Arg returns the i-th argument or "".
func (inv Invocation) Arg(i int) string {
	if i < 0 || i >= len(inv.Args) {
		return ""
	}
	return inv.Args[i]
}

// Parse modes understood by the chat transport.
const (
	ParseModeNone     = ""
	ParseModeMarkdown = "Markdown"
	ParseModeHTML     = "HTML"
)

// Reply is the message a handler wants sent back.
type Reply struct {
	Text      string
	ParseMode string
	Buttons   [][]Button
}

// Button is an inline keyboard button; exactly one of URL or CallbackData is set.
type Button struct {
	Text         string
	URL          string
	CallbackData string
}

// OutcomeKind classifies what Dispatch did.
type OutcomeKind string

const (
	OutcomeExecuted       OutcomeKind = "executed"
	OutcomeUnsupported    OutcomeKind = "unsupported"
	OutcomeConversational OutcomeKind = "conversational"
)

// Outcome is the result of dispatching a record.
type Outcome struct {
	Kind    OutcomeKind
	Command string
	Reply   Reply
}

// Entry binds a command name to its handler.
// A SlashOnly entry runs only as an explicit slash command, never from a classified intent.
type Entry struct {
	Command   string
	Handler   Handler
	SlashOnly bool
}
