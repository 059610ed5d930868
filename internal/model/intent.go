package model

// IntentRecord is the structured result of interpreting one chat message.
type IntentRecord struct {
	HasIntent  bool     `json:"has_intent"`
	Command    *string  `json:"command"`
	Args       []string `json:"args"`
	Confidence float64  `json:"confidence"`
	Reply      *string  `json:"reply"`
}

// NewIntent returns an actionable-shaped record for command.
func NewIntent(command string, args []string, confidence float64) IntentRecord {
	if args == nil {
		args = []string{}
	}
	return IntentRecord{
		HasIntent:  true,
		Command:    &command,
		Args:       args,
		Confidence: confidence,
	}
}

// NewNoIntent returns a record without a command, carrying reply when non-empty.
func NewNoIntent(confidence float64, reply string) IntentRecord {
	r := IntentRecord{
		Args:       []string{},
		Confidence: confidence,
	}
	if reply != "" {
		r.Reply = &reply
	}
	return r
}

// CommandName returns the command or "" when absent.
func (r IntentRecord) CommandName() string {
	if r.Command == nil {
		return ""
	}
	return *r.Command
}

// ReplyText returns the reply or "" when absent.
func (r IntentRecord) ReplyText() string {
	if r.Reply == nil {
		return ""
	}
	return *r.Reply
}
