package usecase

import (
	"context"
	"fmt"

	"mindbet-bot/internal/intent"
	"mindbet-bot/internal/model"
)

// Dispatch gates record on confidence and routes it.
// A handler error is returned as-is.
func (uc *implUseCase) Dispatch(ctx context.Context, record model.IntentRecord, caller intent.Caller) (intent.Outcome, error) {
	if !uc.actionable(record) {
		return intent.Outcome{
			Kind:  intent.OutcomeConversational,
			Reply: conversationalReply(record, caller),
		}, nil
	}
	handler, ok := uc.registry.LookupIntent(*record.Command)
	return uc.invoke(ctx, handler, ok, *record.Command, record.Args, caller)
}

// Execute invokes the handler registered for command, bypassing the gate.
func (uc *implUseCase) Execute(ctx context.Context, command string, args []string, caller intent.Caller) (intent.Outcome, error) {
	handler, ok := uc.registry.Lookup(command)
	return uc.invoke(ctx, handler, ok, command, args, caller)
}

func (uc *implUseCase) invoke(ctx context.Context, handler intent.Handler, ok bool, command string, args []string, caller intent.Caller) (intent.Outcome, error) {
	if !ok {
		uc.l.Infof(ctx, "%s: unsupported command %q", LogPrefixDispatch, command)
		return intent.Outcome{
			Kind:    intent.OutcomeUnsupported,
			Command: command,
			Reply: intent.Reply{
				Text:      fmt.Sprintf(unsupportedTemplate, command),
				ParseMode: intent.ParseModeMarkdown,
			},
		}, nil
	}

	if args == nil {
		args = []string{}
	}
	reply, err := handler.Handle(ctx, intent.Invocation{Command: command, Args: args, Caller: caller})
	if err != nil {
		return intent.Outcome{Kind: intent.OutcomeExecuted, Command: command}, err
	}

	return intent.Outcome{Kind: intent.OutcomeExecuted, Command: command, Reply: reply}, nil
}

func (uc *implUseCase) actionable(record model.IntentRecord) bool {
	return record.HasIntent &&
		record.Command != nil &&
		*record.Command != "" &&
		record.Confidence > uc.threshold
}

func conversationalReply(record model.IntentRecord, caller intent.Caller) intent.Reply {
	if text := record.ReplyText(); text != "" {
		return intent.Reply{Text: text}
	}
	return intent.Reply{
		Text: fmt.Sprintf(greetingTemplate, caller.DisplayName()),
		Buttons: [][]intent.Button{{
			{Text: "📊 查看市场", CallbackData: callbackMarkets},
			{Text: "🔥 今日热点", CallbackData: callbackHot},
		}},
	}
}
