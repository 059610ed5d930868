package usecase

import (
	"context"

	"mindbet-bot/internal/intent"
	"mindbet-bot/internal/model"
)

// Resolve runs the keyword matcher and falls back to the LLM classifier on a miss.
// Classifier failures degrade to the matcher's no-intent record.
func (uc *implUseCase) Resolve(ctx context.Context, text string) model.IntentRecord {
	record := uc.matcher.Match(text)
	if record.HasIntent {
		uc.l.Debugf(ctx, "%s: keyword hit %q", LogPrefixResolve, record.CommandName())
		return record
	}

	if uc.classifier == nil {
		return record
	}

	classified, err := uc.classifier.Classify(ctx, text)
	if err != nil {
		uc.l.Warnf(ctx, "%s: classifier failed, using keyword result: %v", LogPrefixResolve, err)
		return record
	}
	return classified
}

// Handle resolves text and dispatches the resulting record.
// A conversational outcome without a canned reply is answered by the chat responder when one is set;
// the greeting stays when it fails.
func (uc *implUseCase) Handle(ctx context.Context, text string, caller intent.Caller) (model.IntentRecord, intent.Outcome, error) {
	record := uc.Resolve(ctx, text)
	uc.l.Infof(ctx, "%s: has_intent=%t command=%q confidence=%.2f",
		LogPrefixResolve, record.HasIntent, record.CommandName(), record.Confidence)

	outcome, err := uc.Dispatch(ctx, record, caller)
	if err != nil || outcome.Kind != intent.OutcomeConversational || record.ReplyText() != "" || uc.chat == nil {
		return record, outcome, err
	}

	answer, err := uc.chat.Chat(ctx, text, caller.DisplayName())
	if err != nil {
		uc.l.Warnf(ctx, "%s: chat responder failed, sending greeting: %v", LogPrefixHandle, err)
		return record, outcome, nil
	}
	outcome.Reply = intent.Reply{Text: answer}
	return record, outcome, nil
}
