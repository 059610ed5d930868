package router

import (
	"context"
	"fmt"

	"mindbet-bot/internal/model"
	"mindbet-bot/pkg/llmprovider"
)

// Classify asks the LLM for an intent record.
// Unparseable output yields FallbackRecord with a nil error; transport failures wrap ErrClassifierUnavailable.
func (r *IntentClassifier) Classify(ctx context.Context, text string) (model.IntentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	req := llmprovider.UserPrompt(PromptIntentSystem, text, r.cfg.Temperature, r.cfg.MaxTokens)
	resp, err := r.llm.GenerateContent(ctx, req)
	if err != nil {
		return model.IntentRecord{}, fmt.Errorf("%s: %s: %w: %w", LogPrefixClassify, ErrMsgLLMCallFailed, ErrClassifierUnavailable, err)
	}

	record, err := ParseRecord(ExtractJSON(resp.Content))
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgJSONParseFailed, err)
		return FallbackRecord(), nil
	}

	r.l.Infof(ctx, "%s: Classified as %q (has_intent=%t, confidence=%.2f, provider=%s)",
		LogPrefixClassify, record.CommandName(), record.HasIntent, record.Confidence, resp.ProviderName)
	return record, nil
}
