package usecase

import (
	"context"
	"fmt"
	"strings"

	"mindbet-bot/internal/advisor"
	"mindbet-bot/pkg/llmprovider"
)

// Chat answers a prediction question in the analyst voice.
func (uc *implUseCase) Chat(ctx context.Context, text string, name string) (string, error) {
	reply, err := uc.generate(ctx, llmprovider.UserPrompt(promptChatSystem, text, temperature, chatMaxTokens))
	if err != nil {
		return "", fmt.Errorf("%s: %w", LogPrefixChat, err)
	}
	uc.l.Debugf(ctx, "%s: answered %s", LogPrefixChat, name)
	return reply, nil
}

// Feedback comments on stats in an encouraging tone.
func (uc *implUseCase) Feedback(ctx context.Context, stats advisor.Stats) (string, error) {
	recent := noRecentResults
	if len(stats.RecentResults) > 0 {
		shown := stats.RecentResults
		if len(shown) > recentShown {
			shown = shown[:recentShown]
		}
		recent = strings.Join(shown, ", ")
	}

	prompt := fmt.Sprintf(promptFeedbackUser, stats.TotalBets, stats.WinBets, stats.WinRate(), stats.TotalPnL, recent)
	reply, err := uc.generate(ctx, llmprovider.UserPrompt(promptFeedbackSystem, prompt, temperature, feedbackMaxTokens))
	if err != nil {
		return "", fmt.Errorf("%s: %w", LogPrefixFeedback, err)
	}
	return reply, nil
}

func (uc *implUseCase) generate(ctx context.Context, req *llmprovider.Request) (string, error) {
	if uc.llm == nil {
		return "", advisor.ErrNoGenerator
	}
	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}
	reply := strings.TrimSpace(resp.Content)
	if reply == "" {
		return "", advisor.ErrEmptyReply
	}
	return reply, nil
}
