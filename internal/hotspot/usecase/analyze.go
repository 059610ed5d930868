package usecase

import (
	"context"
	"fmt"
	"strings"

	"mindbet-bot/internal/hotspot"
	"mindbet-bot/pkg/llmprovider"
)

// Analyze returns today's hot-topic report, calling the LLM at most once per cache window.
func (uc *implUseCase) Analyze(ctx context.Context) (hotspot.Report, error) {
	if uc.llm == nil {
		return hotspot.Report{}, hotspot.ErrNoGenerator
	}

	day := uc.now().In(uc.location).Format("2006-01-02")
	if report, ok := uc.cache.Get(day); ok {
		return report, nil
	}

	resp, err := uc.llm.GenerateContent(ctx, llmprovider.UserPrompt(promptAnalystSystem, promptAnalystUser, temperature, maxTokens))
	if err != nil {
		return hotspot.Report{}, fmt.Errorf("%s: %w", LogPrefixAnalyze, err)
	}

	analysis := strings.TrimSpace(resp.Content)
	if analysis == "" {
		return hotspot.Report{}, fmt.Errorf("%s: %w", LogPrefixAnalyze, hotspot.ErrEmptyAnalysis)
	}

	report := hotspot.Report{
		Title:    reportTitle,
		Summary:  truncateRunes(analysis, summaryRunes),
		Analysis: analysis,
	}
	uc.cache.Add(day, report)
	uc.l.Infof(ctx, "%s: generated report for %s via %s", LogPrefixAnalyze, day, resp.ProviderName)
	return report, nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
