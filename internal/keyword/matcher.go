package keyword

import (
	"strings"

	"mindbet-bot/internal/model"
)

// Match returns the first command, in table order, with a phrase contained in text.
func (m *PhraseMatcher) Match(text string) model.IntentRecord {
	normalized := strings.ToLower(text)

	for _, e := range m.table.entries {
		for _, phrase := range e.Phrases {
			if strings.Contains(normalized, phrase) {
				return model.NewIntent(e.Command, nil, MatchConfidence)
			}
		}
	}

	return model.NewNoIntent(0, m.reply)
}
