package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"mindbet-bot/internal/model"
)

// ExtractJSON pulls the JSON payload out of a model reply that may be fenced or wrapped in prose.
func ExtractJSON(text string) string {
	if i := strings.Index(text, fenceJSON); i >= 0 {
		return strings.TrimSpace(untilFence(text[i+len(fenceJSON):]))
	}
	if i := strings.Index(text, fence); i >= 0 {
		return strings.TrimSpace(untilFence(text[i+len(fence):]))
	}
	return strings.TrimSpace(text)
}

func untilFence(s string) string {
	if j := strings.Index(s, fence); j >= 0 {
		return s[:j]
	}
	return s
}

// ParseRecord decodes a JSON object into an IntentRecord.
// Absent or null fields take defaults; wrong types, a confidence outside [0,1]
// and non-object input fail with ErrMalformedOutput. A record without intent never carries a command.
func ParseRecord(raw string) (model.IntentRecord, error) {
	data := bytes.TrimSpace([]byte(raw))
	if len(data) == 0 || data[0] != '{' {
		return model.IntentRecord{}, fmt.Errorf("%w: top level is not a JSON object", ErrMalformedOutput)
	}

	var s recordSchema
	if err := json.Unmarshal(data, &s); err != nil {
		return model.IntentRecord{}, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	record := model.IntentRecord{
		Command: s.Command,
		Args:    []string{},
		Reply:   s.Reply,
	}
	if s.HasIntent != nil {
		record.HasIntent = *s.HasIntent
	}
	if !record.HasIntent {
		record.Command = nil
	}
	if s.Args != nil && *s.Args != nil {
		record.Args = *s.Args
	}
	if s.Confidence != nil {
		c := *s.Confidence
		if c < 0 || c > 1 {
			return model.IntentRecord{}, fmt.Errorf("%w: confidence %v out of range", ErrMalformedOutput, c)
		}
		record.Confidence = c
	}
	return record, nil
}

// FallbackRecord is the record returned for unparseable model output.
func FallbackRecord() model.IntentRecord {
	return model.NewNoIntent(0, FallbackReply)
}
