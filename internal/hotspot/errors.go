package hotspot

import "errors"

var (
	ErrNoGenerator   = errors.New("hot-topic analysis requires an LLM provider")
	ErrEmptyAnalysis = errors.New("LLM returned an empty analysis")
)
