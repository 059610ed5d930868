package advisor

import "errors"

var (
	ErrNoGenerator = errors.New("advisor requires an LLM provider")
	ErrEmptyReply  = errors.New("LLM returned an empty reply")
)
