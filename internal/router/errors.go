package router

import "errors"

var (
	// ErrClassifierUnavailable wraps every transport-level failure of the chat-completion call.
	ErrClassifierUnavailable = errors.New("intent classifier unavailable")

	// ErrMalformedOutput is returned by ParseRecord when the model output is not a valid record.
	ErrMalformedOutput = errors.New("malformed classifier output")
)
