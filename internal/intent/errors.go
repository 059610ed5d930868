package intent

import "errors"

// Domain-specific errors for the intent package.
var (
	ErrEmptyCommand     = errors.New("command name is empty")
	ErrNilHandler       = errors.New("command handler is nil")
	ErrDuplicateCommand = errors.New("command registered twice")
)
