package keyword

import "errors"

var (
	ErrEmptyTable     = errors.New("keyword table is empty")
	ErrEmptyCommand   = errors.New("keyword entry has empty command")
	ErrNoPhrases      = errors.New("keyword entry has no phrases")
	ErrEmptyPhrase    = errors.New("keyword entry has empty phrase")
	ErrDuplicateEntry = errors.New("duplicate keyword command")
)
