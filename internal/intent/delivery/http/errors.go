package http

import (
	"errors"
)

var (
	errEmptyMessage = errors.New("message must not be empty")
	errHotDisabled  = errors.New("hot events analysis is not configured")
)
