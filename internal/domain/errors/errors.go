package errors

import "errors"

// Failure taxonomy for calls against the external order and bill services.
// Adapters wrap transport-level detail around these sentinels so callers can
// classify with errors.Is without knowing HTTP.
var (
	ErrNetwork      = errors.New("network failure")
	ErrUnauthorized = errors.New("authentication rejected")
	ErrServer       = errors.New("server failure")
	ErrValidation   = errors.New("validation rejected")
	ErrNotFound     = errors.New("not found")
)
