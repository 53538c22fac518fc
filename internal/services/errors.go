package services

import "errors"

// Sentinel errors surfaced to the handler layer, which reduces them to
// short client-facing messages.
var (
	ErrValidation         = errors.New("validation failed")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
