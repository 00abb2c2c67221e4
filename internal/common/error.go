package common

import "errors"

// Sentinel errors, matched with errors.Is.
var (
	// Store-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorUnavailable  = errors.New("server unavailable")

	// Validation errors.
	ErrorValidation = errors.New("validation error")
)
