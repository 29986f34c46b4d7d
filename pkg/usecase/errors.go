package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Message validation errors
	ErrEmptyMessage    = errors.New("message is empty")
	ErrMessageTooShort = errors.New("message is too short")
	ErrMessageTooLong  = errors.New("message is too long")

	// Not found errors
	ErrSessionNotFound = errors.New("session not found")
)

// Context keys for error values
const (
	SessionIDKey = "session_id"
)
