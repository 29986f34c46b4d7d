package memory

import "errors"

// ErrSessionNotFound is returned by operations that require an existing
// session when the session was never created, was cleared, or has
// expired.
var ErrSessionNotFound = errors.New("session not found")
