package domain

import "errors"

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrProfileNotFound is returned when a character profile cannot be located.
var ErrProfileNotFound = errors.New("profile not found")
