package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// trip (or a day of it) does not exist in the record store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails a presence
// or range check (e.g. missing title, password too short, day out of range).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
