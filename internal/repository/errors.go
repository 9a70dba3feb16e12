package repository

import "errors"

var (
	// ErrNotFound is returned when no row matches the given identifier.
	ErrNotFound = errors.New("not found")

	// ErrNotPending is returned by moderation transitions when the target
	// request has already left the pending state. The caller treats it as a
	// no-op: the row was not changed and nothing was created.
	ErrNotPending = errors.New("request is not pending")
)
