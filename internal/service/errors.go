package service

import "errors"

var (
	// ErrNotAvailable is returned when a rental inquiry targets a catalog
	// entry that is not currently available.
	ErrNotAvailable = errors.New("property is not available")

	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so the two cases are indistinguishable to a caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUsernameTaken  = errors.New("username already taken")
	ErrRoleNotAllowed = errors.New("role not allowed")
)
