package session

import "errors"

var (
	// -- Authentication --
	ErrBadCredentials  = errors.New("invalid admin credentials")
	ErrTooManyAttempts = errors.New("too many login attempts")

	// -- Validation & Input --
	ErrInvalidRole = errors.New("invalid role")

	// -- Capability --
	ErrNotAdmin = errors.New("capability is not an admin capability")
)
