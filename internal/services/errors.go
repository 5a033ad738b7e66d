// Package services defines the business logic for kids, chores, rewards,
// users, and authentication. This file centralizes common service-level error
// values so that they can be consistently returned by service methods and
// checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the handler
// layer.
package services

import "errors"

var (
	// ErrChoreNotFound indicates that the requested chore does not exist.
	ErrChoreNotFound = errors.New("chore not found")

	// ErrInvalidKid is returned when an update names a kid_id that does not
	// reference an existing kid.
	ErrInvalidKid = errors.New("invalid kid_id")

	// ErrUsernameTaken is returned when registering a username that already
	// has an account.
	ErrUsernameTaken = errors.New("username already registered")

	// ErrInvalidCredentials is returned when authentication fails, whether
	// the user is missing or the password does not verify. Callers get one
	// indistinguishable error for both cases.
	ErrInvalidCredentials = errors.New("incorrect username or password")
)
