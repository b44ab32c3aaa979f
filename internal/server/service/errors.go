// Package service holds the application logic between the HTTP layer and
// the store. Services return sentinel errors; handlers map them to status
// codes.
package service

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password
	// so login failures are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateEmail is returned when registering an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrWrongPassword is returned by the change-password flow when the
	// current password does not verify.
	ErrWrongPassword = errors.New("current password does not match")

	// ErrNotFound is returned when the requested entity does not exist,
	// including empty list reads that the API contract treats as missing.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition is returned when a payment status update names
	// an unknown state or the payment is already in a terminal state.
	ErrInvalidTransition = errors.New("invalid payment status transition")

	// ErrUnauthorized is returned when no valid, unexpired session backs
	// the presented token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrPartialWrite marks a failed multi-row submission. The
	// transaction has rolled back; no rows survive.
	ErrPartialWrite = errors.New("partial write")
)
