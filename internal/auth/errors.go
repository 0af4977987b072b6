package auth

import "errors"

var (
	// ErrEmptyPassword is returned when setting a blank password.
	ErrEmptyPassword = errors.New("password is empty")
	// ErrNotConfigured is returned while no password has been set.
	ErrNotConfigured = errors.New("no password set")
	// ErrDenied is returned for a wrong password.
	ErrDenied = errors.New("wrong password")
	// ErrBusy is returned when another request is awaiting its password.
	ErrBusy = errors.New("another authorization is pending")
	// ErrSettled is returned when resolving a request that already settled.
	ErrSettled = errors.New("authorization already settled")
	// ErrCancelled is returned when the password prompt was dismissed.
	ErrCancelled = errors.New("authorization cancelled")
)
