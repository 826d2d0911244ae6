package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned when a signup conflicts with an existing email.
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidCredentials is returned for every signin failure. "No such
	// email" and "wrong password" collapse into this one error on purpose so
	// responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
