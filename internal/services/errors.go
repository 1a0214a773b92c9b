package services

import "errors"

var (
	// ErrEmailTaken is returned when creating a user with an email that is
	// already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on login with an unknown email or a
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned when a token is malformed, has a bad
	// signature, or is expired.
	ErrInvalidToken = errors.New("invalid token")
)
