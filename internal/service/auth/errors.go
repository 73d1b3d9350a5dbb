package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for an unknown phone or wrong
	// password; callers get one error for both so the response does not
	// reveal which operators exist
	ErrInvalidCredentials = errors.New("auth.service: invalid credentials")

	// ErrInvalidToken is returned for an expired, malformed, or tampered token
	ErrInvalidToken = errors.New("auth.service: invalid token")

	// ErrInternal is returned for unexpected failures inside the service
	ErrInternal = errors.New("auth.service: internal error")
)
