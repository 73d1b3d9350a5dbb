package windows

import "errors"

var (
	// ErrWindowNotFound is returned when the window does not exist
	ErrWindowNotFound = errors.New("windows.service: window not found")

	// ErrInvalidInput is returned for malformed requests
	ErrInvalidInput = errors.New("windows.service: invalid input data")

	// ErrInternal is returned for unexpected failures inside the service
	ErrInternal = errors.New("windows.service: internal error")
)
