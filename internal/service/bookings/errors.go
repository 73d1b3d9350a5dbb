package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrInvalidInput is returned for malformed requests
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrInternal is returned for unexpected failures inside the service
	ErrInternal = errors.New("bookings.service: internal error")
)
