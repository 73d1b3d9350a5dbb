package update_booking_status

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("update_booking_status: booking not found")

	// ErrInvalidStatus is returned for an unknown or window-only status value
	ErrInvalidStatus = errors.New("update_booking_status: invalid status")

	// ErrInvalidTransition is returned when the current status does not allow the target
	ErrInvalidTransition = errors.New("update_booking_status: transition not allowed")

	// ErrInternal is returned for unexpected failures inside the usecase
	ErrInternal = errors.New("update_booking_status: internal error")
)
