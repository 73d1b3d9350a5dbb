package create_booking

import "errors"

var (
	// ErrFormIncomplete is returned when a required form field is empty or malformed
	ErrFormIncomplete = errors.New("create_booking: required form field missing")

	// ErrEmailInvalid is returned for a syntactically invalid e-mail address
	ErrEmailInvalid = errors.New("create_booking: invalid e-mail address")

	// ErrPhoneInvalid wraps the brphone validation subtype that rejected the number
	ErrPhoneInvalid = errors.New("create_booking: invalid phone number")

	// ErrServiceTypeInvalid is returned for an unknown service type
	ErrServiceTypeInvalid = errors.New("create_booking: unknown service type")

	// ErrWindowNotFound is returned when the referenced window does not exist on that date
	ErrWindowNotFound = errors.New("create_booking: window not found for the selected date")

	// ErrSlotUnavailable is returned when the selected slot is taken or has no
	// claimable backing window. Defensive: the UI renders such slots
	// non-interactive, so this path is not reachable through normal use.
	ErrSlotUnavailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput is returned for malformed requests
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned for unexpected failures inside the usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// Date rejections and ErrBackendUnavailable pass through from
// internal/schedule and the availability client unchanged.
