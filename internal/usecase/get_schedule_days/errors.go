package get_schedule_days

import "errors"

var (
	// ErrInvalidInput is returned for malformed or oversized ranges
	ErrInvalidInput = errors.New("get_schedule_days: invalid input data")

	// ErrInternal is returned for unexpected failures inside the usecase
	ErrInternal = errors.New("get_schedule_days: internal error")
)
