package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned for malformed requests
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned for unexpected failures inside the usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)

// Date rejections (past / sunday / blocked) and ErrBackendUnavailable pass
// through from internal/schedule and the availability client so handlers can
// errors.Is against a single definition of each.
