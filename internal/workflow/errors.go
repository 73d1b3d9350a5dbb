package workflow

import "errors"

var (
	// ErrSessionNotFound is returned for an unknown or expired session id
	ErrSessionNotFound = errors.New("workflow: session not found")

	// ErrInvalidState is returned when the action is not allowed in the
	// session's current state
	ErrInvalidState = errors.New("workflow: action not allowed in current state")

	// ErrSlotNotSelectable is returned when the chosen slot is taken or has
	// no backing window; the selection is a no-op
	ErrSlotNotSelectable = errors.New("workflow: slot cannot be selected")

	// ErrSlotNotFound is returned when the chosen hour is not in the day grid
	ErrSlotNotFound = errors.New("workflow: no slot at the requested hour")

	// ErrBackNotAllowed is returned for a back action from Calendar or Submitted
	ErrBackNotAllowed = errors.New("workflow: cannot go back from current state")

	// ErrInternal is returned for unexpected failures inside the workflow
	ErrInternal = errors.New("workflow: internal error")
)

// Date rejections, form field errors, and submission failures pass through
// from internal/schedule and the create_booking usecase unchanged, so
// handlers can classify them with errors.Is.
