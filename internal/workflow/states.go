package workflow

// State is the current step of a booking session
type State string

const (
	// StateCalendar — waiting for a date selection
	StateCalendar State = "calendar"

	// StateTime — date chosen, waiting for a slot selection
	StateTime State = "time"

	// StateForm — slot chosen, collecting client details
	StateForm State = "form"

	// StateConfirmation — full snapshot shown read-only, waiting for confirm
	StateConfirmation State = "confirmation"

	// StateSubmitted — booking persisted, window claimed, link built
	StateSubmitted State = "submitted"

	// StateFailed — persist or claim failed; snapshot kept for retry
	StateFailed State = "failed"
)

// CanConfirm reports whether a confirm action is accepted in this state.
// Failed allows retrying with the preserved snapshot.
func (s State) CanConfirm() bool {
	return s == StateConfirmation || s == StateFailed
}

// backTarget returns the state a back action lands on, or "" when back is
// not permitted (Calendar has nothing to go back to, Submitted is final).
func (s State) backTarget() State {
	switch s {
	case StateTime:
		return StateCalendar
	case StateForm:
		return StateTime
	case StateConfirmation, StateFailed:
		return StateForm
	default:
		return ""
	}
}
