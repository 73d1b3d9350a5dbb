package availability

import "errors"

var (
	// ErrBackendUnavailable wraps any storage failure crossing this boundary.
	// Callers surface a retry affordance instead of crashing.
	ErrBackendUnavailable = errors.New("availability: backend unavailable")

	// ErrWindowNotClaimable is returned when a claim targets a window that is
	// no longer available (already claimed, cancelled or removed).
	ErrWindowNotClaimable = errors.New("availability: window is not claimable")
)
