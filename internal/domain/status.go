package domain

import "fmt"

// Status is the lifecycle state shared by available windows and bookings.
// A window starts as StatusAvailable and is moved to StatusPending when a
// booking claims it; the remaining transitions are operator actions reflected
// onto both records.
type Status string

const (
	StatusAvailable          Status = "available"
	StatusPending            Status = "pending"
	StatusConfirmed          Status = "confirmed"
	StatusCancelled          Status = "cancelled"
	StatusCompleted          Status = "completed"
	StatusAwaitingReschedule Status = "awaiting_reschedule"
)

// AllStatuses lists every valid status value
var AllStatuses = []Status{
	StatusAvailable,
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
	StatusAwaitingReschedule,
}

// BlockingStatuses are the statuses that make an hour slot taken:
// a pending claim or a confirmed session occupies the hour.
var BlockingStatuses = []Status{
	StatusPending,
	StatusConfirmed,
}

// ParseStatus converts a wire string into a Status
func ParseStatus(s string) (Status, error) {
	for _, status := range AllStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", fmt.Errorf("domain: unknown status %q", s)
}

// IsBlocking reports whether the status occupies its hour slot
func (s Status) IsBlocking() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsTerminal reports whether no further operator transition applies
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// ValidBookingStatus reports whether the status may appear on a booking.
// StatusAvailable belongs to unclaimed windows only.
func (s Status) ValidBookingStatus() bool {
	return s != StatusAvailable
}
