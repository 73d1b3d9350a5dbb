package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/pkg/types"
)

// Booking is a client's request to use a specific AvailableWindow.
// It is created by the public booking flow with StatusPending and mutated by
// operator actions (confirm / cancel / complete / request reschedule).
type Booking struct {
	ID       uuid.UUID
	WindowID uuid.UUID // the claimed AvailableWindow

	ClientName  string
	ClientEmail *string
	ClientPhone string // digits only, Brazilian format
	ServiceType ServiceType
	Message     *string

	Status Status

	// PreferredDate/PreferredTime mirror the claimed window's start.
	PreferredDate time.Time
	PreferredTime types.TimeString

	// Message-delivery flags for the WhatsApp links built around this booking.
	NotificationSent bool // operator notification at creation
	ConfirmationSent bool // client status update after an operator transition

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the booking still occupies its window
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionTo reports whether an operator may move the booking to target.
// Terminal statuses stay; awaiting_reschedule may be resolved either way.
func (b *Booking) CanTransitionTo(target Status) bool {
	if !target.ValidBookingStatus() || b.Status == target {
		return false
	}
	switch b.Status {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled || target == StatusAwaitingReschedule
	case StatusConfirmed:
		return target == StatusCancelled || target == StatusCompleted || target == StatusAwaitingReschedule
	case StatusAwaitingReschedule:
		return target == StatusConfirmed || target == StatusCancelled
	default:
		return false
	}
}

// StartsAtHour reports whether the booking's preferred time is the given whole hour
func (b *Booking) StartsAtHour(hour int) bool {
	h, err := b.PreferredTime.Hour()
	if err != nil {
		return false
	}
	return h == hour
}

// BookingRangeFilter selects bookings whose preferred date falls in
// [StartDate, EndDate], optionally narrowed by status.
type BookingRangeFilter struct {
	StartDate time.Time
	EndDate   time.Time
	Status    *Status
}
