package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/pkg/types"
)

// AvailableWindow is a studio-declared open interval on a calendar day.
// Windows are created by the operator; the public booking flow only reads
// them and flips a claimed window's status to pending.
type AvailableWindow struct {
	ID        uuid.UUID
	Date      time.Time // calendar day, time-of-day zeroed
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    Status

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the window invariants: a valid start < end pair within a
// single calendar day (no cross-midnight windows).
func (w *AvailableWindow) Validate() error {
	if err := w.StartTime.Validate(); err != nil {
		return err
	}
	if err := w.EndTime.Validate(); err != nil {
		return err
	}
	if !w.StartTime.IsBefore(w.EndTime) {
		return ErrWindowTimesInverted
	}
	return nil
}

// IsClaimable reports whether a booking may claim this window
func (w *AvailableWindow) IsClaimable() bool {
	return w.Status == StatusAvailable
}

// CoversHour reports whether the window starts at the given whole hour
func (w *AvailableWindow) CoversHour(hour int) bool {
	h, err := w.StartTime.Hour()
	if err != nil {
		return false
	}
	return h == hour
}

// WindowRangeFilter selects windows whose date falls in [StartDate, EndDate]
type WindowRangeFilter struct {
	StartDate time.Time
	EndDate   time.Time
	Status    *Status // optional
}
