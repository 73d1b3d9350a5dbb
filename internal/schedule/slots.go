package schedule

import (
	"time"

	"github.com/estudioluz/booking-service/internal/domain"
	"github.com/estudioluz/booking-service/pkg/types"
)

// GenerateDaySlots produces the candidate slots for one calendar day, hours
// 08:00 through 18:00 inclusive, in ascending order. The result always has
// domain.SlotsPerDay entries:
//
//   - an hour with a pending/confirmed window or booking is taken
//   - an hour with an available window is open and carries that window's id
//   - any other hour is emitted with no backing window and cannot be selected
//
// Deterministic and side-effect free; callers re-run it whenever the selected
// date or the underlying availability data changes. Date rejection is a
// separate concern (ValidateBookableDate) and is not repeated here.
func GenerateDaySlots(
	date time.Time,
	windows []*domain.AvailableWindow,
	bookings []*domain.Booking,
) ([]domain.CandidateSlot, error) {
	day := DateOnly(date)
	slots := make([]domain.CandidateSlot, 0, domain.SlotsPerDay)

	for hour := domain.BusinessDayFirstHour; hour <= domain.BusinessDayLastHour; hour++ {
		start, err := types.NewTimeStringFromHour(hour)
		if err != nil {
			return nil, err
		}
		end, err := start.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}

		slot := domain.CandidateSlot{
			ID:    domain.SyntheticSlotID(hour),
			Hour:  hour,
			Start: start,
			End:   end,
			Date:  day,
			Taken: hourTaken(day, hour, windows, bookings),
		}

		if !slot.Taken {
			if w := findClaimableWindow(day, hour, windows); w != nil {
				slot.ID = w.ID.String()
				windowID := w.ID
				slot.WindowID = &windowID
			}
		}

		slots = append(slots, slot)
	}

	return slots, nil
}

// hourTaken reports whether any window or booking occupies the exact
// date and starting hour with a blocking status.
func hourTaken(day time.Time, hour int, windows []*domain.AvailableWindow, bookings []*domain.Booking) bool {
	for _, w := range windows {
		if isSameDay(w.Date, day) && w.CoversHour(hour) && w.Status.IsBlocking() {
			return true
		}
	}
	for _, b := range bookings {
		if isSameDay(b.PreferredDate, day) && b.StartsAtHour(hour) && b.Status.IsBlocking() {
			return true
		}
	}
	return false
}

// findClaimableWindow returns the available window starting at the given hour, if any
func findClaimableWindow(day time.Time, hour int, windows []*domain.AvailableWindow) *domain.AvailableWindow {
	for _, w := range windows {
		if isSameDay(w.Date, day) && w.CoversHour(hour) && w.IsClaimable() {
			return w
		}
	}
	return nil
}
