// Package schedule owns the slot-generation engine and the bookable-date
// predicate. The calendar endpoint, the slot usecases and the booking workflow
// all validate dates through this package, so a date the calendar offers is
// never one the engine later rejects.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/estudioluz/booking-service/internal/domain"
)

var (
	// ErrDatePast is returned for dates strictly before today (date-only comparison)
	ErrDatePast = errors.New("schedule: date is in the past")

	// ErrDateSunday is returned for Sundays, when the studio does not book sessions
	ErrDateSunday = errors.New("schedule: studio does not open on sundays")

	// ErrDateBlocked is returned for dates on the studio's closed-dates list
	ErrDateBlocked = errors.New("schedule: date is blocked by the studio")
)

// BlockedDates is the studio's closed-dates list, keyed by "YYYY-MM-DD"
type BlockedDates map[string]struct{}

// ParseBlockedDates builds the set from config strings in "YYYY-MM-DD" form
func ParseBlockedDates(dates []string) (BlockedDates, error) {
	blocked := make(BlockedDates, len(dates))
	for _, d := range dates {
		if _, err := time.Parse(domain.DateFormat, d); err != nil {
			return nil, fmt.Errorf("schedule: invalid blocked date %q: %v", d, err)
		}
		blocked[d] = struct{}{}
	}
	return blocked, nil
}

// Contains reports whether the given date is on the closed-dates list
func (b BlockedDates) Contains(date time.Time) bool {
	_, ok := b[date.Format(domain.DateFormat)]
	return ok
}

// ValidateBookableDate runs the three rejection checks, in order:
// past date, Sunday, blocked date. Each failure is a distinct sentinel so
// callers can message the specific reason.
func ValidateBookableDate(date, now time.Time, blocked BlockedDates) error {
	if isDateInPast(date, now) {
		return ErrDatePast
	}
	if date.Weekday() == time.Sunday {
		return ErrDateSunday
	}
	if blocked.Contains(date) {
		return ErrDateBlocked
	}
	return nil
}

// DateOnly zeroes the time-of-day component
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isDateInPast compares calendar days only, ignoring time of day
func isDateInPast(date, now time.Time) bool {
	return DateOnly(date).Before(DateOnly(now))
}

// isSameDay reports whether two instants fall on the same calendar day
func isSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
