package get_schedule_days

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/estudioluz/booking-service/internal/domain"
	"github.com/estudioluz/booking-service/internal/schedule"
)

// maxRangeDays caps the requested range at roughly three months
const maxRangeDays = 92

// UseCase computes the calendar day grid for a date range: which days are
// bookable, why the others are not, and which bookable days actually carry
// an open window. The blocking decision is the same predicate the slot
// engine applies, so the calendar never offers a date the engine rejects.
type UseCase struct {
	availability AvailabilityClient
	blockedDates schedule.BlockedDates
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(availability AvailabilityClient, blockedDates schedule.BlockedDates, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		blockedDates: blockedDates,
		timeProvider: &realTimeProvider{},
		logger:       logger,
	}
}

// SetTimeProvider swaps the clock; tests pin it to a fixed date
func (uc *UseCase) SetTimeProvider(tp TimeProvider) {
	uc.timeProvider = tp
}

// Execute builds the day grid
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	start := schedule.DateOnly(req.StartDate)
	end := schedule.DateOnly(req.EndDate)

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end before start", ErrInvalidInput)
	}
	if int(end.Sub(start).Hours()/24) > maxRangeDays {
		return nil, fmt.Errorf("%w: range longer than %d days", ErrInvalidInput, maxRangeDays)
	}

	windows, err := uc.availability.GetAvailableWindows(ctx, start, end)
	if err != nil {
		uc.logger.Error("GetScheduleDays: window read failed: %v", err)
		return nil, err
	}

	openByDay := make(map[string]bool)
	for _, w := range windows {
		if w.IsClaimable() {
			openByDay[w.Date.Format(domain.DateFormat)] = true
		}
	}

	now := uc.timeProvider.Now()
	var days []Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := Day{Date: d}
		if err := schedule.ValidateBookableDate(d, now, uc.blockedDates); err != nil {
			day.Reason = classifyRejection(err)
		} else {
			day.Bookable = true
			day.HasAvailability = openByDay[d.Format(domain.DateFormat)]
		}
		days = append(days, day)
	}

	return &Response{Days: days}, nil
}

func classifyRejection(err error) string {
	switch {
	case errors.Is(err, schedule.ErrDatePast):
		return ReasonPast
	case errors.Is(err, schedule.ErrDateSunday):
		return ReasonSunday
	default:
		return ReasonBlocked
	}
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }
