package get_available_slots

import (
	"context"
	"fmt"

	"github.com/estudioluz/booking-service/internal/domain"
	"github.com/estudioluz/booking-service/internal/schedule"
)

// UseCase computes the candidate slot grid for a chosen calendar day
type UseCase struct {
	availability AvailabilityClient
	blockedDates schedule.BlockedDates
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the usecase
func NewUseCase(availability AvailabilityClient, blockedDates schedule.BlockedDates, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		blockedDates: blockedDates,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute validates the date, reads the day's windows and bookings through the
// cached availability client, and emits the 11-slot grid.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Basic request validation
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: missing date")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Date rejections: past / sunday / blocked, in that order
	now := uc.timeProvider.Now()
	if err := schedule.ValidateBookableDate(req.Date, now, uc.blockedDates); err != nil {
		uc.logger.Warn("GetAvailableSlots: date %s rejected: %v", req.Date.Format(domain.DateFormat), err)
		return nil, err
	}

	day := schedule.DateOnly(req.Date)

	// 3. Read the day's availability data (cached)
	windows, err := uc.availability.GetAvailableWindows(ctx, day, day)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: window read failed: %v", err)
		return nil, err
	}

	bookings, err := uc.availability.GetBookingsInRange(ctx, day, day)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: booking read failed: %v", err)
		return nil, err
	}

	// 4. Generate the grid
	slots, err := schedule.GenerateDaySlots(day, windows, bookings)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: slot generation failed: %v", err)
		return nil, fmt.Errorf("%w: slot generation: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for %s", len(slots), day.Format(domain.DateFormat))
	return &Response{
		Date:  day,
		Slots: fromCandidateSlots(slots),
	}, nil
}
