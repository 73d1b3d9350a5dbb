package create_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/estudioluz/booking-service/internal/domain"
	"github.com/estudioluz/booking-service/internal/schedule"
	"github.com/estudioluz/booking-service/pkg/ptr"
	"github.com/estudioluz/booking-service/pkg/whatsapp"
)

// UseCase creates a booking: validates the form, re-checks the slot against
// current availability, persists the pending booking, claims the window, and
// builds the operator notification link — strictly in that order.
type UseCase struct {
	availability AvailabilityClient
	bookingRepo  BookingRepository
	txManager    TransactionManager
	blockedDates schedule.BlockedDates
	studioPhone  string // operator WhatsApp number, digits only
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the usecase. Nil metrics fall back to NopMetrics.
func NewUseCase(
	availability AvailabilityClient,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	blockedDates schedule.BlockedDates,
	studioPhone string,
	m Metrics,
	logger Logger,
) *UseCase {
	if m == nil {
		m = NopMetrics{}
	}
	return &UseCase{
		availability: availability,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		blockedDates: blockedDates,
		studioPhone:  studioPhone,
		metrics:      m,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the full booking submission
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: window=%s, date=%s, time=%s",
		req.WindowID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Slot reference validation
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: request validation failed: %v", err)
		return nil, err
	}

	// 2. Form validation (name, email, phone, service, message)
	form, err := ValidateForm(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: form validation failed: %v", err)
		return nil, err
	}

	// 3. Date rejections, same predicate as the calendar
	now := uc.timeProvider.Now()
	if err := schedule.ValidateBookableDate(req.Date, now, uc.blockedDates); err != nil {
		uc.logger.Warn("CreateBooking: date %s rejected: %v", req.Date.Format(domain.DateFormat), err)
		return nil, err
	}

	day := schedule.DateOnly(req.Date)

	// 4. Re-check the selected slot against current availability
	if err := uc.checkSlot(ctx, day, req); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		WindowID:      req.WindowID,
		ClientName:    form.Name,
		ClientEmail:   ptr.Ptr(form.Email),
		ClientPhone:   form.PhoneDigits,
		ServiceType:   form.ServiceType,
		Message:       ptr.Ptr(form.Message),
		Status:        domain.StatusPending,
		PreferredDate: day,
		PreferredTime: req.StartTime,
	}

	// 5. Persist, then claim, inside one transaction. The insert comes first
	// so a failed claim rolls the booking back and no stray notification can
	// ever reference an unpersisted booking.
	var created *domain.Booking
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		c, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: persist booking: %v", ErrInternal, err)
		}
		created = c

		if err := uc.availability.ClaimWindow(txCtx, req.WindowID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		uc.metrics.BookingFailed()
		uc.logger.Error("CreateBooking: submission failed: %v", err)
		return nil, err
	}

	uc.metrics.BookingCreated()
	uc.logger.Info("CreateBooking: booking %s created for window %s", created.ID, created.WindowID)

	// 6. Build the operator notification link. A failure here is reported
	// alongside the response, never by unwinding the persisted booking.
	link, notifyErr := uc.buildNotificationLink(created)
	if notifyErr != nil {
		uc.logger.Warn("CreateBooking: notification link for booking %s failed: %v", created.ID, notifyErr)
		return fromDomainBooking(created, "", true), nil
	}

	if err := uc.bookingRepo.MarkNotificationSent(ctx, created.ID); err != nil {
		// Flag update is best-effort; the link is already built
		uc.logger.Warn("CreateBooking: could not mark notification sent for %s: %v", created.ID, err)
	} else {
		created.NotificationSent = true
	}

	return fromDomainBooking(created, link, false), nil
}

// checkSlot regenerates the day's grid and requires the requested hour to be
// open and backed by exactly the requested window.
func (uc *UseCase) checkSlot(ctx context.Context, day time.Time, req *Request) error {
	windows, err := uc.availability.GetAvailableWindows(ctx, day, day)
	if err != nil {
		uc.logger.Error("CreateBooking: window read failed: %v", err)
		return err
	}
	bookings, err := uc.availability.GetBookingsInRange(ctx, day, day)
	if err != nil {
		uc.logger.Error("CreateBooking: booking read failed: %v", err)
		return err
	}

	slots, err := schedule.GenerateDaySlots(day, windows, bookings)
	if err != nil {
		return fmt.Errorf("%w: slot generation: %v", ErrInternal, err)
	}

	hour, err := req.StartTime.Hour()
	if err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	for i := range slots {
		slot := &slots[i]
		if slot.Hour != hour {
			continue
		}
		if !slot.Selectable() || *slot.WindowID != req.WindowID {
			uc.logger.Warn("CreateBooking: slot %02d:00 on %s not selectable for window %s",
				hour, day.Format(domain.DateFormat), req.WindowID)
			return ErrSlotUnavailable
		}
		return nil
	}

	uc.logger.Warn("CreateBooking: hour %d outside business day", hour)
	return ErrWindowNotFound
}

// buildNotificationLink renders the new-booking message for the studio operator
func (uc *UseCase) buildNotificationLink(b *domain.Booking) (string, error) {
	msg := whatsapp.NewBookingMessage{
		ClientName:   b.ClientName,
		ServiceLabel: b.ServiceType.Label(),
		Phone:        b.ClientPhone,
		Date:         b.PreferredDate.Format(domain.DisplayDateFormat),
		Time:         b.PreferredTime.String(),
		Message:      derefOrEmpty(b.Message),
	}
	return whatsapp.BuildChatLink(uc.studioPhone, msg.Body())
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
