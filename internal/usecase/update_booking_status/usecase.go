package update_booking_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/estudioluz/booking-service/internal/domain"
	bookingstorage "github.com/estudioluz/booking-service/internal/infra/storage/booking"
	"github.com/estudioluz/booking-service/pkg/whatsapp"
)

// UseCase moves a booking through the operator status machine and mirrors the
// new status onto the claimed window, so the calendar reflects the change as
// soon as the availability cache is invalidated.
type UseCase struct {
	bookingRepo BookingRepository
	windowRepo  WindowRepository
	cache       CacheInvalidator
	txManager   TransactionManager
	logger      Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	windowRepo WindowRepository,
	cache CacheInvalidator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		windowRepo:  windowRepo,
		cache:       cache,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute applies the status transition
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBookingStatus: booking=%s, target=%s", req.BookingID, req.Status)

	// 1. Parse the target status against the shared enum
	target, err := domain.ParseStatus(req.Status)
	if err != nil || !target.ValidBookingStatus() {
		uc.logger.Warn("UpdateBookingStatus: status %q rejected", req.Status)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	// 2. Load the booking and check the transition table
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingstorage.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBookingStatus: read failed for %s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if !booking.CanTransitionTo(target) {
		uc.logger.Warn("UpdateBookingStatus: %s -> %s not allowed for booking %s",
			booking.Status, target, booking.ID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, target)
	}

	// 3. Update booking and window together. The window carries the same
	// status value, so a cancelled booking stops blocking the calendar and a
	// confirmed one keeps its hour taken.
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, target); err != nil {
			return fmt.Errorf("booking update: %w", err)
		}
		if err := uc.windowRepo.UpdateStatus(txCtx, booking.WindowID, target); err != nil {
			return fmt.Errorf("window update: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("UpdateBookingStatus: transition failed for %s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	booking.Status = target

	// 4. The cached ranges are stale now
	uc.cache.InvalidateCache(ctx)

	uc.logger.Info("UpdateBookingStatus: booking %s moved to %s", booking.ID, target)

	// 5. Confirmation and cancellation carry a client-facing message; the
	// link failure never unwinds the already-applied transition
	resp := fromDomainBooking(booking)
	if target == domain.StatusConfirmed || target == domain.StatusCancelled {
		link, linkErr := uc.buildClientLink(booking, target == domain.StatusConfirmed)
		if linkErr != nil {
			uc.logger.Warn("UpdateBookingStatus: client link for %s failed: %v", booking.ID, linkErr)
			resp.NotificationFailed = true
			return resp, nil
		}
		resp.WhatsAppLink = link

		if err := uc.bookingRepo.MarkConfirmationSent(ctx, booking.ID); err != nil {
			uc.logger.Warn("UpdateBookingStatus: could not mark confirmation sent for %s: %v", booking.ID, err)
		}
	}

	return resp, nil
}

// buildClientLink renders the status-update message addressed to the client
func (uc *UseCase) buildClientLink(b *domain.Booking, confirmed bool) (string, error) {
	msg := whatsapp.StatusUpdateMessage{
		ClientName:   b.ClientName,
		ServiceLabel: b.ServiceType.Label(),
		Date:         b.PreferredDate.Format(domain.DisplayDateFormat),
		Time:         b.PreferredTime.String(),
		Confirmed:    confirmed,
	}
	return whatsapp.BuildChatLink(b.ClientPhone, msg.Body())
}

func fromDomainBooking(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		WindowID:      b.WindowID,
		ClientName:    b.ClientName,
		ServiceType:   b.ServiceType,
		Status:        b.Status,
		PreferredDate: b.PreferredDate,
		PreferredTime: b.PreferredTime,
		UpdatedAt:     b.UpdatedAt,
	}
}
