package update_booking_status

import (
	"context"

	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/internal/domain"
)

// BookingRepository is the booking storage surface the usecase needs
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
	MarkConfirmationSent(ctx context.Context, id uuid.UUID) error
}

// WindowRepository is the window storage surface the usecase needs
type WindowRepository interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
}

// CacheInvalidator clears the availability cache after a mutation
type CacheInvalidator interface {
	InvalidateCache(ctx context.Context)
}

// TransactionManager wraps the booking + window updates in one transaction
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface used by the usecase
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
