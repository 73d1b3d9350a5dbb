package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/internal/domain"
)

// BookingRepository is the storage surface the service reads from
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListByRange(ctx context.Context, filter domain.BookingRangeFilter) ([]*domain.Booking, error)
}

// Logger is the logging surface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
