package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/internal/domain"
)

// AvailabilityClient is the cached availability surface plus the claim
type AvailabilityClient interface {
	GetAvailableWindows(ctx context.Context, start, end time.Time) ([]*domain.AvailableWindow, error)
	GetBookingsInRange(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
	ClaimWindow(ctx context.Context, id uuid.UUID) error
}

// BookingRepository is the booking storage surface the usecase needs
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	MarkNotificationSent(ctx context.Context, id uuid.UUID) error
}

// TransactionManager wraps the persist + claim pair in one transaction
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics receives booking outcome events
type Metrics interface {
	BookingCreated()
	BookingFailed()
}

// NopMetrics is the Metrics used when metrics are disabled
type NopMetrics struct{}

func (NopMetrics) BookingCreated() {}
func (NopMetrics) BookingFailed()  {}

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface used by the usecase
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
