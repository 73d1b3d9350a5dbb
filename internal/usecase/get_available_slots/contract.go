package get_available_slots

import (
	"context"
	"time"

	"github.com/estudioluz/booking-service/internal/domain"
)

// AvailabilityClient is the cached read surface for windows and bookings
type AvailabilityClient interface {
	GetAvailableWindows(ctx context.Context, start, end time.Time) ([]*domain.AvailableWindow, error)
	GetBookingsInRange(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
}

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
