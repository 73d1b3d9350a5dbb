package availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/internal/domain"
)

// WindowRepository is the window storage surface the client needs
type WindowRepository interface {
	ListByRange(ctx context.Context, filter domain.WindowRangeFilter) ([]*domain.AvailableWindow, error)
	Claim(ctx context.Context, id uuid.UUID) error
}

// BookingRepository is the booking storage surface the client needs
type BookingRepository interface {
	ListByRange(ctx context.Context, filter domain.BookingRangeFilter) ([]*domain.Booking, error)
}

// Metrics receives cache and claim events
type Metrics interface {
	CacheHit(kind string)
	CacheMiss(kind string)
	WindowClaimed()
}

// NopMetrics is the Metrics used when metrics are disabled
type NopMetrics struct{}

func (NopMetrics) CacheHit(string)  {}
func (NopMetrics) CacheMiss(string) {}
func (NopMetrics) WindowClaimed()   {}

// Logger is the logging surface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
