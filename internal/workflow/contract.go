package workflow

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/internal/domain"
	"github.com/estudioluz/booking-service/internal/usecase/create_booking"
)

// AvailabilityClient is the cached availability surface used to build the
// day grid shown at the Time step
type AvailabilityClient interface {
	GetAvailableWindows(ctx context.Context, start, end time.Time) ([]*domain.AvailableWindow, error)
	GetBookingsInRange(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
}

// BookingSubmitter runs the full submission: persist, claim, notification
// link, strictly in that order. Production wires the create_booking usecase.
type BookingSubmitter interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// Metrics receives session lifecycle events
type Metrics interface {
	SessionStarted()
	SessionEnded()
}

// NopMetrics is the Metrics used when metrics are disabled
type NopMetrics struct{}

func (NopMetrics) SessionStarted() {}
func (NopMetrics) SessionEnded()   {}

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface used by the workflow
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// IDGenerator issues session identifiers
type IDGenerator func() uuid.UUID
