package get_schedule_days

import (
	"context"
	"time"

	"github.com/estudioluz/booking-service/internal/domain"
)

// AvailabilityClient is the cached availability surface the usecase reads
type AvailabilityClient interface {
	GetAvailableWindows(ctx context.Context, start, end time.Time) ([]*domain.AvailableWindow, error)
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
