package windows

import (
	"context"

	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/internal/domain"
)

// WindowRepository is the storage surface the service needs
type WindowRepository interface {
	Create(ctx context.Context, w *domain.AvailableWindow) (*domain.AvailableWindow, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AvailableWindow, error)
	ListByRange(ctx context.Context, filter domain.WindowRangeFilter) ([]*domain.AvailableWindow, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CacheInvalidator clears the availability cache after a mutation
type CacheInvalidator interface {
	InvalidateCache(ctx context.Context)
}

// Logger is the logging surface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
