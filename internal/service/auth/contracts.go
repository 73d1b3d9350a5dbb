package auth

import (
	"context"

	"github.com/estudioluz/booking-service/internal/infra/storage/operator"
)

// OperatorRepository looks up studio operators by normalized phone
type OperatorRepository interface {
	GetByPhone(ctx context.Context, phone string) (*operator.Operator, error)
}

// Logger is the logging surface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
