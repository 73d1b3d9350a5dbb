package get_schedule_days

import (
	"context"

	getScheduleDays "github.com/estudioluz/booking-service/internal/usecase/get_schedule_days"
)

type GetScheduleDaysUseCase interface {
	Execute(ctx context.Context, req *getScheduleDays.Request) (*getScheduleDays.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
