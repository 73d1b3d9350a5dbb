package list_windows

import (
	"context"

	"github.com/estudioluz/booking-service/internal/service/windows/models"
)

type WindowService interface {
	List(ctx context.Context, req *models.ListWindowsRequest) (*models.WindowListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
