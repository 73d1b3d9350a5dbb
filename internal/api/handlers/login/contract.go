package login

import (
	"context"

	"github.com/estudioluz/booking-service/internal/service/auth"
)

type AuthService interface {
	Login(ctx context.Context, phone, password string) (*auth.LoginResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
