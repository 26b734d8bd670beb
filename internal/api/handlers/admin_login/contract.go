package admin_login

import "context"

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
