package set_working_hours

import (
	"context"

	setWorkingHours "github.com/elitecuts/booking-service/internal/usecase/set_working_hours"
)

type SetWorkingHoursUseCase interface {
	Execute(ctx context.Context, req *setWorkingHours.Request) (*setWorkingHours.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
