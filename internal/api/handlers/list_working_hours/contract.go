package list_working_hours

import (
	"context"

	"github.com/elitecuts/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	ListAll(ctx context.Context) (*models.WorkingHoursListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
