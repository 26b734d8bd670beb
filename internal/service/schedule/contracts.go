package schedule

import (
	"context"

	"github.com/elitecuts/booking-service/internal/domain"
)

// WorkingHoursRepository интерфейс репозитория переопределений рабочих часов
type WorkingHoursRepository interface {
	ListAll(ctx context.Context) ([]*domain.WorkingHoursOverride, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
