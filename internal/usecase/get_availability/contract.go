package get_availability

import (
	"context"
	"time"

	"github.com/elitecuts/booking-service/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// ListActiveByDate получает активные бронирования на конкретную дату
	ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// WorkingHoursRepository интерфейс репозитория переопределений рабочих часов
type WorkingHoursRepository interface {
	// ListClosedByDate получает закрытые окна на конкретную дату
	ListClosedByDate(ctx context.Context, date time.Time) ([]*domain.WorkingHoursOverride, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
