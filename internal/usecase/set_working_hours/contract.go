package set_working_hours

import (
	"context"
	"time"

	"github.com/elitecuts/booking-service/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
}

// WorkingHoursRepository интерфейс репозитория переопределений рабочих часов
type WorkingHoursRepository interface {
	Upsert(ctx context.Context, override *domain.WorkingHoursOverride) (*domain.WorkingHoursOverride, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс для публикации событий бронирований
type EventPublisher interface {
	PublishReservationCancelled(ctx context.Context, reservation *domain.Reservation) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
