package create_reservation

import (
	"context"
	"time"

	"github.com/elitecuts/booking-service/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// WorkingHoursRepository интерфейс репозитория переопределений рабочих часов
type WorkingHoursRepository interface {
	ListClosedByDate(ctx context.Context, date time.Time) ([]*domain.WorkingHoursOverride, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс для публикации событий бронирований
type EventPublisher interface {
	PublishReservationConfirmed(ctx context.Context, reservation *domain.Reservation) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
