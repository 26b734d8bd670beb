package queue

import (
	"time"

	"github.com/elitecuts/booking-service/internal/domain"
)

// Имена очередей событий бронирований
const (
	QueueReservationConfirmed = "reservation.confirmed"
	QueueReservationCancelled = "reservation.cancelled"
)

// ReservationEvent полезная нагрузка события бронирования.
// Содержит всё необходимое консьюмеру для отправки письма клиенту
// без обращения к основной БД.
type ReservationEvent struct {
	ReservationID int64  `json:"reservation_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Service       string `json:"service"`
	Date          string `json:"date"` // "2025-10-15"
	Time          string `json:"time"` // "2:00 PM"
	Status        string `json:"status"`
	OccurredAt    string `json:"occurred_at"` // RFC 3339
}

// NewReservationEvent собирает событие из domain модели
func NewReservationEvent(r *domain.Reservation, occurredAt time.Time) ReservationEvent {
	return ReservationEvent{
		ReservationID: r.ID,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Service:       r.Service,
		Date:          r.Date.Format(domain.DateFormat),
		Time:          string(r.Time),
		Status:        string(r.Status),
		OccurredAt:    occurredAt.UTC().Format(time.RFC3339),
	}
}
