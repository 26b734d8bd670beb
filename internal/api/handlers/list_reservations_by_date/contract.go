package list_reservations_by_date

import (
	"context"
	"time"

	"github.com/elitecuts/booking-service/internal/service/reservations/models"
)

type ReservationsService interface {
	ListByDate(ctx context.Context, date time.Time) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
