package list_reservations

import (
	"context"

	"github.com/elitecuts/booking-service/internal/service/reservations/models"
)

type ReservationsService interface {
	List(ctx context.Context, view string) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
