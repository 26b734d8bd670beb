package admin_cancel_reservation

import (
	"context"

	"github.com/elitecuts/booking-service/internal/service/reservations/models"
)

type ReservationsService interface {
	Cancel(ctx context.Context, id int64) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
