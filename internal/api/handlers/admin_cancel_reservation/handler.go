package admin_cancel_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/elitecuts/booking-service/internal/api/handlers"
	reservationsService "github.com/elitecuts/booking-service/internal/service/reservations"
)

const (
	msgInvalidID        = "invalid reservation id"
	msgNotFound         = "reservation not found"
	msgAlreadyCancelled = "reservation is already cancelled"
	msgPastReservation  = "past reservations cannot be cancelled"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawID := mux.Vars(r)["reservationId"]

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /admin/reservations - Invalid id %q", rawID)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("DELETE /admin/reservations - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservationsService.ErrAlreadyCancelled):
			h.logger.Warn("DELETE /admin/reservations - Already cancelled: id=%d", id)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		case errors.Is(err, reservationsService.ErrPastReservation):
			h.logger.Warn("DELETE /admin/reservations - Past reservation: id=%d", id)
			handlers.RespondConflict(w, msgPastReservation)

		default:
			h.logger.Error("DELETE /admin/reservations - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/reservations - Cancelled reservation id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
