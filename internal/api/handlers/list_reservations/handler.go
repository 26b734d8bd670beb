package list_reservations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/elitecuts/booking-service/internal/api/handlers"
	reservationsService "github.com/elitecuts/booking-service/internal/service/reservations"
	"github.com/elitecuts/booking-service/internal/service/reservations/models"
)

const msgInvalidView = "unknown view, expected one of: upcoming, past, cancelled, all"

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

// Handle GET /api/v1/reservations и GET /api/v1/admin/reservations/{view}
// Представление берётся из path-параметра, по умолчанию - все бронирования.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	view := mux.Vars(r)["view"]
	if view == "" {
		view = models.ViewAll
	}

	result, err := h.service.List(r.Context(), view)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrInvalidView):
			h.logger.Warn("GET reservations - Invalid view %q", view)
			handlers.RespondBadRequest(w, msgInvalidView)
		default:
			h.logger.Error("GET reservations - Failed: view=%s, error=%v", view, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET reservations - view=%s, total=%d", view, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
