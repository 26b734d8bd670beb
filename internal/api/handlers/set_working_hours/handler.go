package set_working_hours

import (
	"errors"
	"net/http"

	"github.com/elitecuts/booking-service/internal/api/handlers"
	setWorkingHours "github.com/elitecuts/booking-service/internal/usecase/set_working_hours"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time format, expected date YYYY-MM-DD and times HH:MM"
	msgInvalidTimeRange   = "start time must be before end time"
)

type Handler struct {
	useCase SetWorkingHoursUseCase
	logger  Logger
}

func NewHandler(useCase SetWorkingHoursUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SetWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/working-hours - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, setWorkingHours.ErrInvalidTimeRange):
			h.logger.Warn("POST /admin/working-hours - Invalid time range: %s-%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, setWorkingHours.ErrInvalidInput):
			h.logger.Warn("POST /admin/working-hours - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateOrTime)

		default:
			h.logger.Error("POST /admin/working-hours - Failed: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/working-hours - Saved override for %s %s-%s, cancelled=%d",
		req.Date, req.StartTime, req.EndTime, len(result.CancelledReservations))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
