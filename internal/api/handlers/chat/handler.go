package chat

import (
	"errors"
	"net/http"

	"github.com/elitecuts/booking-service/internal/api/handlers"
	assistantService "github.com/elitecuts/booking-service/internal/service/assistant"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgEmptyMessage       = "message is required"
)

type Handler struct {
	service AssistantService
	logger  Logger
}

func NewHandler(service AssistantService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/chatbot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /chatbot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	answer, err := h.service.Respond(r.Context(), req.Message, req.History)
	if err != nil {
		switch {
		case errors.Is(err, assistantService.ErrInvalidInput):
			h.logger.Warn("POST /chatbot - Empty message")
			handlers.RespondBadRequest(w, msgEmptyMessage)
		default:
			h.logger.Error("POST /chatbot - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /chatbot - Responded, history=%d messages", len(req.History))
	handlers.RespondJSON(w, http.StatusOK, ChatResponse{Response: answer})
}
