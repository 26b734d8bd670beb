package chat

import (
	"github.com/elitecuts/booking-service/internal/service/assistant"
)

// ChatRequest HTTP request model
type ChatRequest struct {
	Message string              `json:"message"`
	History []assistant.Message `json:"history,omitempty"`
}

// ChatResponse HTTP response model
type ChatResponse struct {
	Response string `json:"response"`
}
