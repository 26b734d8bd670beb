package chat

import (
	"context"

	"github.com/elitecuts/booking-service/internal/service/assistant"
)

type AssistantService interface {
	Respond(ctx context.Context, message string, history []assistant.Message) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
