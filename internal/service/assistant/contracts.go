package assistant

import (
	"context"
	"time"

	"github.com/elitecuts/booking-service/internal/integrations/openai"
	"github.com/elitecuts/booking-service/internal/usecase/get_availability"
)

// AvailabilityUseCase интерфейс движка доступности слотов
type AvailabilityUseCase interface {
	Execute(ctx context.Context, req *get_availability.Request) (*get_availability.Response, error)
}

// ModelClient интерфейс клиента языковой модели
type ModelClient interface {
	Complete(ctx context.Context, messages []openai.ChatMessage) (string, error)
	CompleteWithGracefulDegradation(ctx context.Context, messages []openai.ChatMessage) (string, error)
}

// Extractor извлекает дату и время из сообщения клиента.
// Возвращает nil без ошибки, если сообщение не похоже на вопрос о записи.
type Extractor interface {
	Extract(ctx context.Context, message string, now time.Time) (*AppointmentQuery, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
