package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/elitecuts/booking-service/internal/integrations/openai"
	"github.com/elitecuts/booking-service/internal/usecase/get_availability"
)

// Формат даты в ответах ассистента, например "July 4, 2026"
const spokenDateFormat = "January 2, 2006"

// Сколько последних сообщений истории диалога передаём модели
const historyLimit = 4

// Service сервис ассистента барбершопа
type Service struct {
	extractor    Extractor
	availability AvailabilityUseCase
	model        ModelClient
	info         BusinessInfo
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса ассистента
func NewService(
	extractor Extractor,
	availability AvailabilityUseCase,
	model ModelClient,
	info BusinessInfo,
	logger Logger,
) *Service {
	return &Service{
		extractor:    extractor,
		availability: availability,
		model:        model,
		info:         info,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Respond отвечает на сообщение клиента с учётом истории диалога.
// Если в сообщении распознан вопрос о записи, ответу модели передаётся
// фактическая доступность слотов из БД - модель не выдумывает расписание.
func (s *Service) Respond(ctx context.Context, message string, history []Message) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("%w: message is required", ErrInvalidInput)
	}

	now := s.timeProvider.Now()

	appointmentContext := ""
	query, err := s.extractor.Extract(ctx, message, now)
	if err != nil {
		s.logger.Warn("Respond: extraction failed: %v", err)
	}

	if query != nil && query.Date != nil {
		info, err := s.describeAvailability(ctx, query)
		if err != nil {
			s.logger.Error("Respond: availability check failed: %v", err)
			info = "There was an issue checking appointments. Please call us."
		}
		appointmentContext = "\n\nAPPOINTMENT INFO: " + info
	}

	messages := make([]openai.ChatMessage, 0, historyLimit+2)
	messages = append(messages, openai.ChatMessage{Role: "system", Content: systemPrompt(s.info)})

	start := len(history) - historyLimit
	if start < 0 {
		start = 0
	}
	for _, msg := range history[start:] {
		if msg.Role == "user" || msg.Role == "assistant" {
			messages = append(messages, openai.ChatMessage{Role: msg.Role, Content: msg.Content})
		}
	}

	messages = append(messages, openai.ChatMessage{
		Role: "user",
		Content: fmt.Sprintf("CUSTOMER QUESTION: %s\n\nRELEVANT INFO: %s%s",
			message, businessKnowledge(s.info), appointmentContext),
	})

	answer, err := s.model.CompleteWithGracefulDegradation(ctx, messages)
	if err != nil {
		s.logger.Warn("Respond: model degraded, returning fallback reply: %v", err)
		return "Sorry, I'm experiencing a technical issue right now. Please try again later or call us at: " + s.info.Phone, nil
	}

	return strings.TrimSpace(answer), nil
}

// describeAvailability формулирует доступность слотов для контекста модели
func (s *Service) describeAvailability(ctx context.Context, query *AppointmentQuery) (string, error) {
	resp, err := s.availability.Execute(ctx, &get_availability.Request{Date: *query.Date})
	if err != nil {
		return "", err
	}

	spokenDate := query.Date.Format(spokenDateFormat)

	// Вопрос о конкретном времени
	if query.Time != nil {
		for _, slot := range resp.AvailableSlots {
			if slot == *query.Time {
				return fmt.Sprintf("%s on %s is available!", *query.Time, spokenDate), nil
			}
		}
		return fmt.Sprintf("%s on %s is already booked.", *query.Time, spokenDate), nil
	}

	// Вопрос о дне целиком
	if len(resp.AvailableSlots) == 0 {
		return fmt.Sprintf("All time slots are booked on %s.", spokenDate), nil
	}

	shown := resp.AvailableSlots
	suffix := ""
	if len(shown) > 5 {
		shown = shown[:5]
		suffix = "..."
	}

	names := make([]string, 0, len(shown))
	for _, slot := range shown {
		names = append(names, string(slot))
	}

	return fmt.Sprintf("Available times on %s: %s%s", spokenDate, strings.Join(names, ", "), suffix), nil
}
