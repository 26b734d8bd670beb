package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elitecuts/booking-service/internal/domain"
	"github.com/elitecuts/booking-service/internal/integrations/openai"
	"github.com/elitecuts/booking-service/pkg/types"
)

const extractPromptTemplate = `Extract date and time from this message: %q

Current date: %s

Return ONLY in this exact JSON format:
{"date": "YYYY-MM-DD or null", "time": "H:MM AM/PM or null"}

Examples:
- "July 4th" -> {"date": "2024-07-04", "time": null}
- "tomorrow at 3pm" -> {"date": "2024-07-02", "time": "3:00 PM"}
- "9:00 AM on July 5th" -> {"date": "2024-07-05", "time": "9:00 AM"}
- "available times today" -> {"date": "2024-07-01", "time": null}

Time format must be: "9:00 AM", "12:30 PM", etc. (12-hour format with AM/PM)`

// ModelExtractor извлекает дату и время через языковую модель.
// При недоступности модели или мусорном ответе откатывается на правила:
// ассистент должен отвечать даже без внешнего API.
type ModelExtractor struct {
	client   ModelClient
	fallback Extractor
	logger   Logger
}

// NewModelExtractor создает новый экземпляр извлекателя на модели
func NewModelExtractor(client ModelClient, fallback Extractor, logger Logger) *ModelExtractor {
	return &ModelExtractor{
		client:   client,
		fallback: fallback,
		logger:   logger,
	}
}

type extractedPayload struct {
	Date *string `json:"date"`
	Time *string `json:"time"`
}

// Extract извлекает дату и время из сообщения клиента
func (e *ModelExtractor) Extract(ctx context.Context, message string, now time.Time) (*AppointmentQuery, error) {
	// Быстрый отсев сообщений не о записи - без похода в модель
	if !looksLikeAppointmentQuery(strings.ToLower(message)) {
		return nil, nil
	}

	prompt := fmt.Sprintf(extractPromptTemplate, message, now.Format(domain.DateFormat))

	answer, err := e.client.Complete(ctx, []openai.ChatMessage{
		{Role: "user", Content: prompt},
	})
	if err != nil {
		e.logger.Warn("ModelExtractor: model extraction failed, falling back to rules: %v", err)
		return e.fallback.Extract(ctx, message, now)
	}

	query, err := parseExtractedPayload(answer)
	if err != nil {
		e.logger.Warn("ModelExtractor: malformed model output %q, falling back to rules: %v", answer, err)
		return e.fallback.Extract(ctx, message, now)
	}

	if query.Date == nil && query.Time == nil {
		return nil, nil
	}
	return query, nil
}

// parseExtractedPayload разбирает JSON ответа модели в AppointmentQuery
func parseExtractedPayload(answer string) (*AppointmentQuery, error) {
	answer = strings.TrimSpace(answer)

	// Модель может обернуть JSON в markdown-блок
	answer = strings.TrimPrefix(answer, "```json")
	answer = strings.TrimPrefix(answer, "```")
	answer = strings.TrimSuffix(answer, "```")
	answer = strings.TrimSpace(answer)

	var payload extractedPayload
	if err := json.Unmarshal([]byte(answer), &payload); err != nil {
		return nil, err
	}

	query := &AppointmentQuery{}

	if payload.Date != nil && *payload.Date != "" && *payload.Date != "null" {
		parsed, err := time.Parse(domain.DateFormat, *payload.Date)
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", *payload.Date, err)
		}
		query.Date = &parsed
	}

	if payload.Time != nil && *payload.Time != "" && *payload.Time != "null" {
		parsed, err := types.ParseDisplayTime(*payload.Time)
		if err != nil {
			return nil, fmt.Errorf("parse time %q: %w", *payload.Time, err)
		}
		query.Time = &parsed
	}

	return query, nil
}
