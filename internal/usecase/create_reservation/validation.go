package create_reservation

import (
	"fmt"
	"strings"

	"github.com/elitecuts/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Service) == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Время должно корректно конвертироваться в канонический формат
	if _, err := req.Time.To24h(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Бронировать можно только слоты из сетки
	if !domain.IsGridSlot(req.Time) {
		return fmt.Errorf("%w: %s", ErrInvalidTimeSlot, req.Time)
	}

	return nil
}
